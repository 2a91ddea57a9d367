package game

import (
	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/engine"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// Piece is a character lifted off the board. It holds the game's board
// until PlaceAt or PlaceBack returns it, after which the Piece is spent.
type Piece struct {
	character chess.Character
	origin    chess.Position
	board     *chess.Board
	game      *Game
	consumed  bool
}

// NewAlonePiece creates a piece that belongs to no game. It can report its
// character and origin but has no board to move on.
func NewAlonePiece(c chess.Character, origin chess.Position) *Piece {
	return &Piece{character: c, origin: origin}
}

// Character returns the picked character.
func (p *Piece) Character() chess.Character {
	return p.character
}

// Origin returns the square the piece was picked from.
func (p *Piece) Origin() chess.Position {
	return p.origin
}

// PossibleMoves lists the origin followed by every legal target.
// It returns nil once the piece no longer holds a board.
func (p *Piece) PossibleMoves() []chess.Position {
	if p.board == nil {
		return nil
	}
	return engine.PossibleMoves(p.character, p.origin, p.board)
}

// CanMove reports whether to is among PossibleMoves.
func (p *Piece) CanMove(to chess.Position) bool {
	if p.board == nil {
		return false
	}
	return engine.CanMove(p.character, p.origin, to, p.board)
}

// PlaceAt moves the piece to to and hands the board back to g.
// A legal placement captures any opponent on to and passes the turn;
// the captured character is returned. Placing on the origin returns the
// piece without spending the turn. An illegal target leaves the piece on
// its origin and fails with ErrInvalidMove.
func (p *Piece) PlaceAt(g *Game, to chess.Position) (chess.Character, error) {
	return p.place(g, to, p.character)
}

// PlaceBack returns the piece to its origin and the board to g.
func (p *Piece) PlaceBack(g *Game) error {
	_, err := p.place(g, p.origin, p.character)
	return err
}

// place lands the piece on to as promoted, which is the picked character
// unless a pawn is promoting.
func (p *Piece) place(g *Game, to chess.Position, promoted chess.Character) (chess.Character, error) {
	if err := p.checkHolder(g); err != nil {
		return chess.Character{}, err
	}

	b := p.board
	p.board = nil
	p.consumed = true

	if to == p.origin {
		p.restore(g, b)
		g.cfg.Logf(config.Commentary, "%s put %s back on %s", g.side, p.character, p.origin)
		return chess.Character{}, nil
	}

	if !to.IsValid() || !engine.CanMove(p.character, p.origin, to, b) {
		p.restore(g, b)
		g.cfg.Logf(config.Commentary, "%s rejected %s to %s", g.side, p.character, to)
		return chess.Character{}, g.moveError(errors.ErrInvalidMove, p.origin, to)
	}

	captured, _ := b.Remove(to)
	if err := b.Place(promoted, to); err != nil {
		p.restore(g, b)
		return chess.Character{}, g.moveError(err, p.origin, to)
	}
	g.reattach(p, b)

	if !captured.IsEmpty() {
		g.captured[g.side] = append(g.captured[g.side], captured)
	}
	g.ply++
	g.state = PiecePlaced
	g.cfg.Logf(config.Commentary, "%s moved %s %s-%s", g.side, p.character, p.origin, to)
	if !captured.IsEmpty() {
		g.cfg.Logf(config.Commentary, "%s captured %s", g.side, captured)
	}

	if err := g.ChangeSide(); err != nil {
		return captured, err
	}
	return captured, nil
}

// checkHolder verifies the piece still holds g's board.
func (p *Piece) checkHolder(g *Game) error {
	if p.consumed {
		return errors.ErrPieceConsumed
	}
	if p.board == nil || g == nil || p.game != g {
		return errors.ErrAlonePiece
	}
	return nil
}

// restore puts the piece back on its origin and returns the board to g
// with the turn still open.
func (p *Piece) restore(g *Game, b *chess.Board) {
	// The origin was emptied by the pick, so this cannot fail.
	_ = b.Place(p.character, p.origin)
	g.reattach(p, b)
	g.state = Idle
}

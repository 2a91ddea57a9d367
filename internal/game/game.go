// Package game runs a two-player chess game: turns, picks and placements.
//
// The board belongs to the Game while no piece is in hand. Pick lends it to
// the returned Piece, and the Piece's placement hands it back. While the
// board is on loan the Game refuses to show or change it.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/engine"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// Game holds the board, the side to move and the pieces each side captured.
// A Game is not safe for concurrent use.
type Game struct {
	cfg *config.Config

	// board is nil while loan holds it.
	board *chess.Board
	loan  *Piece

	side     chess.Side
	state    State
	captured [2][]chess.Character
	ply      int
}

// New creates a game with an empty board. Call Start to set up the pieces.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:   cfg,
		board: chess.NewBoard(),
		side:  cfg.StartSide,
	}
}

// NewFromBoard creates a game that plays on board with side to move.
// The game takes ownership of board.
func NewFromBoard(cfg *config.Config, board *chess.Board, side chess.Side) *Game {
	g := New(cfg)
	g.board = board
	g.side = side
	return g
}

// Start sets up the pieces and gives the first move to the configured side.
func (g *Game) Start() error {
	return g.StartWith(g.cfg.StartSide)
}

// StartWith sets up the pieces and gives the first move to side.
// A configured StartFEN replaces the standard arrangement.
func (g *Game) StartWith(side chess.Side) error {
	if g.loan != nil {
		return errors.ErrBoardOnLoan
	}

	if g.cfg.StartFEN != "" {
		b, _, err := engine.NewBoardFromFEN(g.cfg.StartFEN)
		if err != nil {
			return err
		}
		*g.board = *b
	} else {
		g.board.SetupInitialPosition()
	}

	g.side = side
	g.state = Idle
	g.captured = [2][]chess.Character{}
	g.ply = 0
	g.cfg.Logf(config.Commentary, "game started, %s to move", side)
	return nil
}

// WhoseTurn returns the side to move.
func (g *Game) WhoseTurn() chess.Side {
	return g.side
}

// State returns the turn progress.
func (g *Game) State() State {
	return g.state
}

// Ply returns the number of completed moves.
func (g *Game) Ply() int {
	return g.ply
}

// Captured returns the pieces side has taken, in capture order.
func (g *Game) Captured(side chess.Side) []chess.Character {
	return slices.Clone(g.captured[side])
}

// Board returns a copy of the board. It fails while a piece is in hand.
func (g *Game) Board() (chess.Snapshot, error) {
	if g.board == nil {
		return chess.Snapshot{}, errors.ErrBoardOnLoan
	}
	return g.board.Snapshot(), nil
}

// Pick lifts the piece on pos and lends it the board.
// Only a piece of the side to move may be picked, and only between turns.
func (g *Game) Pick(pos chess.Position) (*Piece, error) {
	switch g.state {
	case Idle:
	case Ended:
		return nil, errors.ErrGameOver
	default:
		return nil, g.moveError(errors.ErrSideNotChanged, pos, chess.Position{})
	}

	c, err := g.board.Remove(pos)
	if err != nil {
		return nil, g.moveError(err, pos, chess.Position{})
	}

	p := &Piece{
		character: c,
		origin:    pos,
		board:     g.board,
		game:      g,
	}
	g.board = nil
	g.loan = p
	g.state = PiecePicked

	if c.Side != g.side {
		// Hand the board straight back with the piece where it was.
		if err := p.PlaceBack(g); err != nil {
			return nil, err
		}
		g.cfg.Logf(config.Commentary, "%s refused %s on %s", g.side, c, pos)
		return nil, g.moveError(errors.ErrOpponentPiece, pos, chess.Position{})
	}

	g.cfg.Logf(config.Commentary, "%s picked %s on %s", g.side, c, pos)
	return p, nil
}

// PickAt is Pick with an algebraic square such as "e2".
func (g *Game) PickAt(square string) (*Piece, error) {
	pos, err := chess.ParsePosition(square)
	if err != nil {
		return nil, err
	}
	return g.Pick(pos)
}

// Move picks the piece on from and places it on to.
// It returns the captured character, if any.
func (g *Game) Move(from, to string) (chess.Character, error) {
	target, err := chess.ParsePosition(to)
	if err != nil {
		return chess.Character{}, err
	}
	p, err := g.PickAt(from)
	if err != nil {
		return chess.Character{}, err
	}
	return p.PlaceAt(g, target)
}

// ChangeSide passes the turn after a placement.
func (g *Game) ChangeSide() error {
	if g.state != PiecePlaced {
		return errors.ErrSideAlreadyChanged
	}
	g.side = g.side.Opposite()
	g.state = Idle
	return nil
}

// reattach takes the board back from p.
func (g *Game) reattach(p *Piece, b *chess.Board) {
	g.board = b
	if g.loan == p {
		g.loan = nil
	}
}

func (g *Game) moveError(err error, from, to chess.Position) error {
	me := &errors.MoveError{
		Err:  err,
		Ply:  g.ply + 1,
		Side: g.side.String(),
	}
	if from.IsValid() {
		me.From = from.String()
	}
	if to.IsValid() {
		me.To = to.String()
	}
	return me
}

// String renders the board, or notes that it is on loan.
func (g *Game) String() string {
	if g.board == nil {
		return fmt.Sprintf("(board held by %s on %s)\n", g.loan.character, g.loan.origin)
	}
	return g.board.String()
}

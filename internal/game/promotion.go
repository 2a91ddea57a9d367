package game

import (
	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// PromotePawn advances the side to move's pawn on pos to the last rank
// and turns it into a Queen. The pawn must stand one rank short of the far
// end and its forward square must be free. Only the queen is offered.
func (g *Game) PromotePawn(pos chess.Position) (chess.Character, error) {
	p, err := g.Pick(pos)
	if err != nil {
		return chess.Character{}, err
	}

	c := p.Character()
	lastRank := chess.LastRank
	if c.Side == chess.Black {
		lastRank = chess.FirstRank
	}
	target, offErr := pos.Offset(0, c.Side.Sign())

	if c.Kind != chess.Pawn || offErr != nil || target.Rank() != lastRank || !p.CanMove(target) {
		if err := p.PlaceBack(g); err != nil {
			return chess.Character{}, err
		}
		return chess.Character{}, g.moveError(errors.ErrInvalidMove, pos, target)
	}

	return p.place(g, target, chess.NewCharacter(chess.Queen, c.Side))
}

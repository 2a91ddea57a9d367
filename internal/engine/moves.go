package engine

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-game-go/internal/chess"
)

// stopRule decides, for one candidate square, whether the mover may land on
// it and whether the direction ends there. step is the direction already
// scaled by distance and side sign.
type stopRule func(mover chess.Character, occupant chess.Character, occupied bool, step Direction, from chess.Position) (legal, stop bool)

// PossibleMoves returns the squares c standing on from may be placed on.
// The origin is always first, since putting a piece back is a legal no-op.
// The remaining squares are ordered by distance, then direction.
func PossibleMoves(c chess.Character, from chess.Position, b chess.BoardReader) []chess.Position {
	if c.IsEmpty() || !from.IsValid() || b == nil {
		return nil
	}

	shape := ShapeOf(c.Kind)
	rule := generalRule
	if c.Kind == chess.Pawn {
		rule = pawnRule
	}
	return castRays(c, from, b, shape, rule)
}

// CanMove reports whether to is among PossibleMoves.
func CanMove(c chess.Character, from, to chess.Position, b chess.BoardReader) bool {
	return slices.Contains(PossibleMoves(c, from, b), to)
}

func castRays(c chess.Character, from chess.Position, b chess.BoardReader, shape Shape, rule stopRule) []chess.Position {
	moves := make([]chess.Position, 0, 1+len(shape.Directions))
	moves = append(moves, from)

	dirs := slices.Clone(shape.Directions)
	sign := c.Side.Sign()

	for i := 1; i <= shape.MaxSteps() && len(dirs) > 0; i++ {
		kept := dirs[:0]
		for _, d := range dirs {
			step := d.Scale(i * sign)
			pos, err := from.Offset(step.File, step.Rank)
			if err != nil {
				continue
			}
			occupant, occupied := b.OccupantAt(pos)
			legal, stop := rule(c, occupant, occupied, step, from)
			if legal {
				moves = append(moves, pos)
			}
			if !stop {
				kept = append(kept, d)
			}
		}
		dirs = kept
	}
	return moves
}

// generalRule: an empty square is legal and the ray continues; an opponent
// is legal and ends the ray; an own piece is illegal and ends the ray.
func generalRule(mover, occupant chess.Character, occupied bool, _ Direction, _ chess.Position) (bool, bool) {
	if !occupied {
		return true, false
	}
	return !mover.SameSide(occupant), true
}

// pawnRule: diagonals only capture and stop after one step. The straight
// direction needs an empty square and reaches two squares only from the
// pawn's home rank.
func pawnRule(mover, occupant chess.Character, occupied bool, step Direction, from chess.Position) (bool, bool) {
	if step.File != 0 {
		return occupied && !mover.SameSide(occupant), true
	}

	firstMove := from.Rank() == mover.Side.HomeRank()
	distance := abs(step.Rank)
	legal := !occupied && (firstMove || distance == 1)
	stop := occupied || !firstMove || distance >= 2
	return legal, stop
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// MovesForSide returns the destinations of every piece of side, keyed by
// origin. Origins are not repeated among their own destinations and pieces
// with no destination are omitted.
func MovesForSide(b chess.BoardReader, side chess.Side) map[chess.Position][]chess.Position {
	out := make(map[chess.Position][]chess.Position)
	for i := 0; i < chess.NumCells; i++ {
		pos, err := chess.PositionFromIndex(i)
		if err != nil {
			continue
		}
		c, ok := b.OccupantAt(pos)
		if !ok || c.Side != side {
			continue
		}
		if moves := PossibleMoves(c, pos, b); len(moves) > 1 {
			out[pos] = moves[1:]
		}
	}
	return out
}

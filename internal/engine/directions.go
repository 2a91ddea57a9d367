// Package engine computes legal destination squares for chess pieces.
package engine

import "github.com/lgbarn/chess-game-go/internal/chess"

// Direction is a (file, rank) step written from White's point of view.
type Direction struct {
	File int
	Rank int
}

// Scale multiplies both components by n.
func (d Direction) Scale(n int) Direction {
	return Direction{File: d.File * n, Rank: d.Rank * n}
}

var (
	Top      = Direction{0, 1}
	TopLeft  = Direction{-1, 1}
	TopRight = Direction{1, 1}
	Left     = Direction{-1, 0}
	Right    = Direction{1, 0}
	Bot      = Direction{0, -1}
	BotLeft  = Direction{-1, -1}
	BotRight = Direction{1, -1}
)

var (
	diagonals   = []Direction{TopLeft, TopRight, BotLeft, BotRight}
	orthogonals = []Direction{Top, Left, Right, Bot}
	allEight    = []Direction{TopLeft, Top, TopRight, Left, Right, BotLeft, Bot, BotRight}

	knightJumps = []Direction{
		{-1, 2}, {1, 2},
		{-2, 1}, {2, 1},
		{-2, -1}, {2, -1},
		{-1, -2}, {1, -2},
	}

	pawnSteps = []Direction{Top, TopLeft, TopRight}
)

// Shape is the move geometry of a piece kind.
type Shape struct {
	Directions []Direction
	// Ranging pieces keep stepping along a direction until blocked.
	Ranging bool
}

// MaxSteps returns how many steps along a direction the shape may take.
func (s Shape) MaxSteps() int {
	if s.Ranging {
		return chess.BoardSize
	}
	return 1
}

// ShapeOf returns the move shape for kind. The pawn is ranging so that its
// straight direction can reach two squares; pawnRule limits the distance.
func ShapeOf(kind chess.Kind) Shape {
	switch kind {
	case chess.Bishop:
		return Shape{Directions: diagonals, Ranging: true}
	case chess.Rook:
		return Shape{Directions: orthogonals, Ranging: true}
	case chess.Queen:
		return Shape{Directions: allEight, Ranging: true}
	case chess.King:
		return Shape{Directions: allEight}
	case chess.Knight:
		return Shape{Directions: knightJumps}
	case chess.Pawn:
		return Shape{Directions: pawnSteps, Ranging: true}
	}
	return Shape{}
}

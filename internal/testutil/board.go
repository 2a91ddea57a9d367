package testutil

import (
	"testing"

	"github.com/lgbarn/chess-game-go/internal/chess"
)

// MustBoard builds a board holding exactly the given pieces.
// It calls t.Fatal on a bad square or a doubly occupied cell.
func MustBoard(t *testing.T, pieces map[string]chess.Character) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for sq, c := range pieces {
		if err := b.Place(c, MustSquare(t, sq)); err != nil {
			t.Fatalf("placing %v on %s: %v", c, sq, err)
		}
	}
	return b
}

// MustSquare parses an algebraic square or calls t.Fatal.
func MustSquare(t *testing.T, sq string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(sq)
	if err != nil {
		t.Fatalf("bad square %q: %v", sq, err)
	}
	return p
}

// MustSquares parses several algebraic squares.
func MustSquares(t *testing.T, sqs ...string) []chess.Position {
	t.Helper()
	ps := make([]chess.Position, len(sqs))
	for i, sq := range sqs {
		ps[i] = MustSquare(t, sq)
	}
	return ps
}

package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, chess.W(chess.Pawn), chess.W(chess.Pawn))
	AssertEqual(t, []chess.Character{chess.B(chess.Rook)}, []chess.Character{chess.B(chess.Rook)}, "captures")
}

func TestAssertErrorIs_Success(t *testing.T) {
	AssertErrorIs(t, fmt.Errorf("pick: %w", errors.ErrEmptyCell), errors.ErrEmptyCell)
	AssertErrorIs(t, errors.ErrOutOfBoard, errors.ErrInvalidPosition)
	AssertErrorIs(t, nil, nil)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertFalse(t, false, "value should be %v", false)
}

func TestAssertSquares_Success(t *testing.T) {
	got := MustSquares(t, "e3", "e4", "e2")
	AssertSquares(t, got, []string{"e2", "e3", "e4"})
	AssertSquaresInOrder(t, got, []string{"e3", "e4", "e2"})
	AssertSquares(t, nil, nil)
	AssertSquares(t, []chess.Position{}, nil)
}

func TestSquareNames(t *testing.T) {
	AssertEqual(t, SquareNames(MustSquares(t, "a1", "h8")), []string{"a1", "h8"})
	AssertEqual(t, len(SquareNames(nil)), 0)
}

func TestMustBoard(t *testing.T) {
	b := MustBoard(t, map[string]chess.Character{
		"e4": chess.W(chess.Knight),
		"d5": chess.B(chess.Pawn),
	})
	AssertEqual(t, b.Count(), 2)

	c, ok := b.OccupantAt(MustSquare(t, "d5"))
	AssertTrue(t, ok)
	AssertEqual(t, c, chess.B(chess.Pawn))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d %s", "ply", 3, "end"}, "ply 3 end"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

package chess

import (
	"fmt"

	"github.com/lgbarn/chess-game-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = 1
	LastRank  = BoardSize
)

// Position is a validated square. The zero value is not a valid square;
// positions are only produced by the constructors in this file.
type Position struct {
	file  byte
	rank  int8
	valid bool
}

// NewPosition validates a file ('a'-'h', either case) and rank (1-8).
func NewPosition(file byte, rank int) (Position, error) {
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if !isValid(int(file), rank) {
		return Position{}, fmt.Errorf("%q%d: %w", file, rank, errors.ErrInvalidPosition)
	}
	return Position{file: file, rank: int8(rank), valid: true}, nil
}

// ParsePosition parses a two-character square such as "e2" or "E2".
func ParsePosition(text string) (Position, error) {
	if len(text) != 2 {
		return Position{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidPosition)
	}
	rank := text[1]
	if rank < '0' || rank > '9' {
		return Position{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidPosition)
	}
	p, err := NewPosition(text[0], int(rank-'0'))
	if err != nil {
		return Position{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidPosition)
	}
	return p, nil
}

// MustParsePosition is like ParsePosition but panics on bad input.
// It is meant for literal squares in tables and tests.
func MustParsePosition(text string) Position {
	p, err := ParsePosition(text)
	if err != nil {
		panic(err)
	}
	return p
}

// PositionFromIndex is the inverse of Index.
func PositionFromIndex(i int) (Position, error) {
	if i < 0 || i >= NumCells {
		return Position{}, fmt.Errorf("index %d: %w", i, errors.ErrInvalidPosition)
	}
	return NewPosition(byte(FirstFile+i%BoardSize), BoardSize-i/BoardSize)
}

func isValid(file, rank int) bool {
	return file >= FirstFile && file <= LastFile && rank >= FirstRank && rank <= LastRank
}

// File returns the file letter 'a'-'h'.
func (p Position) File() byte {
	return p.file
}

// Rank returns the rank number 1-8.
func (p Position) Rank() int {
	return int(p.rank)
}

// IsValid reports whether p came from a constructor.
func (p Position) IsValid() bool {
	return p.valid
}

// Offset applies a signed delta and re-validates the result.
func (p Position) Offset(dFile, dRank int) (Position, error) {
	file := int(p.file) + dFile
	rank := int(p.rank) + dRank
	if !p.valid || !isValid(file, rank) {
		return Position{}, errors.ErrOutOfBoard
	}
	return Position{file: byte(file), rank: int8(rank), valid: true}, nil
}

// Index maps p to the row-major cell index with rank 8 on row 0.
func (p Position) Index() int {
	return BoardSize*(BoardSize-int(p.rank)) + int(p.file-FirstFile)
}

// String returns the algebraic form, e.g. "e4".
func (p Position) String() string {
	if !p.valid {
		return "-"
	}
	return fmt.Sprintf("%c%d", p.file, p.rank)
}

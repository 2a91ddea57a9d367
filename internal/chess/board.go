package chess

import (
	"fmt"

	"github.com/lgbarn/chess-game-go/internal/errors"
)

// BoardReader is read-only access to board occupants.
type BoardReader interface {
	OccupantAt(pos Position) (Character, bool)
}

// Snapshot is a read-only copy of the 64 cells, indexed by Position.Index.
type Snapshot [NumCells]Character

// OccupantAt returns the character at pos, if any.
func (s *Snapshot) OccupantAt(pos Position) (Character, bool) {
	if !pos.IsValid() {
		return Character{}, false
	}
	c := s[pos.Index()]
	return c, !c.IsEmpty()
}

// Board is the 8x8 grid. Each cell holds at most one character.
// A Board is created once per game and only its cells change afterwards.
type Board struct {
	cells [NumCells]Character
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// homeSquares lists the starting squares of each kind for both sides.
var homeSquares = []struct {
	kind    Kind
	squares []string
}{
	{Bishop, []string{"c1", "f1", "c8", "f8"}},
	{Rook, []string{"a1", "h1", "a8", "h8"}},
	{Knight, []string{"b1", "g1", "b8", "g8"}},
	{King, []string{"e1", "e8"}},
	{Queen, []string{"d1", "d8"}},
	{Pawn, []string{
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	}},
}

// SetupInitialPosition clears the board and places the standard 32 pieces.
// Pieces below rank 4 are White, the rest Black.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for _, home := range homeSquares {
		for _, sq := range home.squares {
			pos := MustParsePosition(sq)
			side := Black
			if pos.Rank() < 4 {
				side = White
			}
			b.cells[pos.Index()] = NewCharacter(home.kind, side)
		}
	}
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [NumCells]Character{}
}

// OccupantAt returns the character at pos, if any. It has no side effect.
func (b *Board) OccupantAt(pos Position) (Character, bool) {
	if !pos.IsValid() {
		return Character{}, false
	}
	c := b.cells[pos.Index()]
	return c, !c.IsEmpty()
}

// Place puts c on pos only if the cell is empty.
func (b *Board) Place(c Character, pos Position) error {
	if !pos.IsValid() {
		return errors.ErrInvalidPosition
	}
	if c.IsEmpty() {
		return fmt.Errorf("place on %s: %w", pos, errors.ErrEmptyCell)
	}
	if occupant := b.cells[pos.Index()]; !occupant.IsEmpty() {
		return fmt.Errorf("place %s on %s held by %s: %w", c, pos, occupant, errors.ErrOccupiedCell)
	}
	b.cells[pos.Index()] = c
	return nil
}

// Remove clears pos and returns its former occupant.
func (b *Board) Remove(pos Position) (Character, error) {
	if !pos.IsValid() {
		return Character{}, errors.ErrInvalidPosition
	}
	c := b.cells[pos.Index()]
	if c.IsEmpty() {
		return Character{}, fmt.Errorf("remove from %s: %w", pos, errors.ErrEmptyCell)
	}
	b.cells[pos.Index()] = Character{}
	return c, nil
}

// Snapshot returns a copy of the cells.
func (b *Board) Snapshot() Snapshot {
	return Snapshot(b.cells)
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if !c.IsEmpty() {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the board with letter glyphs.
func (b *Board) String() string {
	s := b.Snapshot()
	return Render(&s, LetterGlyphs)
}

// Package chess provides core chess types and operations.
package chess

import "fmt"

// Side represents one of the two competing players.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Sign returns +1 for White, -1 for Black.
// Direction tables are written from White's point of view and multiplied by it.
func (s Side) Sign() int {
	if s == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank pawns of this side start on.
func (s Side) HomeRank() int {
	if s == White {
		return 2
	}
	return 7
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'B', 'N', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Character is a piece kind tied to a side.
// The zero value is the empty occupant.
type Character struct {
	Kind Kind
	Side Side
}

// NewCharacter creates a character of the given kind and side.
func NewCharacter(kind Kind, side Side) Character {
	return Character{Kind: kind, Side: side}
}

// W creates a white character.
func W(kind Kind) Character {
	return NewCharacter(kind, White)
}

// B creates a black character.
func B(kind Kind) Character {
	return NewCharacter(kind, Black)
}

// IsEmpty reports whether c is the empty occupant.
func (c Character) IsEmpty() bool {
	return c.Kind == NoKind
}

// SameSide reports whether both characters belong to the same side.
func (c Character) SameSide(other Character) bool {
	return c.Side == other.Side
}

// String returns the kind and side, e.g. "Knight_Black".
func (c Character) String() string {
	if c.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s_%s", c.Kind, c.Side)
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (c Character) Letter() byte {
	l := c.Kind.Letter()
	if c.Side == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// Glyphs selects the symbol set used to draw characters.
type Glyphs int

const (
	LetterGlyphs  Glyphs = iota // FEN letters, KQRBNP / kqrbnp
	UnicodeGlyphs               // Unicode chess figures
)

// String returns the name of a glyph set.
func (g Glyphs) String() string {
	if g == UnicodeGlyphs {
		return "unicode"
	}
	return "letters"
}

var unicodeSymbols = [NumKinds][2]rune{
	King:   {'♔', '♚'},
	Queen:  {'♕', '♛'},
	Rook:   {'♖', '♜'},
	Bishop: {'♗', '♝'},
	Knight: {'♘', '♞'},
	Pawn:   {'♙', '♟'},
}

// Symbol returns the single-rune symbol of c in the given glyph set.
// The empty occupant is a space.
func (c Character) Symbol(g Glyphs) rune {
	if c.IsEmpty() || c.Kind < 0 || c.Kind >= NumKinds {
		return ' '
	}
	if g == UnicodeGlyphs {
		return unicodeSymbols[c.Kind][c.Side]
	}
	return rune(c.Letter())
}

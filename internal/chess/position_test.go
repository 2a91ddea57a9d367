package chess

import (
	"testing"

	"github.com/lgbarn/chess-game-go/internal/errors"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name    string
		file    byte
		rank    int
		wantErr bool
	}{
		{"a1", 'a', 1, false},
		{"h8", 'h', 8, false},
		{"upper case file", 'E', 4, false},
		{"file before a", '`', 1, true},
		{"file after h", 'i', 1, true},
		{"rank zero", 'a', 0, true},
		{"rank nine", 'a', 9, true},
		{"far out", 'z', 100, true},
		{"negative rank", 'c', -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPosition(tt.file, tt.rank)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidPosition) {
					t.Errorf("NewPosition(%q, %d) error = %v; want ErrInvalidPosition", tt.file, tt.rank, err)
				}
				if p.IsValid() {
					t.Errorf("NewPosition(%q, %d) returned a valid position on error", tt.file, tt.rank)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPosition(%q, %d) error = %v", tt.file, tt.rank, err)
			}
			if p.Rank() != tt.rank {
				t.Errorf("Rank() = %d; want %d", p.Rank(), tt.rank)
			}
		})
	}

	p, _ := NewPosition('E', 4)
	if p.File() != 'e' {
		t.Errorf("File() = %c; want e", p.File())
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"e2", "e2", false},
		{"E2", "e2", false},
		{"h8", "h8", false},
		{"a1", "a1", false},
		{"", "", true},
		{"e", "", true},
		{"e22", "", true},
		{"i1", "", true},
		{"a0", "", true},
		{"a9", "", true},
		{"2e", "", true},
		{"ex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidPosition) {
					t.Errorf("ParsePosition(%q) error = %v; want ErrInvalidPosition", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParsePosition(%q) = %s; want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestPositionIndex(t *testing.T) {
	tests := []struct {
		sq   string
		want int
	}{
		{"a8", 0},
		{"h8", 7},
		{"a7", 8},
		{"a1", 56},
		{"e2", 52},
		{"h1", 63},
	}

	for _, tt := range tests {
		t.Run(tt.sq, func(t *testing.T) {
			if got := MustParsePosition(tt.sq).Index(); got != tt.want {
				t.Errorf("Index(%s) = %d; want %d", tt.sq, got, tt.want)
			}
		})
	}
}

func TestPositionIndexBijection(t *testing.T) {
	seen := make(map[int]Position)
	for file := byte('a'); file <= 'h'; file++ {
		for rank := 1; rank <= 8; rank++ {
			p, err := NewPosition(file, rank)
			if err != nil {
				t.Fatalf("NewPosition(%c, %d) error = %v", file, rank, err)
			}
			i := p.Index()
			if i < 0 || i >= NumCells {
				t.Fatalf("Index(%s) = %d out of range", p, i)
			}
			if prev, ok := seen[i]; ok {
				t.Fatalf("Index(%s) = Index(%s) = %d", p, prev, i)
			}
			seen[i] = p

			back, err := PositionFromIndex(i)
			if err != nil {
				t.Fatalf("PositionFromIndex(%d) error = %v", i, err)
			}
			if back != p {
				t.Errorf("PositionFromIndex(Index(%s)) = %s", p, back)
			}
		}
	}
	if len(seen) != NumCells {
		t.Errorf("covered %d cells; want %d", len(seen), NumCells)
	}

	for _, i := range []int{-1, 64, 1000} {
		if _, err := PositionFromIndex(i); !errors.Is(err, errors.ErrInvalidPosition) {
			t.Errorf("PositionFromIndex(%d) error = %v; want ErrInvalidPosition", i, err)
		}
	}
}

func TestPositionOffset(t *testing.T) {
	tests := []struct {
		from   string
		dFile  int
		dRank  int
		want   string
		offErr bool
	}{
		{"e2", 0, 2, "e4", false},
		{"b1", -1, 2, "a3", false},
		{"c1", 5, 5, "h6", false},
		{"a1", -1, 0, "", true},
		{"h8", 0, 1, "", true},
		{"d4", 1 << 40, 0, "", true},
		{"d4", 0, -(1 << 40), "", true},
		{"d4", -256, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got, err := MustParsePosition(tt.from).Offset(tt.dFile, tt.dRank)
			if tt.offErr {
				if !errors.Is(err, errors.ErrOutOfBoard) {
					t.Errorf("Offset(%d, %d) error = %v; want ErrOutOfBoard", tt.dFile, tt.dRank, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Offset(%d, %d) error = %v", tt.dFile, tt.dRank, err)
			}
			if got.String() != tt.want {
				t.Errorf("Offset(%d, %d) = %s; want %s", tt.dFile, tt.dRank, got, tt.want)
			}
		})
	}

	if _, err := (Position{}).Offset(0, 0); err == nil {
		t.Error("Offset on zero Position should fail")
	}
}

func TestMustParsePositionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePosition(\"z9\") did not panic")
		}
	}()
	MustParsePosition("z9")
}

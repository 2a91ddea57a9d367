package engine

import (
	"testing"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		side    chess.Side
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			side: chess.White,
			checkFn: func(b *chess.Board) bool {
				return b.Snapshot() == NewInitialBoard().Snapshot()
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			side: chess.Black,
			checkFn: func(b *chess.Board) bool {
				c, ok := b.OccupantAt(chess.MustParsePosition("e4"))
				_, e2 := b.OccupantAt(chess.MustParsePosition("e2"))
				return ok && c == chess.W(chess.Pawn) && !e2
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/3k4/8/8/8/4K3",
			side: chess.White,
			checkFn: func(b *chess.Board) bool {
				c, ok := b.OccupantAt(chess.MustParsePosition("d5"))
				return ok && c == chess.B(chess.King) && b.Count() == 2
			},
		},
		{name: "empty string", fen: "", wantErr: true},
		{name: "too few ranks", fen: "8/8/8/8/8/8/8 w", wantErr: true},
		{name: "short rank", fen: "7/8/8/8/8/8/8/8 w", wantErr: true},
		{name: "long rank", fen: "9/8/8/8/8/8/8/8 w", wantErr: true},
		{name: "piece past h-file", fen: "8p/8/8/8/8/8/8/8 w", wantErr: true},
		{name: "bad piece letter", fen: "7x/8/8/8/8/8/8/8 w", wantErr: true},
		{name: "bad side", fen: "8/8/8/8/8/8/8/8 x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, side, err := NewBoardFromFEN(tt.fen)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidFEN) {
					t.Errorf("NewBoardFromFEN() error = %v; want ErrInvalidFEN", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if side != tt.side {
				t.Errorf("side = %v; want %v", side, tt.side)
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed:\n%s", board)
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		side chess.Side
	}{
		{"initial", InitialFEN, chess.White},
		{"open file", "r3k2r/ppp2ppp/8/3pP3/8/8/PPP2PPP/R3K2R b - - 0 1", chess.Black},
		{"empty", "8/8/8/8/8/8/8/8 w - - 0 1", chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, side, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board, side); got != tt.fen {
				t.Errorf("BoardToFEN() = %q; want %q", got, tt.fen)
			}
			if side != tt.side {
				t.Errorf("side = %v; want %v", side, tt.side)
			}
		})
	}
}

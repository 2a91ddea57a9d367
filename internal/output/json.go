package output

import (
	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/engine"
	"github.com/lgbarn/chess-game-go/internal/game"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	FEN             string            `json:"fen"`
	ToMove          string            `json:"toMove"` // "white" or "black"
	Ply             int               `json:"ply"`
	State           string            `json:"state"`
	Squares         map[string]string `json:"squares"`
	CapturedByWhite []string          `json:"capturedByWhite,omitempty"`
	CapturedByBlack []string          `json:"capturedByBlack,omitempty"`
}

// JSONMoves represents a piece's move list in JSON format.
type JSONMoves struct {
	Piece string   `json:"piece"`
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

// JSONRecord is one entry of the output: a board or a move list.
type JSONRecord struct {
	Board *JSONBoard `json:"board,omitempty"`
	Moves *JSONMoves `json:"moves,omitempty"`
}

// JSONOutput holds buffered records for array output.
type JSONOutput struct {
	Records []JSONRecord `json:"records"`
}

// BoardToJSON converts the game's board to JSON format.
func BoardToJSON(g *game.Game) (*JSONBoard, error) {
	snap, err := g.Board()
	if err != nil {
		return nil, err
	}

	jb := &JSONBoard{
		FEN:             engine.BoardToFEN(&snap, g.WhoseTurn()),
		ToMove:          colorName(g.WhoseTurn()),
		Ply:             g.Ply(),
		State:           g.State().String(),
		Squares:         make(map[string]string),
		CapturedByWhite: characterNames(g.Captured(chess.White)),
		CapturedByBlack: characterNames(g.Captured(chess.Black)),
	}
	for i := 0; i < chess.NumCells; i++ {
		pos, _ := chess.PositionFromIndex(i)
		if c, ok := snap.OccupantAt(pos); ok {
			jb.Squares[pos.String()] = c.String()
		}
	}
	return jb, nil
}

// MovesToJSON converts a move list to JSON format.
func MovesToJSON(c chess.Character, from chess.Position, moves []chess.Position) *JSONMoves {
	jm := &JSONMoves{
		Piece: c.String(),
		From:  from.String(),
		Moves: make([]string, len(moves)),
	}
	for i, m := range moves {
		jm.Moves[i] = m.String()
	}
	return jm
}

// colorName returns "white" or "black".
func colorName(s chess.Side) string {
	if s == chess.Black {
		return "black"
	}
	return "white"
}

func characterNames(cs []chess.Character) []string {
	if len(cs) == 0 {
		return nil
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return names
}

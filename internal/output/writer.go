package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/game"
)

// BoardWriter is the interface for writing game state to output.
// Different implementations handle different formats (text, JSON).
type BoardWriter interface {
	// WriteBoard writes the current board of g.
	WriteBoard(g *game.Game) error

	// WriteMoves writes the move list of the character c on from.
	WriteMoves(c chess.Character, from chess.Position, moves []chess.Position) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Render.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	if cfg.Render != nil && cfg.Render.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes boards as a text grid.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteBoard writes the board grid.
func (tw *TextWriter) WriteBoard(g *game.Game) error {
	text, err := FormatBoard(g, tw.cfg.Render)
	if err != nil {
		return err
	}
	_, err = io.WriteString(tw.w, text)
	return err
}

// WriteMoves writes one line listing the squares.
func (tw *TextWriter) WriteMoves(c chess.Character, from chess.Position, moves []chess.Position) error {
	_, err := io.WriteString(tw.w, FormatMoves(c, from, moves))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as one document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	records []JSONRecord
	single  bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		records: make([]JSONRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteBoard records the board.
func (jw *JSONWriter) WriteBoard(g *game.Game) error {
	jb, err := BoardToJSON(g)
	if err != nil {
		return err
	}
	return jw.add(JSONRecord{Board: jb})
}

// WriteMoves records a move list.
func (jw *JSONWriter) WriteMoves(c chess.Character, from chess.Position, moves []chess.Position) error {
	return jw.add(JSONRecord{Moves: MovesToJSON(c, from, moves)})
}

func (jw *JSONWriter) add(r JSONRecord) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	jw.records = append(jw.records, r)
	return nil
}

// Flush writes all buffered records as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.records) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Records: jw.records})

	// Clear buffer after writing
	jw.records = jw.records[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

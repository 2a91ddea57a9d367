package config

import (
	"fmt"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/errors"
)

// RenderConfig holds settings related to board output.
type RenderConfig struct {
	// Glyphs selects letters or Unicode figures for pieces
	Glyphs chess.Glyphs

	// JSONFormat enables JSON output instead of the text grid
	JSONFormat bool

	// ShowCaptures lists captured pieces under the board
	ShowCaptures bool

	// ShowTurn prints the side to move under the board
	ShowTurn bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Glyphs:       chess.LetterGlyphs,
		ShowCaptures: true,
		ShowTurn:     true,
	}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if r.Glyphs != chess.LetterGlyphs && r.Glyphs != chess.UnicodeGlyphs {
		return fmt.Errorf("glyph set %d: %w", r.Glyphs, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseGlyphs converts a glyph set name to its value.
func ParseGlyphs(name string) (chess.Glyphs, error) {
	switch name {
	case "letters", "":
		return chess.LetterGlyphs, nil
	case "unicode":
		return chess.UnicodeGlyphs, nil
	default:
		return chess.LetterGlyphs, fmt.Errorf("glyph set %q: %w", name, errors.ErrInvalidConfig)
	}
}

// Package output writes boards and move lists as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/game"
)

// OutputBoard writes the game's board as text to cfg.OutputFile.
func OutputBoard(g *game.Game, cfg *config.Config) error {
	text, err := FormatBoard(g, cfg.Render)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cfg.OutputFile, text)
	return err
}

// FormatBoard renders the board grid followed by the turn and capture
// lines that rc enables. A nil rc uses the defaults.
func FormatBoard(g *game.Game, rc *config.RenderConfig) (string, error) {
	if rc == nil {
		rc = config.NewRenderConfig()
	}
	snap, err := g.Board()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(chess.Render(&snap, rc.Glyphs))
	if rc.ShowTurn {
		fmt.Fprintf(&sb, "%s to move\n", g.WhoseTurn())
	}
	if rc.ShowCaptures {
		for _, side := range []chess.Side{chess.White, chess.Black} {
			fmt.Fprintf(&sb, "Captured by %s: %s\n", side, formatCaptures(g.Captured(side), rc.Glyphs))
		}
	}
	return sb.String(), nil
}

// FormatMoves lists the squares a piece on from may take, origin first.
func FormatMoves(c chess.Character, from chess.Position, moves []chess.Position) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return fmt.Sprintf("%s %s: %s\n", c, from, strings.Join(names, " "))
}

// formatCaptures joins captured symbols, or "-" for none.
func formatCaptures(cs []chess.Character, g chess.Glyphs) string {
	if len(cs) == 0 {
		return "-"
	}
	symbols := make([]string, len(cs))
	for i, c := range cs {
		symbols[i] = string(c.Symbol(g))
	}
	return strings.Join(symbols, " ")
}

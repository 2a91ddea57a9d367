package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/engine"
	"github.com/lgbarn/chess-game-go/internal/errors"
	"github.com/lgbarn/chess-game-go/internal/game"
	"github.com/lgbarn/chess-game-go/internal/output"
)

// Runner replays script lines against one game.
type Runner struct {
	cfg    *config.Config
	game   *game.Game
	writer output.BoardWriter

	commands int
	failures int
}

// NewRunner creates a runner that writes boards and move lists to w.
func NewRunner(cfg *config.Config, g *game.Game, w output.BoardWriter) *Runner {
	return &Runner{cfg: cfg, game: g, writer: w}
}

// Commands returns the number of commands executed so far.
func (r *Runner) Commands() int { return r.commands }

// Failures returns the number of rejected commands.
func (r *Runner) Failures() int { return r.failures }

// Run executes every line of in. Blank lines and lines starting with #
// are skipped. A rejected command stops the run unless the script config
// says to keep going, in which case it is logged.
func (r *Runner) Run(in io.Reader, name string) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if r.cfg.Script.EchoCommands {
			fmt.Fprintf(r.cfg.LogFile, "> %s\n", text)
		}

		r.commands++
		if err := r.Execute(text); err != nil {
			r.failures++
			perr := &errors.ParseError{Err: err, File: name, Line: lineNo, Input: text}
			if r.cfg.Script.StopOnError {
				return perr
			}
			r.cfg.Logf(config.Summary, "%v", perr)
		}
	}

	return scanner.Err()
}

// Execute runs a single command.
func (r *Runner) Execute(text string) error {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return errors.ErrUnknownCommand
	}

	switch fields[0] {
	case "show":
		if len(fields) != 1 {
			break
		}
		return r.writer.WriteBoard(r.game)
	case "moves":
		switch len(fields) {
		case 1:
			return r.showAllMoves()
		case 2:
			return r.showMoves(fields[1])
		}
	case "back":
		if len(fields) != 2 {
			break
		}
		return r.pickAndReturn(fields[1])
	case "promote":
		if len(fields) != 2 {
			break
		}
		return r.promote(fields[1])
	case "start":
		return r.start(fields[1:])
	default:
		if len(fields) != 2 {
			break
		}
		if _, err := chess.ParsePosition(fields[0]); err != nil {
			break
		}
		_, err := r.game.Move(fields[0], fields[1])
		return err
	}
	return errors.ErrUnknownCommand
}

// showMoves writes the move list of the piece on square and puts it back.
func (r *Runner) showMoves(square string) error {
	p, err := r.game.PickAt(square)
	if err != nil {
		return err
	}
	moves := p.PossibleMoves()
	if err := p.PlaceBack(r.game); err != nil {
		return err
	}
	return r.writer.WriteMoves(p.Character(), p.Origin(), moves)
}

// showAllMoves writes the move list of every piece of the side to move
// that can go somewhere, in board order from a8.
func (r *Runner) showAllMoves() error {
	snap, err := r.game.Board()
	if err != nil {
		return err
	}
	side := r.game.WhoseTurn()
	bySquare := engine.MovesForSide(&snap, side)

	origins := make([]chess.Position, 0, len(bySquare))
	for from := range bySquare {
		origins = append(origins, from)
	}
	sort.Slice(origins, func(i, j int) bool { return origins[i].Index() < origins[j].Index() })

	for _, from := range origins {
		c, _ := snap.OccupantAt(from)
		if err := r.writer.WriteMoves(c, from, bySquare[from]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) pickAndReturn(square string) error {
	p, err := r.game.PickAt(square)
	if err != nil {
		return err
	}
	return p.PlaceBack(r.game)
}

func (r *Runner) promote(square string) error {
	pos, err := chess.ParsePosition(square)
	if err != nil {
		return err
	}
	_, err = r.game.PromotePawn(pos)
	return err
}

func (r *Runner) start(args []string) error {
	switch {
	case len(args) == 0:
		return r.game.Start()
	case len(args) == 1 && args[0] == "white":
		return r.game.StartWith(chess.White)
	case len(args) == 1 && args[0] == "black":
		return r.game.StartWith(chess.Black)
	}
	return errors.ErrUnknownCommand
}

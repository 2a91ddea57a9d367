// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-game-go/internal/chess"
	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/engine"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	glyphSet     = flag.String("glyphs", "letters", "Piece symbols: letters, unicode")
	noCaptures   = flag.Bool("nocaptures", false, "Don't list captured pieces under the board")
	noTurn       = flag.Bool("noturn", false, "Don't print the side to move under the board")
	noFinal      = flag.Bool("nofinal", false, "Don't print the board after the script")

	// Game setup
	startFEN   = flag.String("fen", "", "Start from this FEN piece placement")
	blackFirst = flag.Bool("black", false, "Black moves first")

	// Script handling
	echoCommands = flag.Bool("echo", false, "Echo script commands to the log")
	keepGoing    = flag.Bool("k", false, "Keep going after a rejected command")
	workers      = flag.Int("j", 1, "Play up to N script files at once, each as its own game")

	// Logging
	logFile   = flag.String("l", "", "Log file (default: stderr)")
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 quiet, 1 summary, 2 commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Profiling
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile into this directory")
	memProfile = flag.String("memprofile", "", "Write a heap profile into this directory")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyRenderFlags(cfg); err != nil {
		return err
	}
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyScriptFlags(cfg)
	applyLogFlags(cfg)
	return nil
}

// applyRenderFlags configures board output.
func applyRenderFlags(cfg *config.Config) error {
	glyphs, err := config.ParseGlyphs(*glyphSet)
	if err != nil {
		return err
	}
	cfg.Render.Glyphs = glyphs
	cfg.Render.JSONFormat = *jsonOutput
	cfg.Render.ShowCaptures = !*noCaptures
	cfg.Render.ShowTurn = !*noTurn
	return nil
}

// applyGameFlags sets the starting position and side.
// A FEN's side to move applies unless -black overrides it.
func applyGameFlags(cfg *config.Config) error {
	if *startFEN != "" {
		_, side, err := engine.NewBoardFromFEN(*startFEN)
		if err != nil {
			return err
		}
		cfg.StartFEN = *startFEN
		cfg.StartSide = side
	}
	if *blackFirst {
		cfg.StartSide = chess.Black
	}
	return nil
}

// applyScriptFlags configures script replay.
func applyScriptFlags(cfg *config.Config) {
	cfg.Script.EchoCommands = *echoCommands
	cfg.Script.StopOnError = !*keepGoing
	cfg.Script.Workers = *workers
}

// applyLogFlags sets the verbosity level.
func applyLogFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

// chess-game replays scripts of moves on a two-player chess board.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"

	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/game"
	"github.com/lgbarn/chess-game-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-game-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(cfg, flag.Args()))
}

// run plays every script in args (stdin when empty) and returns the exit code.
func run(cfg *config.Config, args []string) int {
	if p := startProfiling(); p != nil {
		defer p.Stop()
	}

	if cfg.Script.Workers > 1 && len(args) > 1 {
		return runParallel(cfg, args)
	}

	g := game.New(cfg)
	if err := g.Start(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	writer := output.NewWriter(cfg.OutputFile, cfg)
	runner := NewRunner(cfg, g, writer)

	err := processAllInputs(runner, args)
	if err == nil && !*noFinal {
		err = writer.WriteBoard(g)
	}
	if cerr := writer.Close(); err == nil {
		err = cerr
	}

	cfg.Logf(config.Summary, "%d command(s), %d rejected, %d ply played.",
		runner.Commands(), runner.Failures(), g.Ply())

	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if runner.Failures() > 0 {
		return 2
	}
	return 0
}

// processAllInputs runs the scripts named in args, or stdin.
func processAllInputs(runner *Runner, args []string) error {
	if len(args) == 0 {
		return runner.Run(os.Stdin, "stdin")
	}

	for _, filename := range args {
		if err := processFile(runner, filename); err != nil {
			return err
		}
	}
	return nil
}

func processFile(runner *Runner, filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only file

	return runner.Run(file, filename)
}

// startProfiling starts the profile requested on the command line, if any.
// Only one profile runs at a time; CPU wins when both are asked for.
func startProfiling() interface{ Stop() } {
	switch {
	case *cpuProfile != "":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet, profile.NoShutdownHook)
	case *memProfile != "":
		return profile.Start(profile.MemProfile, profile.ProfilePath(*memProfile), profile.Quiet, profile.NoShutdownHook)
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	w := io.Writer(os.Stderr)
	fmt.Fprintf(w, "Usage: chess-game [options] [script-files...]\n\n")
	fmt.Fprintf(w, "Replays move scripts on a two-player chess board.\n\n")
	fmt.Fprintf(w, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(w, "\nScript commands (one per line, # starts a comment):\n")
	fmt.Fprintf(w, "  e2 e4        move the piece on e2 to e4\n")
	fmt.Fprintf(w, "  back c1      pick the piece on c1 and put it back\n")
	fmt.Fprintf(w, "  moves c1     list the squares the piece on c1 can take\n")
	fmt.Fprintf(w, "  promote a7   advance the pawn on a7 and make it a queen\n")
	fmt.Fprintf(w, "  show         print the board\n")
	fmt.Fprintf(w, "  start [side] set up a new game, optionally naming who moves first\n")
}

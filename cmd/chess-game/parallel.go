package main

import (
	"bytes"
	"fmt"

	"github.com/lgbarn/chess-game-go/internal/config"
	"github.com/lgbarn/chess-game-go/internal/game"
	"github.com/lgbarn/chess-game-go/internal/output"
	"github.com/lgbarn/chess-game-go/internal/worker"
)

// runParallel plays each script file as its own game on a worker pool and
// writes the outputs in argument order.
func runParallel(cfg *config.Config, files []string) int {
	results := worker.RunAll(files, cfg.Script.StopOnError, func(job worker.Job) worker.Result {
		return playScript(cfg, job)
	}, worker.WithWorkers(cfg.Script.Workers))

	code := 0
	commands, failures := 0, 0
	for _, r := range results {
		if len(results) > 1 && !cfg.Render.JSONFormat {
			fmt.Fprintf(cfg.OutputFile, "== %s ==\n", r.Name)
		}
		cfg.OutputFile.Write(r.Output) //nolint:errcheck,gosec // G104: best effort like the text writer
		cfg.LogFile.Write(r.Log)       //nolint:errcheck,gosec // G104: log stream

		commands += r.Commands
		failures += r.Failures
		switch {
		case r.Err != nil:
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", r.Err)
			code = 1
		case r.Failures > 0 && code == 0:
			code = 2
		}
	}

	if skipped := len(files) - len(results); skipped > 0 {
		cfg.Logf(config.Summary, "%d script(s) skipped after an error.", skipped)
		if code == 0 {
			code = 1
		}
	}
	cfg.Logf(config.Summary, "%d script(s), %d command(s), %d rejected.", len(results), commands, failures)
	return code
}

// playScript plays one script in a fresh game, buffering what it writes.
func playScript(base *config.Config, job worker.Job) worker.Result {
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg := base.Clone()
	cfg.OutputFile = out
	cfg.LogFile = log

	result := worker.Result{Index: job.Index, Name: job.Name}

	g := game.New(cfg)
	if err := g.Start(); err != nil {
		result.Err = err
		return result
	}

	writer := output.NewWriter(out, cfg)
	runner := NewRunner(cfg, g, writer)

	err := processFile(runner, job.Name)
	if err == nil && !*noFinal {
		err = writer.WriteBoard(g)
	}
	if cerr := writer.Close(); err == nil {
		err = cerr
	}

	result.Output = out.Bytes()
	result.Log = log.Bytes()
	result.Commands = runner.Commands()
	result.Failures = runner.Failures()
	result.Ply = g.Ply()
	result.Err = err
	return result
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-game-go/internal/config"
)

// writeScript writes a script into a temp dir and returns its path.
func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func runWithBuffers(t *testing.T, cfg *config.Config, args ...string) (int, string, string) {
	t.Helper()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}
	cfg.OutputFile = out
	cfg.LogFile = log
	code := run(cfg, args)
	return code, out.String(), log.String()
}

func TestRun_Success(t *testing.T) {
	path := writeScript(t, "e2 e4\ne7 e5\ng1 f3\n")

	code, out, log := runWithBuffers(t, config.NewConfig(), path)
	if code != 0 {
		t.Fatalf("run() = %d; log:\n%s", code, log)
	}
	if !strings.Contains(out, "Black to move\n") {
		t.Errorf("final board missing:\n%s", out)
	}
	if !strings.Contains(log, "3 command(s), 0 rejected, 3 ply played.") {
		t.Errorf("summary missing:\n%s", log)
	}
}

func TestRun_MultipleFiles(t *testing.T) {
	first := writeScript(t, "e2 e4\n")
	second := writeScript(t, "e7 e5\n")

	code, _, log := runWithBuffers(t, config.NewConfig(), first, second)
	if code != 0 {
		t.Fatalf("run() = %d; log:\n%s", code, log)
	}
	if !strings.Contains(log, "2 ply played") {
		t.Errorf("summary = %q; want both scripts played", log)
	}
}

func TestRun_RejectedMove(t *testing.T) {
	path := writeScript(t, "e2 e5\n")

	code, out, log := runWithBuffers(t, config.NewConfig(), path)
	if code != 1 {
		t.Errorf("run() = %d; want 1", code)
	}
	if out != "" {
		t.Errorf("no board expected after a stop, got:\n%s", out)
	}
	if !strings.Contains(log, "script.txt:1") || !strings.Contains(log, "invalid move") {
		t.Errorf("log = %q; want located error", log)
	}
}

func TestRun_KeepGoing(t *testing.T) {
	path := writeScript(t, "e2 e5\ne2 e4\n")
	cfg := config.NewConfigBuilder().WithStopOnError(false).Build()

	code, out, _ := runWithBuffers(t, cfg, path)
	if code != 2 {
		t.Errorf("run() = %d; want 2", code)
	}
	if !strings.Contains(out, "Black to move\n") {
		t.Errorf("final board missing:\n%s", out)
	}
}

func TestRun_MissingFile(t *testing.T) {
	code, _, log := runWithBuffers(t, config.NewConfig(), filepath.Join(t.TempDir(), "nope.txt"))
	if code != 1 {
		t.Errorf("run() = %d; want 1", code)
	}
	if !strings.Contains(log, "nope.txt") {
		t.Errorf("log = %q; want file name", log)
	}
}

func TestRun_BadStartFEN(t *testing.T) {
	cfg := config.NewConfigBuilder().WithStartFEN("8/8").Build()
	code, _, log := runWithBuffers(t, cfg, writeScript(t, ""))
	if code != 1 {
		t.Errorf("run() = %d; want 1", code)
	}
	if !strings.Contains(log, "invalid FEN") {
		t.Errorf("log = %q; want FEN error", log)
	}
}

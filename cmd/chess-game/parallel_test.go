package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-game-go/internal/config"
)

// writeScripts writes each script into one temp dir and returns the paths.
func writeScripts(t *testing.T, scripts ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(scripts))
	for i, content := range scripts {
		paths[i] = filepath.Join(dir, "game"+string(rune('a'+i))+".txt")
		if err := os.WriteFile(paths[i], []byte(content), 0600); err != nil {
			t.Fatalf("writing script: %v", err)
		}
	}
	return paths
}

func TestRunParallel_Order(t *testing.T) {
	paths := writeScripts(t,
		"e2 e4\n",
		"e2 e4\ne7 e5\n",
		"g1 f3\ng8 f6\nb1 c3\n",
	)
	cfg := config.NewConfigBuilder().WithWorkers(3).Build()

	code, out, log := runWithBuffers(t, cfg, paths...)
	if code != 0 {
		t.Fatalf("run() = %d; log:\n%s", code, log)
	}

	a := strings.Index(out, "== "+paths[0]+" ==")
	b := strings.Index(out, "== "+paths[1]+" ==")
	c := strings.Index(out, "== "+paths[2]+" ==")
	if a < 0 || b < a || c < b {
		t.Errorf("sections out of order (%d, %d, %d):\n%s", a, b, c, out)
	}
	if got := strings.Count(out, "Black to move\n"); got != 2 {
		t.Errorf("Black to move appears %d times; want 2 (games are independent)", got)
	}
	if !strings.Contains(log, "3 script(s), 6 command(s), 0 rejected.") {
		t.Errorf("summary missing:\n%s", log)
	}
}

func TestRunParallel_Failure(t *testing.T) {
	paths := writeScripts(t, "e2 e5\n", "e2 e4\n")
	cfg := config.NewConfigBuilder().WithWorkers(2).WithStopOnError(false).Build()

	code, _, log := runWithBuffers(t, cfg, paths...)
	if code != 2 {
		t.Errorf("run() = %d; want 2", code)
	}
	if !strings.Contains(log, "1 rejected") {
		t.Errorf("log = %q; want one rejection", log)
	}
}

func TestRunParallel_MissingFile(t *testing.T) {
	paths := writeScripts(t, "e2 e4\n")
	paths = append(paths, filepath.Join(t.TempDir(), "missing.txt"))
	cfg := config.NewConfigBuilder().WithWorkers(2).WithStopOnError(false).Build()

	code, _, log := runWithBuffers(t, cfg, paths...)
	if code != 1 {
		t.Errorf("run() = %d; want 1", code)
	}
	if !strings.Contains(log, "missing.txt") {
		t.Errorf("log = %q; want the missing file named", log)
	}
}

package bench

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sokosolve/sokosolve/internal/cache"
	"github.com/sokosolve/sokosolve/internal/levels"
)

func writeLevelFixture(t *testing.T, dir string, n int, src string) {
	t.Helper()
	path := filepath.Join(dir, "level"+itoa(n)+".txt")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}

func TestHarnessRunSolvesEveryCell(t *testing.T) {
	dir := t.TempDir()
	writeLevelFixture(t, dir, 0, "#####\n#@$.#\n#####\n")

	h := &Harness{
		Library:    levels.NewLibrary(dir),
		Levels:     []int{0},
		Weights:    []float64{1.0, 2.0},
		NumWorkers: 2,
		MaxRetries: 5,
	}

	report := h.Run()
	if len(report) != 2 {
		t.Fatalf("report has %d weight buckets, want 2", len(report))
	}
	for _, wk := range []string{"1", "2"} {
		cell, ok := report[wk]["0"]
		if !ok {
			t.Fatalf("missing cell for weight %s level 0", wk)
		}
		if cell.Length == 0 {
			t.Errorf("weight %s level 0: expected a non-zero solution length", wk)
		}
	}
}

func TestHarnessRunSequentialWhenNumWorkersZero(t *testing.T) {
	dir := t.TempDir()
	writeLevelFixture(t, dir, 0, "#####\n#@$.#\n#####\n")

	h := &Harness{
		Library:    levels.NewLibrary(dir),
		Levels:     []int{0},
		Weights:    []float64{1.0},
		MaxRetries: 5,
	}
	report := h.Run()
	if _, ok := report["1"]["0"]; !ok {
		t.Fatalf("expected a solved cell under sequential execution")
	}
}

func TestReportWriteFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	report := NewReport()
	report.Set(1.0, 0, cache.Cell{ElapsedTime: 0.01, BFactor: 2, Length: 3})

	path, err := report.WriteFile(dir, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written report: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty report file")
	}
	if filepath.Base(path) != "results_20260102_030405.json" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}
}

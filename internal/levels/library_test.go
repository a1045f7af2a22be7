package levels

import (
	"os"
	"path/filepath"
	"testing"
)

const tinyLevel = "#####\n#@$.#\n#####\n"

func writeLevel(t *testing.T, dir string, n int) {
	t.Helper()
	path := filepath.Join(dir, "level"+itoa(n)+".txt")
	if err := os.WriteFile(path, []byte(tinyLevel), 0644); err != nil {
		t.Fatalf("writing fixture level: %v", err)
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

func TestLoadParsesAndCaches(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 1)

	lib := NewLibrary(dir)
	g, err := lib.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 5 {
		t.Fatalf("unexpected dimensions %dx%d", g.Rows(), g.Cols())
	}

	// Remove the file; a cached Load must still succeed.
	if err := os.Remove(lib.Path(1)); err != nil {
		t.Fatalf("removing fixture: %v", err)
	}
	if _, err := lib.Load(1); err != nil {
		t.Fatalf("Load from cache after file removal: %v", err)
	}
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 2)

	lib := NewLibrary(dir)
	a, err := lib.Load(2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	b, err := lib.Load(2)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a.Set(0, 0, a.Get(1, 1))
	if a.Get(0, 0) == b.Get(0, 0) {
		t.Fatalf("Load returned aliased grids: mutating one mutated the other")
	}
}

func TestLoadMissingFile(t *testing.T) {
	lib := NewLibrary(t.TempDir())
	if _, err := lib.Load(99); err == nil {
		t.Fatalf("expected an error loading a nonexistent level")
	}
}

func TestClearForcesReload(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, 3)

	lib := NewLibrary(dir)
	if _, err := lib.Load(3); err != nil {
		t.Fatalf("Load: %v", err)
	}
	lib.Clear()
	if err := os.Remove(lib.Path(3)); err != nil {
		t.Fatalf("removing fixture: %v", err)
	}
	if _, err := lib.Load(3); err == nil {
		t.Fatalf("expected Load to miss cache after Clear and fail on missing file")
	}
}

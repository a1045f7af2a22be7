// Package levels loads and caches Sokoban level files from the
// levels/level<N>.txt convention of spec §6.
package levels

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/sokosolve/sokosolve/internal/grid"
)

// Library loads level files from a directory on demand and caches the
// parsed Grid by level number, grounded on book.Book's load-once-cache-by-
// key shape (there: Polyglot binary records keyed by position hash; here:
// ASCII grid files keyed by level number).
type Library struct {
	dir string

	mu    sync.Mutex
	cache map[int]*grid.Grid
}

// NewLibrary builds a Library rooted at dir (typically "levels").
func NewLibrary(dir string) *Library {
	return &Library{dir: dir, cache: make(map[int]*grid.Grid)}
}

// Path returns the on-disk path for level n under the library's directory.
func (l *Library) Path(n int) string {
	return filepath.Join(l.dir, fmt.Sprintf("level%d.txt", n))
}

// Load returns the parsed grid for level n, loading and caching it on
// first access. Returns *grid.BadLevelFormatError on malformed input, or
// an *os.PathError if the file cannot be opened.
func (l *Library) Load(n int) (*grid.Grid, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if g, ok := l.cache[n]; ok {
		return g.Clone(), nil
	}

	g, err := grid.Load(l.Path(n))
	if err != nil {
		return nil, err
	}
	l.cache[n] = g
	return g.Clone(), nil
}

// Clear drops every cached level, forcing the next Load to re-read from
// disk.
func (l *Library) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[int]*grid.Grid)
}

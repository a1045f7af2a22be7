package sokoban

import (
	"github.com/cespare/xxhash/v2"

	"github.com/sokosolve/sokosolve/internal/grid"
)

// assignEntry caches MinCostAssign's result for one box layout.
type assignEntry struct {
	key   uint64
	value int
	used  bool
}

// AssignmentCache is a fixed-size, power-of-two-indexed hash table caching
// MinCostAssign results keyed only by box layout (not the full state, which
// also varies with player position and would churn the cache far more
// often). Grounded on engine/pawnhash.go's PawnTable: pawn structure and
// box layout are both "slow-changing substructure" relative to the
// full-state hash, so the same fixed-slot replace-on-collision table shape
// applies directly — only the entry payload changes.
type AssignmentCache struct {
	entries []assignEntry
	mask    uint64
}

// NewAssignmentCache creates a cache with 2^bits slots.
func NewAssignmentCache(bits int) *AssignmentCache {
	size := 1 << uint(bits)
	return &AssignmentCache{
		entries: make([]assignEntry, size),
		mask:    uint64(size - 1),
	}
}

func hashBoxes(boxes []grid.Pos) uint64 {
	buf := make([]byte, 0, len(boxes)*8)
	for _, p := range boxes {
		buf = append(buf,
			byte(p.Row), byte(p.Row>>8), byte(p.Row>>16), byte(p.Row>>24),
			byte(p.Col), byte(p.Col>>8), byte(p.Col>>16), byte(p.Col>>24),
		)
	}
	return xxhash.Sum64(buf)
}

// Probe looks up a cached assignment cost for the given box layout.
func (c *AssignmentCache) Probe(boxes []grid.Pos) (int, bool) {
	h := hashBoxes(boxes)
	e := &c.entries[h&c.mask]
	if e.used && e.key == h {
		return e.value, true
	}
	return 0, false
}

// Store records an assignment cost for the given box layout, evicting
// whatever previously occupied the slot.
func (c *AssignmentCache) Store(boxes []grid.Pos, value int) {
	h := hashBoxes(boxes)
	e := &c.entries[h&c.mask]
	e.key = h
	e.value = value
	e.used = true
}

// Package sokoban implements the reversible Sokoban search state: forward
// push/move, backward pull/undo, hashing, box/goal locators and deadlock
// detection.
package sokoban

import (
	"github.com/cespare/xxhash/v2"

	"github.com/sokosolve/sokosolve/internal/grid"
)

// Direction is one of the four cardinal directions, plus Stay used as the
// sentinel "no move" direction when reconstructing a path's root.
type Direction uint8

const (
	Stay Direction = iota
	Up
	Down
	Left
	Right
)

var deltas = [...]grid.Pos{
	Stay:  {0, 0},
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// Delta returns the (drow, dcol) offset for a direction.
func (d Direction) Delta() grid.Pos {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Stay"
	}
}

// Action packs a direction and a pull flag into a single byte, following
// board.Move's packed-move-encoding idiom: bits 0-2 hold the direction
// (0-4), bit 3 holds the pull flag. Forward actions never set the pull bit;
// it is only meaningful for backward (undo) actions.
type Action uint8

const pullBit Action = 1 << 3

// NewAction builds a forward action (pull is always false for forward moves).
func NewAction(dir Direction) Action {
	return Action(dir)
}

// NewBackwardAction builds a backward action: a direction paired with
// whether the undo drags a box along (a pull).
func NewBackwardAction(dir Direction, pull bool) Action {
	a := Action(dir)
	if pull {
		a |= pullBit
	}
	return a
}

// Dir returns the direction component of an action.
func (a Action) Dir() Direction {
	return Direction(a & 0x7)
}

// Pull returns the pull flag of a backward action.
func (a Action) Pull() bool {
	return a&pullBit != 0
}

// Forward discards the pull flag, returning the forward-equivalent action —
// used when splicing a backward path's actions onto a forward solution
// (spec's bidirectional path reconstruction only needs the direction).
func (a Action) Forward() Action {
	return NewAction(a.Dir())
}

func (a Action) String() string {
	if a.Pull() {
		return a.Dir().String() + "+pull"
	}
	return a.Dir().String()
}

// StateKey is the hashable identity of a State: the raw byte image of its
// tile grid. Strings are the only Go type that is both variable-length and
// comparable, so — as in bertbaron-pathfinding's sokoban example — it
// doubles as a map key.
type StateKey string

// State is a Sokoban board together with the player's cached position. Two
// states are equal iff their tile grids are element-wise equal (I1-I4 in
// the data model hold after every mutation below).
type State struct {
	g      *grid.Grid
	player grid.Pos
}

// FromGrid builds a State that owns g (g must not be mutated afterwards by
// the caller).
func FromGrid(g *grid.Grid) *State {
	pos, ok := g.LocatePlayer()
	if !ok {
		panic("sokoban: invariant I1 violated: grid has no player")
	}
	return &State{g: g, player: pos}
}

// Copy returns an independent deep copy of s.
func (s *State) Copy() *State {
	return &State{g: s.g.Clone(), player: s.player}
}

// Grid exposes the underlying tile grid for read-only queries.
func (s *State) Grid() *grid.Grid { return s.g }

// Player returns the player's cached position.
func (s *State) Player() grid.Pos { return s.player }

// Key returns the byte-image identity of the state.
func (s *State) Key() StateKey {
	return StateKey(s.g.Bytes())
}

// Hash returns a 64-bit digest of the state, independent of but consistent
// with Key (equal states always hash equal). Mirrors board.zobrist's
// fixed-seed hashing idiom, generalized from incremental XOR updates (not
// used here, since states are copy-on-write rather than incrementally
// mutated) to a one-shot digest over the byte image.
func (s *State) Hash() uint64 {
	return xxhash.Sum64(s.g.Bytes())
}

// Equal reports whether two states have identical tile grids.
func (s *State) Equal(other *State) bool {
	return s.Key() == other.Key()
}

// Less provides a total order consistent with Key, used only to break
// priority-queue ties deterministically.
func (s *State) Less(other *State) bool {
	return s.Key() < other.Key()
}

// IsAllBoxesPlaced reports whether no Box (non-goal-overlaid) tile remains —
// the Sokoban goal test.
func (s *State) IsAllBoxesPlaced() bool {
	g := s.g
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Get(r, c) == grid.Box {
				return false
			}
		}
	}
	return true
}

// LocateBoxes returns the positions of every box cell (Box or GoalBox).
func (s *State) LocateBoxes() []grid.Pos {
	return s.locateWhere(func(t grid.Tile) bool { return t.IsBoxCell() })
}

// LocateGoals returns the positions of every goal cell.
func (s *State) LocateGoals() []grid.Pos {
	return s.locateWhere(func(t grid.Tile) bool { return t.IsGoalCell() })
}

func (s *State) locateWhere(pred func(grid.Tile) bool) []grid.Pos {
	g := s.g
	var out []grid.Pos
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if pred(g.Get(r, c)) {
				out = append(out, grid.Pos{Row: r, Col: c})
			}
		}
	}
	return out
}

// SetToGoal rewrites the board into the canonical "every goal holds a box"
// layout used to seed the backward search: every Goal or GoalPlayer cell
// becomes a GoalBox, every Box not already on a goal is cleared to Space,
// and any stray Player tile is cleared the same way. The player's own
// position stops being meaningful once every goal is filled, so it is
// invalidated; GoalStates re-seeds it via PlacePlayer at a freshly chosen
// cell.
func (s *State) SetToGoal() {
	g := s.g
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			switch g.Get(r, c) {
			case grid.Box, grid.Player:
				g.Set(r, c, grid.Space)
			case grid.Goal, grid.GoalPlayer:
				g.Set(r, c, grid.GoalBox)
			}
		}
	}
	s.player = grid.Pos{Row: -1, Col: -1}
}

// PlacePlayer moves the cached player to p, overwriting whatever was there
// (used only when synthesizing goal states, where p is guaranteed to be an
// empty cell adjacent to a box). The old position is left untouched when it
// is out of bounds — SetToGoal invalidates it that way once the board no
// longer has a player tile to vacate.
func (s *State) PlacePlayer(p grid.Pos) {
	g := s.g
	old := s.player
	if s.inBounds(old) {
		if g.IsGoal(old.Row, old.Col) {
			g.Set(old.Row, old.Col, grid.Goal)
		} else {
			g.Set(old.Row, old.Col, grid.Space)
		}
	}
	if g.IsGoal(p.Row, p.Col) {
		g.Set(p.Row, p.Col, grid.GoalPlayer)
	} else {
		g.Set(p.Row, p.Col, grid.Player)
	}
	s.player = p
}

package sokoban

import "github.com/sokosolve/sokosolve/internal/grid"

// GoalStates synthesizes up to k canonical goal states for the backward
// search: every goal cell becomes a GoalBox, every current box not already
// on a goal is removed, and the player is placed in turn at up to k
// distinct empty cells adjacent to one of those goal-boxes, cycling through
// the goal-boxes round-robin (see adjacentEmptyCells). Every returned
// state satisfies IsAllBoxesPlaced by construction (spec §4.3 goal_states,
// §8 "goal invariance").
func (s *State) GoalStates(k int) []*State {
	base := s.Copy()
	base.SetToGoal()

	// Candidate cells must be computed from base, after SetToGoal has
	// populated every goal with a box — s's own (pre-transform) box layout
	// says nothing about which cells end up adjacent to a goal-box.
	candidates := adjacentEmptyCells(base)
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	var out []*State
	for _, p := range candidates {
		g := base.Copy()
		g.PlacePlayer(p)
		out = append(out, g)
	}
	if len(out) == 0 {
		// No box has a free adjacent cell (fully packed level); fall back to
		// the original player position so the backward search still has a
		// seed, same as the original engine's degenerate-case handling.
		fallback := base.Copy()
		fallback.PlacePlayer(s.player)
		out = append(out, fallback)
	}
	return out
}

// adjacentEmptyCells returns every empty (Space/Goal) cell adjacent to a
// box cell in s, interleaved round-robin across boxes: the first cell of
// every box, then the second of every box, and so on (boxes in row-major
// order, each box's cells in Up, Down, Left, Right order). A cell next to
// several boxes is listed once, under the first of them.
func adjacentEmptyCells(s *State) []grid.Pos {
	var perBox [][]grid.Pos
	seen := make(map[grid.Pos]bool)
	for _, b := range s.LocateBoxes() {
		var cells []grid.Pos
		for _, d := range []grid.Pos{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			p := add(b, d)
			if !s.inBounds(p) || seen[p] {
				continue
			}
			t := s.g.Get(p.Row, p.Col)
			if t == grid.Space || t == grid.Goal {
				seen[p] = true
				cells = append(cells, p)
			}
		}
		perBox = append(perBox, cells)
	}
	var out []grid.Pos
	for i := 0; len(out) < len(seen); i++ {
		for _, cells := range perBox {
			if i < len(cells) {
				out = append(out, cells[i])
			}
		}
	}
	return out
}

package sokoban

import "github.com/sokosolve/sokosolve/internal/grid"

// DeadlockPenalty is added to the forward heuristic whenever any box is
// dead-locked; it is a large constant rather than a per-box scale so that
// A* still prefers shorter dead-end branches over longer ones (spec §4.2.5:
// "intentionally admissible-leaning-optimistic... may be inadmissible but
// empirically speeds convergence").
const DeadlockPenalty = 50

// Heuristic computes the forward heuristic:
//
//	h(s) = MinCostAssign(boxes(s), goals(s))
//	     + PlayerToClosestBox(s)
//	     + 50 * [deadlock_count(s) > 0]
//
// cache may be nil, in which case assignment costs are recomputed every
// call.
func (s *State) Heuristic(cache *AssignmentCache) int {
	boxes := s.LocateBoxes()
	goals := s.LocateGoals()

	var assign int
	if cache != nil {
		if v, ok := cache.Probe(boxes); ok {
			assign = v
		} else {
			assign = MinCostAssign(boxes, goals)
			cache.Store(boxes, assign)
		}
	} else {
		assign = MinCostAssign(boxes, goals)
	}

	h := assign + s.playerToClosestBox(boxes)
	// HasCornerDeadlock is a strict subset of DeadlockCount>0 but far
	// cheaper to check, so it short-circuits the full iterative prune
	// whenever it already finds a dead box.
	if s.HasCornerDeadlock() || s.DeadlockCount() > 0 {
		h += DeadlockPenalty
	}
	return h
}

func (s *State) playerToClosestBox(boxes []grid.Pos) int {
	if len(boxes) == 0 {
		return 0
	}
	best := -1
	for _, b := range boxes {
		d := ManhattanDistance(s.player, b)
		if best == -1 || d < best {
			best = d
		}
	}
	return best
}

// ReHeuristic computes the symmetric backward heuristic:
//
//	re_heuristic(s) = MinCostAssign(boxes(s), init_boxes) + ManhattanDistance(player(s), init_player)
func (s *State) ReHeuristic(initBoxes []grid.Pos, initPlayer grid.Pos, cache *AssignmentCache) int {
	boxes := s.LocateBoxes()

	var assign int
	if cache != nil {
		if v, ok := cache.Probe(boxes); ok {
			assign = v
		} else {
			assign = MinCostAssign(boxes, initBoxes)
			cache.Store(boxes, assign)
		}
	} else {
		assign = MinCostAssign(boxes, initBoxes)
	}

	return assign + ManhattanDistance(s.player, initPlayer)
}

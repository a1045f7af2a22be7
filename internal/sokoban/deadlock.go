package sokoban

import "github.com/sokosolve/sokosolve/internal/grid"

var axes = [2]grid.Pos{
	{Row: 0, Col: 1}, // horizontal
	{Row: 1, Col: 0}, // vertical
}

// canPushAxis reports whether the box at p has at least one push axis free:
// both cells flanking it along that axis (p+d and p-d) are unblocked. Only
// walls and the boxes still in unpruned block; pruned boxes do not.
func (s *State) canPushAxis(p grid.Pos, unpruned map[grid.Pos]bool) bool {
	blocked := func(q grid.Pos) bool {
		t := s.g.Get(q.Row, q.Col)
		return t == grid.Wall || (t.IsBoxCell() && unpruned[q])
	}
	for _, d := range axes {
		fwd := add(p, d)
		back := grid.Pos{Row: p.Row - d.Row, Col: p.Col - d.Col}
		if !s.inBounds(fwd) || !s.inBounds(back) {
			continue
		}
		if !blocked(fwd) && !blocked(back) {
			return true
		}
	}
	return false
}

// DeadlockCount implements the iterative push-axis pruning of spec §4.2.5:
// repeatedly remove every box with a free push axis; boxes that never get
// pruned are frozen in place and counted as dead-locked. This is a cheap,
// intentionally optimistic over-approximation — a box can report "live"
// here yet still be unsolvable once its partners are accounted for.
func (s *State) DeadlockCount() int {
	boxes := s.LocateBoxes()
	dead := make(map[grid.Pos]bool, len(boxes))
	for _, b := range boxes {
		dead[b] = true
	}
	for {
		pruned := false
		for b := range dead {
			if s.canPushAxis(b, dead) {
				delete(dead, b)
				pruned = true
			}
		}
		if !pruned {
			break
		}
	}
	return len(dead)
}

// isCornerDeadlocked is a cheap pre-filter: a box not on a goal, flanked by
// a wall on both an adjacent horizontal and an adjacent vertical side, can
// never be pushed again regardless of what else prunes — equivalent to
// original_source/game/map.py's corner check, kept only as a fast-reject
// ahead of the full iterative count.
func (s *State) isCornerDeadlocked(p grid.Pos) bool {
	if s.g.IsGoal(p.Row, p.Col) {
		return false
	}
	up := grid.Pos{Row: p.Row - 1, Col: p.Col}
	down := grid.Pos{Row: p.Row + 1, Col: p.Col}
	left := grid.Pos{Row: p.Row, Col: p.Col - 1}
	right := grid.Pos{Row: p.Row, Col: p.Col + 1}

	vertBlocked := s.wallAt(up) || s.wallAt(down)
	horizBlocked := s.wallAt(left) || s.wallAt(right)
	return vertBlocked && horizBlocked
}

func (s *State) wallAt(p grid.Pos) bool {
	if !s.inBounds(p) {
		return true
	}
	return s.g.IsWall(p.Row, p.Col)
}

// HasCornerDeadlock reports whether any box is corner-deadlocked — used as
// a fast pre-filter before paying for the full DeadlockCount iteration.
func (s *State) HasCornerDeadlock() bool {
	for _, b := range s.LocateBoxes() {
		if s.isCornerDeadlocked(b) {
			return true
		}
	}
	return false
}

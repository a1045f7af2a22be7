package sokoban

import "github.com/sokosolve/sokosolve/internal/grid"

func add(p grid.Pos, d grid.Pos) grid.Pos {
	return grid.Pos{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// CanPush reports whether a push of the given direction is legal from the
// current player position: the cell beyond the box must be in-bounds and
// not a wall/box (the can_pull precondition of the original engine,
// restated forward as a push precondition — spec.md §4.2.1).
func (s *State) CanPush(dir Direction) bool {
	d := dir.Delta()
	boxPos := add(s.player, d)
	if !s.inBounds(boxPos) || !s.g.IsBox(boxPos.Row, boxPos.Col) {
		return false
	}
	beyond := add(boxPos, d)
	if !s.inBounds(beyond) {
		return false
	}
	return !s.g.Get(beyond.Row, beyond.Col).IsBlockerForPush()
}

// CanWalk reports whether the player can step in dir without encountering a
// box (a plain move, no push).
func (s *State) CanWalk(dir Direction) bool {
	d := dir.Delta()
	target := add(s.player, d)
	if !s.inBounds(target) {
		return false
	}
	t := s.g.Get(target.Row, target.Col)
	return t == grid.Space || t == grid.Goal
}

func (s *State) inBounds(p grid.Pos) bool {
	return p.Row >= 0 && p.Row < s.g.Rows() && p.Col >= 0 && p.Col < s.g.Cols()
}

// Push applies a push in dir in place: the player advances one cell, and
// the box ahead of it advances one further cell in the same direction.
// Caller must have checked CanPush(dir) first; Push panics (invariant I2)
// otherwise.
func (s *State) Push(dir Direction) {
	if !s.CanPush(dir) {
		panic("sokoban: invariant I2 violated: Push called on illegal direction")
	}
	d := dir.Delta()
	boxFrom := add(s.player, d)
	boxTo := add(boxFrom, d)
	g := s.g

	playerWasGoal := g.IsGoal(s.player.Row, s.player.Col)
	g.Set(s.player.Row, s.player.Col, grid.LeaveOverlay(playerWasGoal))

	boxToGoal := g.IsGoal(boxTo.Row, boxTo.Col)
	g.Set(boxTo.Row, boxTo.Col, grid.EnterBoxOverlay(boxToGoal))

	boxFromGoal := g.IsGoal(boxFrom.Row, boxFrom.Col)
	g.Set(boxFrom.Row, boxFrom.Col, grid.EnterPlayerOverlay(boxFromGoal))

	s.player = boxFrom
}

// Walk applies a plain move in dir in place (no box moves). Caller must
// have checked CanWalk(dir) first.
func (s *State) Walk(dir Direction) {
	if !s.CanWalk(dir) {
		panic("sokoban: invariant I2 violated: Walk called on illegal direction")
	}
	d := dir.Delta()
	target := add(s.player, d)
	g := s.g

	playerWasGoal := g.IsGoal(s.player.Row, s.player.Col)
	g.Set(s.player.Row, s.player.Col, grid.LeaveOverlay(playerWasGoal))

	targetGoal := g.IsGoal(target.Row, target.Col)
	g.Set(target.Row, target.Col, grid.EnterPlayerOverlay(targetGoal))

	s.player = target
}

// CanPull reports whether a backward pull undoing a forward move whose
// direction was dir is legal: the player must be able to return to
// (player-dx,player-dy), and — since this is the pull variant — a box must
// currently sit at (player+dx,player+dy), ready to be dragged into the
// player's former cell.
//
// The source grammar additionally demands (player+2dx,player+2dy) be
// unblocked; that clause contradicts the push-reversibility property (a
// box pushed flush against a wall, the far side of which is exactly
// (player+2dx,player+2dy), would then have no legal undo) and is dropped
// here — see DESIGN.md's Open Question log.
func (s *State) CanPull(dir Direction) bool {
	d := dir.Delta()
	playerTo := grid.Pos{Row: s.player.Row - d.Row, Col: s.player.Col - d.Col}
	if !s.inBounds(playerTo) || s.g.Get(playerTo.Row, playerTo.Col).IsBlockerForPush() {
		return false
	}
	boxFrom := add(s.player, d)
	return s.inBounds(boxFrom) && s.g.IsBox(boxFrom.Row, boxFrom.Col)
}

// Pull applies the backward pull of CanPull(dir) in place: the player
// returns to (player-dx,player-dy), and the box at (player+dx,player+dy)
// is dragged into the player's former cell. Caller must have checked
// CanPull(dir) first.
func (s *State) Pull(dir Direction) {
	if !s.CanPull(dir) {
		panic("sokoban: invariant I2 violated: Pull called on illegal direction")
	}
	d := dir.Delta()
	boxFrom := add(s.player, d)
	boxTo := s.player
	playerTo := grid.Pos{Row: s.player.Row - d.Row, Col: s.player.Col - d.Col}
	g := s.g

	boxFromGoal := g.IsGoal(boxFrom.Row, boxFrom.Col)
	g.Set(boxFrom.Row, boxFrom.Col, grid.LeaveOverlay(boxFromGoal))

	boxToGoal := g.IsGoal(boxTo.Row, boxTo.Col)
	g.Set(boxTo.Row, boxTo.Col, grid.EnterBoxOverlay(boxToGoal))

	playerToGoal := g.IsGoal(playerTo.Row, playerTo.Col)
	g.Set(playerTo.Row, playerTo.Col, grid.EnterPlayerOverlay(playerToGoal))

	s.player = playerTo
}

// CanWalkBackward reports whether the non-pull backward action for dir is
// legal: the player can return to (player-dx,player-dy) without a box in
// tow (spec §4.2.4's "non-pull precondition").
func (s *State) CanWalkBackward(dir Direction) bool {
	d := dir.Delta()
	playerTo := grid.Pos{Row: s.player.Row - d.Row, Col: s.player.Col - d.Col}
	return s.inBounds(playerTo) && !s.g.Get(playerTo.Row, playerTo.Col).IsBlockerForPush()
}

// WalkBackward applies the non-pull backward action for dir: the player
// steps to (player-dx,player-dy), no box moves. Caller must have checked
// CanWalkBackward(dir) first.
func (s *State) WalkBackward(dir Direction) {
	if !s.CanWalkBackward(dir) {
		panic("sokoban: invariant I2 violated: WalkBackward called on illegal direction")
	}
	d := dir.Delta()
	playerTo := grid.Pos{Row: s.player.Row - d.Row, Col: s.player.Col - d.Col}
	g := s.g

	playerWasGoal := g.IsGoal(s.player.Row, s.player.Col)
	g.Set(s.player.Row, s.player.Col, grid.LeaveOverlay(playerWasGoal))

	playerToGoal := g.IsGoal(playerTo.Row, playerTo.Col)
	g.Set(playerTo.Row, playerTo.Col, grid.EnterPlayerOverlay(playerToGoal))

	s.player = playerTo
}

// Move applies the unified forward action of dir: pushes the box ahead if
// one is present and pushable, otherwise walks. Caller must have checked
// CanPush(dir) || CanWalk(dir) first (spec §4.2.1's p_move).
func (s *State) Move(dir Direction) {
	boxPos := add(s.player, dir.Delta())
	if s.inBounds(boxPos) && s.g.IsBox(boxPos.Row, boxPos.Col) {
		s.Push(dir)
		return
	}
	s.Walk(dir)
}

// Undo applies the unified backward action (dir, pull): the inverse of
// Move, dispatching to Pull or WalkBackward (spec §4.2.2's p_undo).
func (s *State) Undo(dir Direction, pull bool) {
	if pull {
		s.Pull(dir)
		return
	}
	s.WalkBackward(dir)
}

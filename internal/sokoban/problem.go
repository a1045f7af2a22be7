package sokoban

import (
	searchpkg "github.com/sokosolve/sokosolve/internal/search"

	"github.com/sokosolve/sokosolve/internal/grid"
)

// searchState wraps *State so it satisfies searchpkg.State (whose Key
// returns searchpkg.StateKey, a type distinct from sokoban.StateKey).
type searchState struct{ *State }

func (w searchState) Key() searchpkg.StateKey {
	return searchpkg.StateKey(w.State.Key())
}

func wrap(s *State) searchpkg.State   { return searchState{s} }
func unwrap(s searchpkg.State) *State { return s.(searchState).State }

var forwardDirs = [...]Direction{Up, Down, Left, Right}

// Problem adapts a Sokoban level into search.BidirectionalProblem.
// Grounded on original_source/game/problem.py's SokobanProblem and
// biproblem.py's BiSokobanProblem, unified into a single concrete type per
// spec §9's design note (the bidirectional driver builds its own backward
// view via search.backwardAdapter, so this type only ever needs to expose
// the forward-plus-bidirectional-extension surface, never a runtime
// method swap).
type Problem struct {
	initial    *State
	initBoxes  []grid.Pos
	initPlayer grid.Pos
	fwdCache   *AssignmentCache
	bwdCache   *AssignmentCache
}

// NewProblem builds a Problem over a freshly loaded level state. The
// forward heuristic (box→goal cost) and the backward heuristic (box→
// init-box cost) get separate assignment caches: both key purely on box
// layout, so a single shared cache would return one side's cached cost to
// the other for any layout visited by both searches.
func NewProblem(initial *State) *Problem {
	return &Problem{
		initial:    initial,
		initBoxes:  initial.LocateBoxes(),
		initPlayer: initial.Player(),
		fwdCache:   NewAssignmentCache(16),
		bwdCache:   NewAssignmentCache(16),
	}
}

// InitialState returns a fresh deep copy of the loaded level.
func (p *Problem) InitialState() *State {
	return p.initial.Copy()
}

func (p *Problem) InitialStates() []searchpkg.State {
	return []searchpkg.State{wrap(p.InitialState())}
}

// Actions returns the legal forward actions from s (spec §4.2.3).
func (p *Problem) Actions(s searchpkg.State) []searchpkg.Action {
	st := unwrap(s)
	var out []searchpkg.Action
	for _, dir := range forwardDirs {
		if st.CanWalk(dir) || st.CanPush(dir) {
			out = append(out, searchpkg.Action(NewAction(dir)))
		}
	}
	return out
}

// Result copies s and applies the unified forward move (spec §4.3). Must
// not alias s.
func (p *Problem) Result(s searchpkg.State, a searchpkg.Action) searchpkg.State {
	st := unwrap(s).Copy()
	st.Move(a.(Action).Dir())
	return wrap(st)
}

// IsGoal reports whether no Box cell remains.
func (p *Problem) IsGoal(s searchpkg.State) bool {
	return unwrap(s).IsAllBoxesPlaced()
}

// ActionCost is constant 1.
func (p *Problem) ActionCost(searchpkg.State, searchpkg.Action) int { return 1 }

// Heuristic computes h(s) per spec §4.3, memoised on box layout via the
// Problem's forward assignment cache.
func (p *Problem) Heuristic(s searchpkg.State) int {
	return unwrap(s).Heuristic(p.fwdCache)
}

// GoalStates synthesizes up to k canonical goal states (spec §4.3).
func (p *Problem) GoalStates(k int) []searchpkg.State {
	states := p.initial.GoalStates(k)
	out := make([]searchpkg.State, len(states))
	for i, st := range states {
		out[i] = wrap(st)
	}
	return out
}

// ActionsTo returns the legal backward actions into s (spec §4.2.4): for
// each direction, the non-pull variant if the player can step back, plus
// the pull variant if a box can be dragged along.
func (p *Problem) ActionsTo(s searchpkg.State) []searchpkg.Action {
	st := unwrap(s)
	var out []searchpkg.Action
	for _, dir := range forwardDirs {
		if st.CanWalkBackward(dir) {
			out = append(out, searchpkg.Action(NewBackwardAction(dir, false)))
		}
		if st.CanPull(dir) {
			out = append(out, searchpkg.Action(NewBackwardAction(dir, true)))
		}
	}
	return out
}

// Reason copies s and applies the unified backward undo (spec §4.2.2).
func (p *Problem) Reason(s searchpkg.State, a searchpkg.Action) searchpkg.State {
	st := unwrap(s).Copy()
	act := a.(Action)
	st.Undo(act.Dir(), act.Pull())
	return wrap(st)
}

// ReHeuristic computes the symmetric backward heuristic of spec §4.3,
// memoised on box layout via the Problem's backward assignment cache.
func (p *Problem) ReHeuristic(s searchpkg.State) int {
	return unwrap(s).ReHeuristic(p.initBoxes, p.initPlayer, p.bwdCache)
}

// ToForwardAction discards the pull flag, keeping only the direction
// component (spec §4.5.3).
func (p *Problem) ToForwardAction(a searchpkg.Action) searchpkg.Action {
	return searchpkg.Action(a.(Action).Forward())
}

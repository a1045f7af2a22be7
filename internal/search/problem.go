// Package search implements a problem-agnostic best-first search framework
// — BFS/DFS/Dijkstra/Greedy/weighted A* specializations of a single
// priority-queued skeleton — plus a bidirectional driver that runs a
// forward and a backward instance against a shared meeting-point check.
package search

// StateKey is the hashable identity a Problem's states are compared and
// stored by. Concrete problems (sokoban.State) expose their own typed key;
// the framework only ever sees the string form, following
// bertbaron-pathfinding's State.Id() interface{} idiom, narrowed to a
// concrete comparable type since every problem in this module already
// produces one.
type StateKey string

// State is the minimal contract the search framework requires of a problem
// state: a stable, hashable identity. Problems return concrete types
// (*sokoban.State) boxed as State; the framework never inspects anything
// beyond Key.
type State interface {
	Key() StateKey
}

// Action is an opaque, problem-specific move descriptor. The framework
// never interprets an Action; it only threads it through Result/ActionCost
// and into the reconstructed path.
type Action interface{}

// Problem is the forward-search contract: generate states, test goals,
// cost actions. Mirrors bertbaron-pathfinding's State interface
// (Expand/IsGoal/Cost) but separates the "what can I do" / "what happens if
// I do it" steps, matching the original_source problem.py shape.
type Problem interface {
	// InitialStates returns one or more starting states. Engine.Run seeds
	// each at the priority its Eval gives for g=0; the Bidirectional driver
	// seeds each at priority -1. A forward problem returns exactly one;
	// the bidirectional backward adapter may return several.
	InitialStates() []State

	// Actions returns the ordered legal actions from s. Never includes the
	// Stay sentinel — that is reserved for predecessor bookkeeping only.
	Actions(s State) []Action

	// Result returns a fresh state produced by applying a to s. Must not
	// alias s.
	Result(s State, a Action) State

	// IsGoal reports whether s is a goal state.
	IsGoal(s State) bool

	// ActionCost returns the cost of applying a from s. Constant 1 for
	// every problem in this module.
	ActionCost(s State, a Action) int
}

// HeuristicProblem is a Problem that additionally estimates distance to
// goal, required by Greedy and weighted A*.
type HeuristicProblem interface {
	Problem
	Heuristic(s State) int
}

// BidirectionalProblem is the richer contract a problem must satisfy to run
// under the Bidirectional driver: beyond the regular forward view it
// exposes goal-state synthesis, backward actions/results and a symmetric
// backward heuristic. The driver runs the forward engine directly on this
// interface and builds a separate backwardAdapter (see bidirectional.go) from
// its backward-specific methods — two distinct concrete types sharing the
// HeuristicProblem trait, per the design note on replacing runtime method
// overriding with two concrete adapters.
type BidirectionalProblem interface {
	HeuristicProblem

	// GoalStates returns up to k synthesized canonical goal states.
	GoalStates(k int) []State

	// ActionsTo returns the legal backward actions into s.
	ActionsTo(s State) []Action

	// Reason returns a fresh state produced by undoing a from s (the
	// backward twin of Result). Must not alias s.
	Reason(s State, a Action) State

	// ReHeuristic estimates the backward distance from s to the initial
	// layout.
	ReHeuristic(s State) int

	// ToForwardAction converts a backward action (which may carry a pull
	// flag) into its forward-equivalent action — used when splicing the
	// backward tail onto a reconstructed path (spec §4.5.3: "take only the
	// direction component, discarding the pull flag").
	ToForwardAction(a Action) Action
}

package search

import "math"

// backwardAdapter re-expresses a BidirectionalProblem's backward-specific
// methods as a plain HeuristicProblem, so the same Engine that drives the
// forward search also drives the backward one. This is the "two distinct
// concrete types implementing a common trait" restated by the design notes
// in place of the source pattern of overriding methods at runtime.
type backwardAdapter struct {
	inner BidirectionalProblem
	k     int
}

func (b *backwardAdapter) InitialStates() []State       { return b.inner.GoalStates(b.k) }
func (b *backwardAdapter) Actions(s State) []Action      { return b.inner.ActionsTo(s) }
func (b *backwardAdapter) Result(s State, a Action) State { return b.inner.Reason(s, a) }
func (b *backwardAdapter) IsGoal(s State) bool           { return false }
func (b *backwardAdapter) ActionCost(State, Action) int  { return 1 }
func (b *backwardAdapter) Heuristic(s State) int         { return b.inner.ReHeuristic(s) }

// EngineFactory builds an Engine over a HeuristicProblem — WeightedAStar
// and Greedy bound to a fixed configuration are typical factories passed to
// Bidirectional.
type EngineFactory func(problem HeuristicProblem) *Engine

// BidirectionalResult carries a solution plus the telemetry of spec
// §4.5.4.
type BidirectionalResult struct {
	Actions   []Action
	BFactor   float64
	MeetState State
}

// Bidirectional runs the dual-frontier driver of spec §4.5: a forward
// search seeded from problem's single initial state, and a backward search
// seeded from up to goalSamples synthesized goal states, interleaved at a
// ratio of bWeight backward extensions per forward extension. bWeight ==
// math.Inf(1) runs backward-only (no forward extensions at all).
//
// fwdFactory/bwdFactory build the underlying Engine for each side (e.g.
// search.WeightedAStar bound to a chosen weight); bwdFactory is typically
// the same algorithm as fwdFactory, per spec §4.5.1's "optional backward
// algorithm class B (default F)".
func Bidirectional(problem BidirectionalProblem, fwdFactory, bwdFactory EngineFactory, bWeight float64, goalSamples int) *BidirectionalResult {
	fwd := fwdFactory(problem)
	bwd := bwdFactory(&backwardAdapter{inner: problem, k: goalSamples})

	negOne := -1.0
	fwd.SeedAtPriority(problem.InitialStates(), &negOne)
	bwd.SeedAtPriority(problem.GoalStates(goalSamples), &negOne)

	bTimes := 0
	for {
		if !math.IsInf(bWeight, 1) && float64(bTimes) >= bWeight {
			if s, ok := fwd.Pop(); ok {
				if !fwd.Problem.IsGoal(s) {
					fwd.Extend(s)
				}
			} else {
				return nil
			}
			bTimes = 0
		}

		b, ok := bwd.Pop()
		if !ok {
			return nil
		}
		bwd.Extend(b)
		bTimes++

		if _, _, met := fwd.Predecessor(b); met {
			return reconstruct(fwd, bwd, b, problem)
		}
	}
}

// reconstruct splices the forward tail (root..meet) with the forward-
// equivalent of the backward tail (meet..backward-root), per spec §4.5.3.
func reconstruct(fwd, bwd *Engine, meet State, problem BidirectionalProblem) *BidirectionalResult {
	forwardTail := fwd.Reconstruct(meet)

	var backwardTail []Action
	cur := meet
	for {
		parent, action, ok := bwd.Predecessor(cur)
		if !ok || parent == nil {
			break
		}
		backwardTail = append(backwardTail, problem.ToForwardAction(action))
		cur = parent
	}

	actions := append(append([]Action{}, forwardTail...), backwardTail...)

	total := fwd.NumPredecessors() + bwd.NumPredecessors()
	bFactor := 0.0
	if len(actions) > 1 && total > 1 {
		bFactor = math.Log(float64(total)) / math.Log(float64(len(actions)))
	}

	return &BidirectionalResult{
		Actions:   actions,
		BFactor:   bFactor,
		MeetState: meet,
	}
}

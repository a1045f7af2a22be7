package search

import "testing"

func TestBidirectionalSoundness(t *testing.T) {
	p := &mazeProblem{goal: 6}
	result := Bidirectional(p,
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		1, 1)
	if result == nil {
		t.Fatalf("expected bidirectional search to find a solution")
	}

	cur := State(mazeState(0))
	for _, a := range result.Actions {
		cur = p.Result(cur, a)
	}
	if !p.IsGoal(cur) {
		t.Fatalf("replaying the returned action sequence did not reach a goal state")
	}
}

func TestBidirectionalMatchesPlainAStarLength(t *testing.T) {
	p := &mazeProblem{goal: 6}
	plain := WeightedAStar(p, 1).Run()

	bi := Bidirectional(p,
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		1, 1)
	if bi == nil {
		t.Fatalf("expected bidirectional search to find a solution")
	}
	if len(bi.Actions) != len(plain) {
		t.Fatalf("bidirectional length %d != plain A* length %d", len(bi.Actions), len(plain))
	}
}

func TestBidirectionalBackwardOnlyWeight(t *testing.T) {
	p := &mazeProblem{goal: 4}
	result := Bidirectional(p,
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		func(hp HeuristicProblem) *Engine { return WeightedAStar(hp, 1) },
		infWeight(), 1)
	if result == nil {
		t.Fatalf("expected backward-only (b_weight=Infinity) search to still find a solution")
	}
}

func infWeight() float64 {
	var zero float64
	return 1 / zero
}

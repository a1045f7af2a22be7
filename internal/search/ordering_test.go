package search

import "testing"

func TestOrderByHeuristicPutsBestChildFirst(t *testing.T) {
	p := &mazeProblem{goal: 4}
	ordered := OrderByHeuristic(p, mazeState(2))
	if len(ordered) == 0 {
		t.Fatalf("expected at least one action")
	}
	best := p.Heuristic(p.Result(mazeState(2), ordered[0]))
	for _, a := range ordered[1:] {
		if h := p.Heuristic(p.Result(mazeState(2), a)); h < best {
			t.Fatalf("action ordering is not ascending by child heuristic")
		}
	}
}

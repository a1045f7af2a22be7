package search

import "testing"

// mazeState/mazeProblem is a tiny synthetic grid-pathfinding problem used
// to exercise the best-first skeleton without depending on the sokoban
// package: a wall-free 1-wide corridor of cells 0..goal, start at 0.
type mazeState int

func (s mazeState) Key() StateKey { return StateKey(rune('0' + int(s))) }

type mazeProblem struct{ goal int }

func (p *mazeProblem) InitialStates() []State { return []State{mazeState(0)} }

func (p *mazeProblem) Actions(s State) []Action {
	n := int(s.(mazeState))
	var out []Action
	if n > 0 {
		out = append(out, -1)
	}
	if n < p.goal {
		out = append(out, 1)
	}
	return out
}

func (p *mazeProblem) Result(s State, a Action) State {
	return mazeState(int(s.(mazeState)) + a.(int))
}

func (p *mazeProblem) IsGoal(s State) bool { return int(s.(mazeState)) == p.goal }

func (p *mazeProblem) ActionCost(State, Action) int { return 1 }

func (p *mazeProblem) Heuristic(s State) int {
	d := p.goal - int(s.(mazeState))
	if d < 0 {
		return -d
	}
	return d
}

// GoalStates, ActionsTo, Reason, ReHeuristic and ToForwardAction make
// mazeProblem double as a BidirectionalProblem for bidirectional_test.go:
// a backward action a into s is the forward step a that reached s from
// s-a, so it is legal whenever s-a lies inside the corridor.
func (p *mazeProblem) GoalStates(k int) []State {
	return []State{mazeState(p.goal)}
}

func (p *mazeProblem) ActionsTo(s State) []Action {
	n := int(s.(mazeState))
	var out []Action
	if n > 0 {
		out = append(out, 1)
	}
	if n < p.goal {
		out = append(out, -1)
	}
	return out
}

func (p *mazeProblem) Reason(s State, a Action) State {
	return mazeState(int(s.(mazeState)) - a.(int))
}

func (p *mazeProblem) ReHeuristic(s State) int {
	n := int(s.(mazeState))
	if n < 0 {
		return -n
	}
	return n
}

func (p *mazeProblem) ToForwardAction(a Action) Action {
	return a
}

func TestBFSFindsShortestPath(t *testing.T) {
	actions := BFS(&mazeProblem{goal: 4}).Run()
	if len(actions) != 4 {
		t.Fatalf("BFS path length = %d, want 4", len(actions))
	}
}

func TestDijkstraMatchesBFSLength(t *testing.T) {
	bfs := BFS(&mazeProblem{goal: 4}).Run()
	dij := Dijkstra(&mazeProblem{goal: 4}).Run()
	if len(dij) != len(bfs) {
		t.Fatalf("Dijkstra length %d != BFS length %d", len(dij), len(bfs))
	}
}

func TestWeightedAStarWeight1MatchesDijkstra(t *testing.T) {
	dij := Dijkstra(&mazeProblem{goal: 4}).Run()
	astar := WeightedAStar(&mazeProblem{goal: 4}, 1).Run()
	if len(astar) != len(dij) {
		t.Fatalf("A* w=1 length %d != Dijkstra length %d", len(astar), len(dij))
	}
}

func TestIterativeDeepeningFindsSolution(t *testing.T) {
	actions := IterativeDeepening(&mazeProblem{goal: 4}, 10)
	if len(actions) != 4 {
		t.Fatalf("iterative deepening path length = %d, want 4", len(actions))
	}
}

func TestDFSBoundedDepthFailsWhenTooShallow(t *testing.T) {
	actions := DFS(&mazeProblem{goal: 4}, 2).Run()
	if len(actions) != 0 {
		t.Fatalf("expected no solution within depth 2, got %v", actions)
	}
}

func TestGreedyFindsAGoal(t *testing.T) {
	actions := Greedy(&mazeProblem{goal: 4}).Run()
	if len(actions) == 0 {
		t.Fatalf("expected greedy to find some path to the goal")
	}
}

func TestEmptyFrontierReturnsNilNotPanicking(t *testing.T) {
	p := &mazeProblem{goal: -1} // unreachable goal: no action ever satisfies IsGoal, frontier drains
	actions := BFS(p).Run()
	if actions != nil {
		t.Fatalf("expected nil result when frontier is exhausted, got %v", actions)
	}
}

package search

import "testing"

func TestHillClimbingReachesGoalOnMonotoneCorridor(t *testing.T) {
	hc := NewHillClimbing(&mazeProblem{goal: 5}, 50)
	sol := hc.Search()
	if len(sol) != 5 {
		t.Fatalf("hill climbing solution length = %d, want 5", len(sol))
	}
}

func TestFirstChoiceHillClimbingReachesGoal(t *testing.T) {
	hc := NewFirstChoiceHillClimbing(&mazeProblem{goal: 5}, 50, 42)
	sol := hc.Search()
	if len(sol) == 0 {
		t.Fatalf("expected first-choice hill climbing to find a solution")
	}
}

func TestRandomRestartCollectsSolutions(t *testing.T) {
	sols := RandomRestart(func() *LocalSearch {
		return NewSimulatedAnnealing(&mazeProblem{goal: 5}, 50, 1.0, 0.9, 7)
	}, 5)
	if len(sols) == 0 {
		t.Fatalf("expected at least one restart to find a solution")
	}
}

func TestMCTSFindsAPathOnMonotoneCorridor(t *testing.T) {
	m := NewMCTS(&mazeProblem{goal: 3}, 1)
	sol := m.SearchIterations(200)
	if len(sol) == 0 {
		t.Fatalf("expected MCTS to find some path within 200 iterations")
	}
}

package solver

import (
	"math"
	"strings"
	"testing"

	"github.com/sokosolve/sokosolve/internal/grid"
)

func mustLoad(t *testing.T, src string) *grid.Grid {
	t.Helper()
	g, err := grid.LoadReader(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	return g
}

func TestSolveTrivialLevel(t *testing.T) {
	g := mustLoad(t, "#####\n#@$.#\n#####\n")
	result := Solve(g, 1.0, 5)
	if result == nil {
		t.Fatalf("expected a solution on a trivial one-push level")
	}
	if result.Length == 0 {
		t.Fatalf("expected a non-empty action sequence")
	}
	replayed := Replay(g, result.Actions)
	finalState := replayed.String()
	if finalState == g.String() {
		t.Fatalf("Replay did not change the board")
	}
}

func TestSolveReplayReachesGoal(t *testing.T) {
	g := mustLoad(t, "#######\n#  @  #\n#  $  #\n# # # #\n#  .  #\n#######\n")
	result := Solve(g, 2.0, 5)
	if result == nil {
		t.Fatalf("expected a solution on the two-push corridor level")
	}
	final := Replay(g, result.Actions)
	for r := 0; r < final.Rows(); r++ {
		for c := 0; c < final.Cols(); c++ {
			if final.Get(r, c) == grid.Box {
				t.Fatalf("box left unplaced at (%d,%d) after replaying the solution", r, c)
			}
		}
	}
}

func TestSolveWithInfiniteBackwardWeight(t *testing.T) {
	g := mustLoad(t, "#####\n#@$.#\n#####\n")
	result := Solve(g, math.Inf(1), 5)
	if result == nil {
		t.Fatalf("expected a solution")
	}
}

func TestBFactorOrZeroGuardsAgainstNaNAndInf(t *testing.T) {
	if got := BFactorOrZero(math.NaN()); got != 0 {
		t.Errorf("NaN input: got %v, want 0", got)
	}
	if got := BFactorOrZero(math.Inf(1)); got != 0 {
		t.Errorf("+Inf input: got %v, want 0", got)
	}
}

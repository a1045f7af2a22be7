// Package solver is the top-level facade tying the grid, sokoban and
// search packages into the single entry point both the CLI and the
// benchmark harness call, grounded on engine.Engine's facade shape
// (there: position + workers + book + tablebase wired into one Think
// call; here: a grid + bidirectional problem wired into one Solve call).
package solver

import (
	"math"

	"github.com/sokosolve/sokosolve/internal/grid"
	"github.com/sokosolve/sokosolve/internal/search"
	"github.com/sokosolve/sokosolve/internal/sokoban"
)

// AStarWeight is the spec-mandated weight argument to WeightedAStar used
// by both the forward and backward engines of the benchmark harness
// (spec §4.6: "run BiDirectional(problem, WeightedAStar, b_weight=w,
// weight=3)").
const AStarWeight = 3.0

// GoalSamples is the number of synthesized goal states seeded into the
// backward search (spec §4.5.1 leaves this a tunable; 3 balances root
// diversity against backward frontier size for the levels this module
// ships).
const GoalSamples = 3

// Result is the outcome of a single Solve call: the forward action
// sequence plus the telemetry spec §4.5.4 asks the benchmark harness to
// report.
type Result struct {
	Actions []sokoban.Action
	BFactor float64
	Length  int
}

// Solve runs the bidirectional weighted-A* search (spec §4.5) over g with
// the given backward weight, retrying indefinitely on an empty result as
// spec §4.6 requires to absorb goal-sampling non-determinism. Returns nil
// only if maxRetries is reached without success (maxRetries <= 0 means
// unlimited retries).
func Solve(g *grid.Grid, bWeight float64, maxRetries int) *Result {
	for attempt := 0; maxRetries <= 0 || attempt < maxRetries; attempt++ {
		state := sokoban.FromGrid(g.Clone())
		problem := sokoban.NewProblem(state)

		bi := search.Bidirectional(problem,
			func(hp search.HeuristicProblem) *search.Engine { return search.WeightedAStar(hp, AStarWeight) },
			func(hp search.HeuristicProblem) *search.Engine { return search.WeightedAStar(hp, AStarWeight) },
			bWeight, GoalSamples)
		if bi == nil || len(bi.Actions) == 0 {
			continue
		}

		actions := make([]sokoban.Action, len(bi.Actions))
		for i, a := range bi.Actions {
			actions[i] = a.(sokoban.Action)
		}
		return &Result{Actions: actions, BFactor: bi.BFactor, Length: len(actions)}
	}
	return nil
}

// Replay applies a solved action sequence to state, returning the
// resulting grid — used by the CLI to print/verify a found solution.
func Replay(initial *grid.Grid, actions []sokoban.Action) *grid.Grid {
	state := sokoban.FromGrid(initial.Clone())
	for _, a := range actions {
		state.Move(a.Dir())
	}
	return state.Grid()
}

// BFactorOrZero guards against log(0)/log(1) producing NaN/Inf for
// degenerate solutions, matching spec §4.5.4's caveat that b_factor is
// telemetry, not a correctness requirement.
func BFactorOrZero(b float64) float64 {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return 0
	}
	return b
}

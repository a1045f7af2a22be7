package search

import (
	"math"
	"math/rand"
)

// LocalSearch is the auxiliary hill-climb family of spec §4.4.3: hill
// climbing, stochastic hill climbing, first-choice and simulated
// annealing variants, all sharing the same climb-or-stop loop and
// differing only in AcceptProbability.
type LocalSearch struct {
	Problem HeuristicProblem
	MaxIter int
	// AcceptProbability decides, given h(after)-h(before) for the chosen
	// action, the probability of accepting a non-improving move. The
	// plain hill-climber supplies nil (never accept a non-improving move).
	AcceptProbability func(slope float64) float64
	rng               *rand.Rand
}

// NewHillClimbing builds plain (greedy) hill climbing: the best available
// action is taken only while it strictly improves the heuristic.
func NewHillClimbing(problem HeuristicProblem, maxIter int) *LocalSearch {
	return &LocalSearch{Problem: problem, MaxIter: maxIter}
}

// NewStochasticHillClimbing builds a hill-climber that may accept a
// worsening move with probability p(slope).
func NewStochasticHillClimbing(problem HeuristicProblem, maxIter int, p func(float64) float64, seed int64) *LocalSearch {
	return &LocalSearch{Problem: problem, MaxIter: maxIter, AcceptProbability: p, rng: rand.New(rand.NewSource(seed))}
}

// NewFirstChoiceHillClimbing accepts the first improving action found and
// never a worsening one — a cheap stochastic climber.
func NewFirstChoiceHillClimbing(problem HeuristicProblem, maxIter int, seed int64) *LocalSearch {
	return NewStochasticHillClimbing(problem, maxIter, func(slope float64) float64 {
		if slope < 0 {
			return 1
		}
		return 0
	}, seed)
}

// NewSimulatedAnnealing builds a hill-climber with a geometrically cooling
// acceptance temperature (T decays by alpha every accepted-probability
// evaluation, mirroring sealgo/local_search.py's SimulatedAnnealing).
func NewSimulatedAnnealing(problem HeuristicProblem, maxIter int, t0, alpha float64, seed int64) *LocalSearch {
	ls := &LocalSearch{Problem: problem, MaxIter: maxIter, rng: rand.New(rand.NewSource(seed))}
	t := t0
	ls.AcceptProbability = func(slope float64) float64 {
		p := 1.0
		if slope >= 0 {
			p = math.Exp(-slope / t)
		}
		t *= alpha
		return p
	}
	return ls
}

// Search runs the climb loop to completion, returning the action sequence
// found or nil if no solution is reached within MaxIter iterations.
func (ls *LocalSearch) Search() []Action {
	starts := ls.Problem.InitialStates()
	state := starts[0]
	var solution []Action

	for i := 0; i < ls.MaxIter; i++ {
		actions := ls.Problem.Actions(state)
		if len(actions) == 0 {
			return nil
		}
		action := ls.choose(state, actions)
		if action == nil {
			return nil
		}
		state = ls.Problem.Result(state, action)
		solution = append(solution, action)
		if ls.Problem.IsGoal(state) {
			return solution
		}
	}
	return nil
}

// choose picks the best-heuristic action (plain hill climbing), or, when
// AcceptProbability is set, proposes the actions in a random order and
// returns the first one accepted with probability AcceptProbability(slope).
// Returns nil when the search should stop (no improving move, or every
// proposal was rejected).
func (ls *LocalSearch) choose(state State, actions []Action) Action {
	if ls.AcceptProbability == nil {
		hBefore := ls.Problem.Heuristic(state)
		var best Action
		bestH := math.Inf(1)
		for _, a := range actions {
			h := float64(ls.Problem.Heuristic(ls.Problem.Result(state, a)))
			if h < bestH {
				bestH = h
				best = a
			}
		}
		if bestH-float64(hBefore) >= 0 {
			return nil
		}
		return best
	}

	hBefore := float64(ls.Problem.Heuristic(state))
	for _, i := range ls.rng.Perm(len(actions)) {
		action := actions[i]
		hAfter := float64(ls.Problem.Heuristic(ls.Problem.Result(state, action)))
		slope := hAfter - hBefore
		if ls.rng.Float64() < ls.AcceptProbability(slope) {
			return action
		}
	}
	return nil
}

// RandomRestart runs algorithm up to maxRestarts times from scratch,
// collecting every non-empty solution found (spec §4.4.3's RandomRestart
// wrapper).
func RandomRestart(buildAttempt func() *LocalSearch, maxRestarts int) [][]Action {
	var solutions [][]Action
	for i := 0; i < maxRestarts; i++ {
		if sol := buildAttempt().Search(); len(sol) > 0 {
			solutions = append(solutions, sol)
		}
	}
	return solutions
}

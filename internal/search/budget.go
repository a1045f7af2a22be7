package search

import "time"

// Budget wraps a search with an optional wall-clock deadline and/or
// explored-node cap, grounded on engine.TimeManager's ShouldStop shape
// (there: optimum/maximum move time; here: a single hard ceiling, since
// Sokoban search has no iterative-deepening notion of "optimum").
type Budget struct {
	Deadline  time.Time // zero value means no time limit
	MaxNodes  int       // zero value means no node limit
	startTime time.Time
}

// NewBudget builds a Budget. A zero maxNodes means unlimited nodes; a
// zero/negative timeLimit means unlimited time.
func NewBudget(timeLimit time.Duration, maxNodes int) *Budget {
	b := &Budget{MaxNodes: maxNodes, startTime: time.Now()}
	if timeLimit > 0 {
		b.Deadline = b.startTime.Add(timeLimit)
	}
	return b
}

// exceeded reports whether the budget has run out given the engine's
// current node count.
func (b *Budget) exceeded(nodes int) bool {
	if b.MaxNodes > 0 && nodes >= b.MaxNodes {
		return true
	}
	if !b.Deadline.IsZero() && time.Now().After(b.Deadline) {
		return true
	}
	return false
}

// Run mirrors Engine.Run's main loop, checking the budget between
// expansions, returning BudgetExceededError if the budget runs out before
// a goal is reached.
func (b *Budget) Run(e *Engine) ([]Action, error) {
	e.Seed(e.Problem.InitialStates())
	for {
		if b.exceeded(e.Nodes()) {
			return nil, &BudgetExceededError{Nodes: e.Nodes()}
		}
		s, ok := e.Pop()
		if !ok {
			return nil, nil
		}
		if e.Problem.IsGoal(s) {
			return e.Reconstruct(s), nil
		}
		e.Extend(s)
	}
}

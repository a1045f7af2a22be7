package search

// EvalFunc computes a state's frontier priority given its g-cost. Each
// best-first variant in spec §4.4.1 differs only in this function.
type EvalFunc func(s State, g int) float64

// predEntry records how a state was reached: nil Parent marks a root (the
// Stay sentinel of spec §3 — never materialized as a value, just implied
// by the absence of a parent).
type predEntry struct {
	parent State
	action Action
}

// Engine is the shared best-first skeleton of spec §4.4.1: a frontier, a
// g-cost map, and a predecessor map, driven by a pluggable EvalFunc.
// Forward and backward Bidirectional instances are each a separate Engine
// built over a different Problem (see bidirectional.go).
type Engine struct {
	Problem Problem
	Eval    EvalFunc
	// MaxDepth bounds extension to states reached within MaxDepth steps of
	// any root; zero means unbounded. Used by bounded DFS and iterative
	// deepening.
	MaxDepth int

	frontier *Frontier
	gCosts   map[StateKey]int
	preds    map[StateKey]predEntry
	states   map[StateKey]State
	nodes    int
}

// NewEngine builds an Engine over problem using eval to prioritize states.
func NewEngine(problem Problem, eval EvalFunc) *Engine {
	return &Engine{
		Problem:  problem,
		Eval:     eval,
		frontier: NewFrontier(),
		gCosts:   make(map[StateKey]int),
		preds:    make(map[StateKey]predEntry),
		states:   make(map[StateKey]State),
	}
}

// intern returns the canonical stored instance for a state's key, recording
// s as canonical the first time its key is seen. This is the "arena" of the
// design notes: every state lives exactly once, keyed by content hash;
// frontier entries and predecessor values reference the canonical instance.
func (e *Engine) intern(s State) State {
	if canon, ok := e.states[s.Key()]; ok {
		return canon
	}
	e.states[s.Key()] = s
	return s
}

// Seed inserts starts as roots, each at the priority its own Eval assigns
// for g=0 — this reproduces the "Initial priority" column of spec §4.4.1
// for the five standalone variants.
func (e *Engine) Seed(starts []State) {
	e.SeedAtPriority(starts, nil)
}

// SeedAtPriority inserts starts as roots at a fixed priority, overriding
// Eval. Used by the bidirectional driver, which seeds both frontiers at
// priority -1 regardless of the underlying variant's own scheme (spec
// §4.5.1).
func (e *Engine) SeedAtPriority(starts []State, priority *float64) {
	for _, raw := range starts {
		s := e.intern(raw)
		e.gCosts[s.Key()] = 0
		e.preds[s.Key()] = predEntry{parent: nil, action: nil}
		p := e.Eval(s, 0)
		if priority != nil {
			p = *priority
		}
		e.frontier.Push(s, p)
	}
}

// Pop removes and returns the highest-priority state, or ok=false if the
// frontier is exhausted.
func (e *Engine) Pop() (State, bool) {
	return e.frontier.Pop()
}

// FrontierLen reports how many states are queued.
func (e *Engine) FrontierLen() int { return e.frontier.Len() }

// Nodes reports how many states have been extended so far.
func (e *Engine) Nodes() int { return e.nodes }

// GCost returns the best known g-cost for s, or (0, false) if unseen.
func (e *Engine) GCost(s State) (int, bool) {
	g, ok := e.gCosts[s.Key()]
	return g, ok
}

// Predecessor returns the parent state and incoming action recorded for s,
// or ok=false if s was never reached.
func (e *Engine) Predecessor(s State) (parent State, action Action, ok bool) {
	entry, found := e.preds[s.Key()]
	if !found {
		return nil, nil, false
	}
	return entry.parent, entry.action, true
}

// NumPredecessors reports the size of the explored set (|predecessors|),
// used by the branching-factor telemetry of spec §4.5.4.
func (e *Engine) NumPredecessors() int { return len(e.preds) }

// Extend expands s: for every legal action, compute the successor and its
// tentative g-cost, and insert it whenever this is the first time it is
// reached or a strictly cheaper path was found (spec §4.4.1 main loop).
func (e *Engine) Extend(s State) {
	e.nodes++
	g, ok := e.GCost(s)
	if !ok {
		return
	}
	if e.MaxDepth > 0 && g >= e.MaxDepth {
		return
	}
	for _, a := range e.Problem.Actions(s) {
		sp := e.intern(e.Problem.Result(s, a))
		gp := g + e.Problem.ActionCost(s, a)
		if old, seen := e.GCost(sp); !seen || gp < old {
			e.gCosts[sp.Key()] = gp
			e.preds[sp.Key()] = predEntry{parent: s, action: a}
			e.frontier.Push(sp, e.Eval(sp, gp))
		}
	}
}

// Reconstruct walks the predecessor chain from goal back to its root,
// returning the forward action sequence (root-to-goal order, Stay
// dropped).
func (e *Engine) Reconstruct(goal State) []Action {
	var reversed []Action
	cur := goal
	for {
		entry, ok := e.preds[cur.Key()]
		if !ok || entry.parent == nil {
			break
		}
		reversed = append(reversed, entry.action)
		cur = entry.parent
	}
	out := make([]Action, len(reversed))
	for i, a := range reversed {
		out[len(reversed)-1-i] = a
	}
	return out
}

// Run executes the standard best-first main loop of spec §4.4.1 to
// completion: pop, test goal, else extend; returns the empty slice (nil)
// if the frontier is exhausted without finding a goal.
func (e *Engine) Run() []Action {
	e.Seed(e.Problem.InitialStates())
	for {
		s, ok := e.Pop()
		if !ok {
			return nil
		}
		if e.Problem.IsGoal(s) {
			return e.Reconstruct(s)
		}
		e.Extend(s)
	}
}

// BFS builds an Engine whose priority is a monotone insertion counter —
// first-in-first-out expansion order.
func BFS(problem Problem) *Engine {
	var counter float64
	return NewEngine(problem, func(State, int) float64 {
		counter++
		return counter
	})
}

// DFS builds a bounded-depth-D Engine whose priority is a negated monotone
// counter — last-in-first-out expansion order (spec §4.4.1 DFS row). A
// MaxDepth of 0 leaves the search unbounded.
func DFS(problem Problem, maxDepth int) *Engine {
	var counter float64
	e := NewEngine(problem, func(State, int) float64 {
		counter--
		return counter
	})
	e.MaxDepth = maxDepth
	return e
}

// Dijkstra builds an Engine prioritized purely by accumulated cost.
func Dijkstra(problem Problem) *Engine {
	return NewEngine(problem, func(_ State, g int) float64 {
		return float64(g)
	})
}

// Greedy builds an Engine prioritized purely by heuristic estimate.
func Greedy(problem HeuristicProblem) *Engine {
	return NewEngine(problem, func(s State, _ int) float64 {
		return float64(problem.Heuristic(s))
	})
}

// WeightedAStar builds an Engine prioritized by g + weight*h. weight=1
// reduces to plain A*.
func WeightedAStar(problem HeuristicProblem, weight float64) *Engine {
	return NewEngine(problem, func(s State, g int) float64 {
		return float64(g) + weight*float64(problem.Heuristic(s))
	})
}

package search

import "sort"

// OrderByHeuristic returns a state's legal actions sorted by ascending
// heuristic value of the resulting child, generalized from
// engine.MoveOrderer's capture/killer scoring (there: order moves by
// tactical promise; here: order actions by how much closer the successor
// looks to a goal). It is opt-in: no Engine calls it, so a caller uses it
// by returning this order from its own Actions. Greedy already orders
// children by heuristic and only uses push order to break ties; DFS pops
// the last-pushed child first, so under DFS this order sends the
// best-looking child last. A*/Dijkstra/BFS results are unaffected since
// their frontier already orders by priority, independent of push order.
func OrderByHeuristic(problem HeuristicProblem, s State) []Action {
	actions := problem.Actions(s)
	type scored struct {
		action Action
		h      int
	}
	scoredActions := make([]scored, len(actions))
	for i, a := range actions {
		scoredActions[i] = scored{action: a, h: problem.Heuristic(problem.Result(s, a))}
	}
	sort.SliceStable(scoredActions, func(i, j int) bool {
		return scoredActions[i].h < scoredActions[j].h
	})
	out := make([]Action, len(scoredActions))
	for i, sc := range scoredActions {
		out[i] = sc.action
	}
	return out
}

package search

// IterativeDeepening runs a bounded-depth DFS at depths 1..maxDepth,
// returning the first non-empty result (spec §4.4.2). Each depth gets a
// fresh Engine since DFS's predecessor/g-cost maps are depth-specific.
func IterativeDeepening(problem Problem, maxDepth int) []Action {
	for depth := 1; depth <= maxDepth; depth++ {
		if actions := DFS(problem, depth).Run(); len(actions) > 0 {
			return actions
		}
	}
	return nil
}

package sokoban

import "github.com/sokosolve/sokosolve/internal/grid"

// ManhattanDistance is the L1 distance between two grid positions.
func ManhattanDistance(a, b grid.Pos) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MinCostAssign solves the minimum-weight perfect matching between boxes
// and goals (equal-length slices, guaranteed by level validation) on the
// Manhattan cost matrix, via the Hungarian algorithm. No third-party
// linear-sum-assignment library was found anywhere in the retrieval pack
// (searched for hungarian/munkres/assignment across every example module);
// this is a from-scratch implementation of the classical O(n^3)
// Jonker-Volgenant-style shortest-augmenting-path variant, kept small and
// unexported-helper-heavy to match the size of the problem (Sokoban levels
// rarely carry more than a couple dozen boxes).
func MinCostAssign(boxes, goals []grid.Pos) int {
	n := len(boxes)
	if n == 0 {
		return 0
	}
	if len(goals) != n {
		panic("sokoban: MinCostAssign requires equal-length boxes and goals")
	}

	cost := make([][]int, n)
	for i := range cost {
		cost[i] = make([]int, n)
		for j := range cost[i] {
			cost[i][j] = ManhattanDistance(boxes[i], goals[j])
		}
	}
	return hungarian(cost)
}

// hungarian computes the minimum total cost of a perfect matching on an
// n x n cost matrix using the potentials (u, v) / shortest augmenting path
// formulation. Rows are 1-indexed internally to keep the "unmatched"
// sentinel column 0 available, following the standard competitive-
// programming formulation of the algorithm.
func hungarian(cost [][]int) int {
	n := len(cost)
	const inf = int(1) << 30

	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j (1-indexed rows)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minV := make([]int, n+1)
		used := make([]bool, n+1)
		for j := 0; j <= n; j++ {
			minV[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minV[j] {
					minV[j] = cur
					way[j] = j0
				}
				if minV[j] < delta {
					delta = minV[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minV[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	total := 0
	for j := 1; j <= n; j++ {
		total += cost[p[j]-1][j-1]
	}
	return total
}

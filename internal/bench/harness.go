// Package bench implements the benchmark harness of spec §4.6: solving a
// range of levels across a list of backward weights, optionally in
// parallel, with results persisted through a shared result cache.
package bench

import (
	"sync"
	"time"

	"github.com/sokosolve/sokosolve/internal/cache"
	"github.com/sokosolve/sokosolve/internal/levels"
	"github.com/sokosolve/sokosolve/internal/solver"
)

// Cell identifies one (weight, level) benchmark cell.
type Cell struct {
	Weight float64
	Level  int
}

// cellResult pairs a Cell with its computed outcome, mirroring
// engine.WorkerResult's "which unit of work, what did it produce" shape.
type cellResult struct {
	cell Cell
	cc   cache.Cell
}

// Harness runs a fixed-size worker pool over the cross product of Levels
// and Weights (spec §4.6), each worker owning its own Library lookup and
// solver.Solve call — no shared mutable search state, per spec §5's "each
// owning its own problem and search instance." The shared resource is
// Cache, consulted before solving a cell and populated after, grounded on
// engine.Engine's Lazy-SMP worker pool (there: goroutines race on a shared
// transposition table guarded by atomics; here: goroutines race on a
// shared read-through KV cache, each cell independent so no coordination
// beyond the cache itself is required).
type Harness struct {
	Library *levels.Library
	Cache   *cache.ResultCache

	Levels  []int
	Weights []float64

	// NumWorkers bounds concurrency; zero or negative runs a single worker
	// goroutine, so cells are solved one at a time.
	NumWorkers int

	// MaxRetries is forwarded to solver.Solve for each cell (spec §4.6's
	// "on [] (no solution), retry indefinitely... implementations may cap
	// retries").
	MaxRetries int
}

// Run solves every (weight, level) cell, skipping ones already present in
// Cache, and returns a Report keyed the way the JSON benchmark output is
// (spec §6).
func (h *Harness) Run() Report {
	var cells []Cell
	for _, w := range h.Weights {
		for _, lvl := range h.Levels {
			cells = append(cells, Cell{Weight: w, Level: lvl})
		}
	}

	results := make(chan cellResult, len(cells))
	work := make(chan Cell, len(cells))
	for _, c := range cells {
		work <- c
	}
	close(work)

	numWorkers := h.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go h.runWorker(work, results, &wg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(results)
		close(done)
	}()

	report := NewReport()
	for r := range results {
		report.Set(r.cell.Weight, r.cell.Level, r.cc)
	}
	<-done
	return report
}

func (h *Harness) runWorker(work <-chan Cell, results chan<- cellResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for c := range work {
		results <- cellResult{cell: c, cc: h.solveCell(c)}
	}
}

func (h *Harness) solveCell(c Cell) cache.Cell {
	if h.Cache != nil {
		if cell, found, err := h.Cache.Get(c.Weight, c.Level); err == nil && found {
			return cell
		}
	}

	g, err := h.Library.Load(c.Level)
	if err != nil {
		return cache.Cell{}
	}

	start := time.Now()
	result := solver.Solve(g, c.Weight, h.MaxRetries)
	elapsed := time.Since(start)
	if result == nil {
		return cache.Cell{}
	}

	cell := cache.Cell{
		ElapsedTime: elapsed.Seconds(),
		BFactor:     solver.BFactorOrZero(result.BFactor),
		Length:      result.Length,
	}
	if h.Cache != nil {
		_ = h.Cache.Put(c.Weight, c.Level, cell)
	}
	return cell
}

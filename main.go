// sokosolve solves Sokoban levels with a bidirectional weighted-A* search.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sokosolve/sokosolve/internal/bench"
	"github.com/sokosolve/sokosolve/internal/cache"
	"github.com/sokosolve/sokosolve/internal/levels"
	"github.com/sokosolve/sokosolve/internal/solver"
)

func main() {
	test := flag.Bool("test", false, "run the benchmark harness instead of solving a single level")
	level := flag.Int("level", 1, "starting level number")
	logFile := flag.String("log-file", "", "log destination (stderr if empty)")
	_ = flag.String("icon-style", "", "forwarded to the renderer (unused by the core solver)")
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("sokosolve: opening log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	lib := levels.NewLibrary("levels")

	if *test {
		runBenchmark(lib)
		return
	}

	runSingle(lib, *level)
}

func runSingle(lib *levels.Library, level int) {
	g, err := lib.Load(level)
	if err != nil {
		log.Printf("[sokosolve] failed to load level %d: %v", level, err)
		os.Exit(1)
	}

	log.Printf("[sokosolve] solving level %d", level)
	result := solver.Solve(g, solver.AStarWeight, 0)
	if result == nil {
		log.Printf("[sokosolve] no solution found for level %d", level)
		return
	}

	log.Printf("[sokosolve] solved level %d in %d actions (b_factor=%.3f)",
		level, result.Length, solver.BFactorOrZero(result.BFactor))
	final := solver.Replay(g, result.Actions)
	fmt.Println(final.String())
}

func runBenchmark(lib *levels.Library) {
	rc, err := cache.Open()
	if err != nil {
		log.Printf("[sokosolve] failed to open result cache: %v", err)
		os.Exit(1)
	}
	defer rc.Close()

	h := &bench.Harness{
		Library:    lib,
		Cache:      rc,
		Levels:     []int{0, 1},
		Weights:    []float64{1.0, 2.0, 3.0},
		NumWorkers: 4,
	}

	log.Printf("[sokosolve] running benchmark harness over %d levels x %d weights",
		len(h.Levels), len(h.Weights))
	report := h.Run()

	path, err := report.WriteFile("results", time.Now())
	if err != nil {
		log.Printf("[sokosolve] failed to write benchmark report: %v", err)
		os.Exit(1)
	}
	log.Printf("[sokosolve] benchmark report written to %s", path)
}

// sokosolve-bench is a headless entry point for the benchmark harness,
// separate from the interactive core binary so profiling runs don't pay
// for flags/paths the core CLI needs, mirroring chessplay-uci's dedicated
// profiling-friendly main.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sokosolve/sokosolve/internal/bench"
	"github.com/sokosolve/sokosolve/internal/cache"
	"github.com/sokosolve/sokosolve/internal/levels"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	levelsDir  = flag.String("levels-dir", "levels", "directory containing level<N>.txt files")
	startLevel = flag.Int("start", 0, "first level number to benchmark")
	endLevel   = flag.Int("end", 1, "last level number to benchmark (inclusive)")
	numWorkers = flag.Int("workers", 4, "number of parallel benchmark workers")
	outDir     = flag.String("out", "results", "directory to write the results JSON file to")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	rc, err := cache.Open()
	if err != nil {
		log.Fatalf("sokosolve-bench: opening result cache: %v", err)
	}
	defer rc.Close()

	var levelNums []int
	for n := *startLevel; n <= *endLevel; n++ {
		levelNums = append(levelNums, n)
	}

	h := &bench.Harness{
		Library:    levels.NewLibrary(*levelsDir),
		Cache:      rc,
		Levels:     levelNums,
		Weights:    []float64{1.0, 2.0, 3.0, 5.0},
		NumWorkers: *numWorkers,
	}

	log.Printf("sokosolve-bench: solving levels %d..%d across %d weights with %d workers",
		*startLevel, *endLevel, len(h.Weights), h.NumWorkers)

	report := h.Run()

	path, err := report.WriteFile(*outDir, time.Now())
	if err != nil {
		log.Fatalf("sokosolve-bench: writing report: %v", err)
	}
	log.Printf("sokosolve-bench: report written to %s", path)
}

package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sokosolve/sokosolve/internal/cache"
)

// Report is the in-memory form of the JSON benchmark output of spec §6:
// `{ w_stringified: { lvl_num: {elapsed_time,b_factor,length} } }`, with
// "Infinity" as the string key for an infinite backward weight.
type Report map[string]map[string]cache.Cell

// NewReport returns an empty Report.
func NewReport() Report {
	return make(Report)
}

// Set records the cell for (weight, level).
func (r Report) Set(weight float64, level int, cell cache.Cell) {
	wk := cache.WeightKey(weight)
	if r[wk] == nil {
		r[wk] = make(map[string]cache.Cell)
	}
	r[wk][strconv.Itoa(level)] = cell
}

// WriteFile marshals r as indented JSON to
// <dir>/results_<YYYYmmdd_HHMMSS>.json, creating dir if needed; callers
// pass "results" as dir for spec §6's benchmark output convention. The
// timestamp in the file name is taken from now, which the caller supplies.
func (r Report) WriteFile(dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("results_%s.json", now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

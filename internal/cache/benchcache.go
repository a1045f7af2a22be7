package cache

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// Cell is a single benchmark result, matching the report shape of spec
// §6: elapsed time in seconds, the achieved branching factor, and the
// solution length in actions.
type Cell struct {
	ElapsedTime float64 `json:"elapsed_time"`
	BFactor     float64 `json:"b_factor"`
	Length      int     `json:"length"`
}

// WeightKey renders a backward weight the way the JSON report does:
// "Infinity" for +Inf, otherwise its decimal value (spec §6).
func WeightKey(weight float64) string {
	if math.IsInf(weight, 1) {
		return "Infinity"
	}
	return strconv.FormatFloat(weight, 'f', -1, 64)
}

func cacheKey(weight float64, level int) []byte {
	return []byte(fmt.Sprintf("%s:%d", WeightKey(weight), level))
}

// ResultCache persists computed benchmark cells across runs and workers,
// adapted from storage.Storage's JSON-blob-in-Badger pattern: there the
// key space was a handful of fixed preference/stats records, here it is
// one record per (weight, level) cell so concurrent workers and repeated
// runs skip cells already solved.
type ResultCache struct {
	db *badger.DB
}

// Open creates/opens the on-disk result cache under GetBenchmarkDBDir.
func Open() (*ResultCache, error) {
	dbDir, err := GetBenchmarkDBDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &ResultCache{db: db}, nil
}

// Close closes the underlying database.
func (c *ResultCache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get returns the cached cell for (weight, level), and whether it was
// present.
func (c *ResultCache) Get(weight float64, level int) (Cell, bool, error) {
	var cell Cell
	found := false

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(weight, level))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cell)
		})
	})

	return cell, found, err
}

// Put stores the cell for (weight, level), overwriting any prior value.
func (c *ResultCache) Put(weight float64, level int, cell Cell) error {
	data, err := json.Marshal(cell)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(weight, level), data)
	})
}

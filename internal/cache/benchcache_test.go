package cache

import (
	"math"
	"testing"
)

func TestWeightKeyFormatsInfinity(t *testing.T) {
	if got := WeightKey(math.Inf(1)); got != "Infinity" {
		t.Errorf("WeightKey(+Inf) = %q, want \"Infinity\"", got)
	}
}

func TestWeightKeyFormatsFinite(t *testing.T) {
	if got := WeightKey(1.0); got != "1" {
		t.Errorf("WeightKey(1.0) = %q, want \"1\"", got)
	}
	if got := WeightKey(1.5); got != "1.5" {
		t.Errorf("WeightKey(1.5) = %q, want \"1.5\"", got)
	}
}

func TestGetDataDir(t *testing.T) {
	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dir == "" {
		t.Error("GetDataDir returned empty path")
	}
}

func TestResultCacheRoundTrip(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	cell := Cell{ElapsedTime: 0.02, BFactor: 3.14, Length: 22}
	if err := c.Put(1.0, 0, cell); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := c.Get(1.0, 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatalf("expected a cached cell for (1.0, 0)")
	}
	if got != cell {
		t.Errorf("Get returned %+v, want %+v", got, cell)
	}

	if _, found, err := c.Get(2.0, 0); err != nil {
		t.Fatalf("Get for absent weight failed: %v", err)
	} else if found {
		t.Errorf("expected no cached cell for an untouched weight")
	}
}

func TestResultCacheDistinguishesInfinityFromFiniteWeights(t *testing.T) {
	c, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer c.Close()

	infCell := Cell{ElapsedTime: 1, BFactor: 2, Length: 3}
	if err := c.Put(math.Inf(1), 5, infCell); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, found, _ := c.Get(999999, 5); found {
		t.Errorf("a large finite weight must not collide with the Infinity key")
	}
	got, found, err := c.Get(math.Inf(1), 5)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || got != infCell {
		t.Errorf("Get(+Inf, 5) = %+v, %v, want %+v, true", got, found, infCell)
	}
}

package search

import (
	"errors"
	"testing"
	"time"
)

func TestBudgetAllowsEnoughNodes(t *testing.T) {
	e := BFS(&mazeProblem{goal: 4})
	b := NewBudget(time.Minute, 1000)
	actions, err := b.Run(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(actions) != 4 {
		t.Fatalf("path length = %d, want 4", len(actions))
	}
}

func TestBudgetExceededOnNodeCap(t *testing.T) {
	e := BFS(&mazeProblem{goal: 1000})
	b := NewBudget(time.Minute, 2)
	_, err := b.Run(e)
	var budgetErr *BudgetExceededError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetExceededError, got %v", err)
	}
}

func TestBudgetExceededOnDeadline(t *testing.T) {
	e := BFS(&mazeProblem{goal: 1000})
	b := NewBudget(0, 0)
	b.Deadline = time.Now().Add(-time.Second) // already expired
	_, err := b.Run(e)
	var budgetErr *BudgetExceededError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetExceededError, got %v", err)
	}
}

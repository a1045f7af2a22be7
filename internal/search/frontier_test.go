package search

import "testing"

type intState int

func (s intState) Key() StateKey { return StateKey(string(rune('a' + int(s)))) }

func TestFrontierPopsLowestPriorityFirst(t *testing.T) {
	f := NewFrontier()
	f.Push(intState(1), 5)
	f.Push(intState(2), 1)
	f.Push(intState(3), 3)

	order := []int{}
	for {
		s, ok := f.Pop()
		if !ok {
			break
		}
		order = append(order, int(s.(intState)))
	}
	want := []int{2, 3, 1}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("pop order = %v, want %v", order, want)
		}
	}
}

func TestFrontierStableTieBreak(t *testing.T) {
	f := NewFrontier()
	f.Push(intState(1), 1)
	f.Push(intState(2), 1)
	f.Push(intState(3), 1)

	first, _ := f.Pop()
	if first.(intState) != 1 {
		t.Fatalf("expected first-inserted equal-priority item to pop first, got %v", first)
	}
}

func TestFrontierEmptyPop(t *testing.T) {
	f := NewFrontier()
	if _, ok := f.Pop(); ok {
		t.Fatalf("expected Pop on empty frontier to report ok=false")
	}
}

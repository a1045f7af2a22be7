package search

import "container/heap"

// frontierItem is one entry in the priority queue: a state paired with its
// evaluation priority and a monotone sequence number used to break ties in
// insertion order (stable FIFO tie-breaking, per spec §4.4.1).
type frontierItem struct {
	state    State
	priority float64
	seq      int64
	index    int
}

// frontierHeap is a container/heap.Interface over frontierItem, directly
// grounded on bertbaron-pathfinding's priorityQueue type.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Frontier is a min-priority queue of states with stable insertion-order
// tie-breaking.
type Frontier struct {
	h       frontierHeap
	nextSeq int64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// Push inserts s at the given priority.
func (f *Frontier) Push(s State, priority float64) {
	heap.Push(&f.h, &frontierItem{state: s, priority: priority, seq: f.nextSeq})
	f.nextSeq++
}

// Pop removes and returns the lowest-priority state. ok is false if the
// frontier is empty.
func (f *Frontier) Pop() (s State, ok bool) {
	if f.h.Len() == 0 {
		return nil, false
	}
	item := heap.Pop(&f.h).(*frontierItem)
	return item.state, true
}

// Len returns the number of items currently queued.
func (f *Frontier) Len() int { return f.h.Len() }

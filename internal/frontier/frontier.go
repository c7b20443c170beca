// Package frontier implements the priority frontier used by Dijkstra:
// a binary min-heap of (vertex, tentative distance) pairs.
//
// The heap does not support decrease-key. Callers push a fresh entry whenever
// a shorter distance is found and discard superseded entries when they are
// popped ("lazy deletion"). With E relaxations the heap holds at most E+1
// entries, so Push and Pop cost O(log E) = O(log V²) = O(log V).
//
// Ordering between entries of equal distance is unspecified.
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/shortpath/core"
)

// item is a single frontier entry.
type item[V comparable, W core.Weight] struct {
	vertex V
	dist   W
}

// items implements heap.Interface ordered by dist ascending.
type items[V comparable, W core.Weight] []item[V, W]

// Len returns the number of entries in the heap.
func (h items[V, W]) Len() int { return len(h) }

// Less defines the comparison: smaller dist → higher priority.
func (h items[V, W]) Less(i, j int) bool { return h[i].dist < h[j].dist }

// Swap swaps two entries in the heap.
func (h items[V, W]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *items[V, W]) Push(x any) { *h = append(*h, x.(item[V, W])) }

// Pop removes the last entry; called by heap.Pop only.
func (h *items[V, W]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// Queue is a min-priority queue of vertices keyed by tentative distance.
// The zero value is an empty, ready-to-use queue.
type Queue[V comparable, W core.Weight] struct {
	h items[V, W]
}

// New returns an empty Queue with room for capacity entries.
func New[V comparable, W core.Weight](capacity int) *Queue[V, W] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[V, W]{h: make(items[V, W], 0, capacity)}
}

// Push inserts v with tentative distance d.
// Complexity: O(log n).
func (q *Queue[V, W]) Push(v V, d W) {
	heap.Push(&q.h, item[V, W]{vertex: v, dist: d})
}

// Pop removes and returns the entry with the smallest distance.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[V, W]) Pop() (v V, d W, ok bool) {
	if len(q.h) == 0 {
		return v, d, false
	}
	it := heap.Pop(&q.h).(item[V, W])

	return it.vertex, it.dist, true
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue[V, W]) Len() int { return len(q.h) }

// SPDX-License-Identifier: MIT
//
// File: pqueue.go
// Role: array-backed binary min-heap with explicit sift-up / sift-down.
// Determinism:
//   - For a fixed sequence of calls the internal layout is fully determined;
//     order among equal priorities is unspecified but reproducible.

package pqueue

// Item is a single queue entry: an arbitrary value and its priority.
// Lower priority values are served first.
type Item[V any] struct {
	Value    V
	Priority float64
}

// Queue is a binary min-heap of Items. The zero value is an empty queue
// ready to use.
type Queue[V any] struct {
	items []Item[V]
}

// New returns an empty Queue with room for capacity entries before the
// backing array has to grow. A negative capacity is treated as zero.
func New[V any](capacity int) *Queue[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[V]{items: make([]Item[V], 0, capacity)}
}

// Len returns the number of stored entries.
func (q *Queue[V]) Len() int { return len(q.items) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[V]) IsEmpty() bool { return len(q.items) == 0 }

// Reset drops all entries but keeps the allocated capacity.
func (q *Queue[V]) Reset() {
	clear(q.items)
	q.items = q.items[:0]
}

// Enqueue inserts value with the given priority.
//
// The entry is appended at the end of the backing array and swapped with its
// parent while the parent's priority is strictly greater.
//
// Complexity: O(log n).
func (q *Queue[V]) Enqueue(value V, priority float64) {
	q.items = append(q.items, Item[V]{Value: value, Priority: priority})
	q.up(len(q.items) - 1)
}

// Peek returns the minimum-priority entry without removing it.
// The boolean is false when the queue is empty.
func (q *Queue[V]) Peek() (Item[V], bool) {
	if len(q.items) == 0 {
		var zero Item[V]
		return zero, false
	}

	return q.items[0], true
}

// Dequeue removes and returns the minimum-priority entry.
// The boolean is false when the queue is empty.
//
// Complexity: O(log n).
func (q *Queue[V]) Dequeue() (Item[V], bool) {
	n := len(q.items)
	switch n {
	case 0:
		var zero Item[V]
		return zero, false
	case 1:
		return q.pop(), true
	}

	// Move the root to the end, detach it, then restore order from the top.
	q.swap(0, n-1)
	root := q.pop()
	q.down(0)

	return root, true
}

// pop detaches the last entry and clears its slot so the value can be
// collected.
func (q *Queue[V]) pop() Item[V] {
	last := len(q.items) - 1
	it := q.items[last]
	var zero Item[V]
	q.items[last] = zero
	q.items = q.items[:last]

	return it
}

func (q *Queue[V]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// up moves the entry at idx towards the root while its parent has a
// strictly greater priority.
func (q *Queue[V]) up(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if q.items[parent].Priority <= q.items[idx].Priority {
			return
		}
		q.swap(parent, idx)
		idx = parent
	}
}

// down moves the entry at idx towards the leaves. At every level it looks at
// both existing children and swaps with the smaller one, as long as that
// child is strictly smaller than the entry.
func (q *Queue[V]) down(idx int) {
	n := len(q.items)
	for {
		smallest := idx
		left := 2*idx + 1
		right := left + 1

		if left < n && q.items[left].Priority < q.items[smallest].Priority {
			smallest = left
		}
		if right < n && q.items[right].Priority < q.items[smallest].Priority {
			smallest = right
		}
		if smallest == idx {
			return
		}

		q.swap(idx, smallest)
		idx = smallest
	}
}

// SPDX-License-Identifier: MIT

// Package pqueue provides a binary min-heap priority queue keyed by a float64
// priority.
//
// What
//
//   - Queue[V] stores (value, priority) pairs in an array-backed complete
//     binary tree. For every non-root entry the parent's priority is ≤ the
//     entry's priority, so the root always holds the minimum.
//   - Enqueue appends and sifts up; Dequeue moves the last entry to the root
//     and sifts down, choosing the smaller of both children at every level.
//   - Any float64 is a valid priority, including math.Inf(1) as a
//     "not yet reached" placeholder. NaN is not ordered and must not be used.
//
// Ties
//
//	Entries with equal priority leave in unspecified order; the heap is not
//	stable and callers must not rely on FIFO behaviour among ties.
//
// Complexity
//
//   - Enqueue, Dequeue: O(log n)
//   - Peek, Len, IsEmpty: O(1)
//
// Concurrency
//
//	A Queue is not safe for concurrent use. It is meant to be created per
//	computation (e.g. one shortest-path query) and then discarded.
//
// Example
//
//	q := pqueue.New[string](4)
//	q.Enqueue("common cold", 5)
//	q.Enqueue("gunshot wound", 1)
//	it, _ := q.Dequeue() // it.Value == "gunshot wound"
package pqueue

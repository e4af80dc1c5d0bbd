// SPDX-License-Identifier: MIT
// Package pqueue_test covers the public Queue contract.

package pqueue_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/pqueue"
)

func TestQueue_EmptyDequeue(t *testing.T) {
	q := pqueue.New[string](0)
	it, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, pqueue.Item[string]{}, it)

	_, ok = q.Peek()
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

func TestQueue_ZeroValueUsable(t *testing.T) {
	var q pqueue.Queue[int]
	q.Enqueue(7, 3)
	q.Enqueue(9, 1)

	it, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 9, it.Value)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_SingleElement(t *testing.T) {
	q := pqueue.New[string](1)
	q.Enqueue("only", 42)

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "only", top.Value)
	assert.Equal(t, 1, q.Len(), "Peek must not remove")

	it, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, pqueue.Item[string]{Value: "only", Priority: 42}, it)
	assert.True(t, q.IsEmpty())
}

func TestQueue_TriageOrder(t *testing.T) {
	q := pqueue.New[string](5)
	q.Enqueue("common cold", 5)
	q.Enqueue("gunshot wound", 1)
	q.Enqueue("high fever", 4)
	q.Enqueue("broken arm", 2)
	q.Enqueue("glass in foot", 3)

	var got []string
	for !q.IsEmpty() {
		it, _ := q.Dequeue()
		got = append(got, it.Value)
	}
	assert.Equal(t, []string{"gunshot wound", "broken arm", "glass in foot", "high fever", "common cold"}, got)
}

func TestQueue_InfinityAndNegativePriorities(t *testing.T) {
	q := pqueue.New[string](4)
	q.Enqueue("far", math.Inf(1))
	q.Enqueue("zero", 0)
	q.Enqueue("neg", -2.5)
	q.Enqueue("far2", math.Inf(1))

	var got []float64
	for !q.IsEmpty() {
		it, _ := q.Dequeue()
		got = append(got, it.Priority)
	}
	assert.Equal(t, []float64{-2.5, 0, math.Inf(1), math.Inf(1)}, got)
}

// TestQueue_DequeueOrderNonDecreasing enqueues random priorities and checks
// that the drained priorities are exactly the sorted input.
func TestQueue_DequeueOrderNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(64)
		q := pqueue.New[int](n)
		in := make([]float64, n)
		for i := range in {
			// Small integer range forces plenty of ties.
			in[i] = float64(rng.Intn(10))
			q.Enqueue(i, in[i])
		}

		out := make([]float64, 0, n)
		for !q.IsEmpty() {
			it, ok := q.Dequeue()
			require.True(t, ok)
			out = append(out, it.Priority)
		}

		sort.Float64s(in)
		require.Equal(t, in, out, "round %d", round)
	}
}

func TestQueue_ValuesSurviveReordering(t *testing.T) {
	q := pqueue.New[string](0)
	want := map[string]float64{"a": 3, "b": 1, "c": 2, "d": 1, "e": 0}
	for v, p := range want {
		q.Enqueue(v, p)
	}

	got := make(map[string]float64, len(want))
	for !q.IsEmpty() {
		it, _ := q.Dequeue()
		got[it.Value] = it.Priority
	}
	assert.Equal(t, want, got)
}

func TestQueue_Reset(t *testing.T) {
	q := pqueue.New[int](4)
	q.Enqueue(1, 1)
	q.Enqueue(2, 2)
	q.Reset()
	assert.Equal(t, 0, q.Len())

	q.Enqueue(3, 3)
	it, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 3, it.Value)
}

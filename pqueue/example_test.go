// SPDX-License-Identifier: MIT

package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/pqueue"
)

// ExampleQueue serves emergency-room patients by urgency.
func ExampleQueue() {
	q := pqueue.New[string](3)
	q.Enqueue("high fever", 4)
	q.Enqueue("gunshot wound", 1)
	q.Enqueue("broken arm", 2)

	for !q.IsEmpty() {
		it, _ := q.Dequeue()
		fmt.Printf("%s (%g)\n", it.Value, it.Priority)
	}
	// Output:
	// gunshot wound (1)
	// broken arm (2)
	// high fever (4)
}

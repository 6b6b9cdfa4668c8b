// File: api/ring.go
// License: Apache-2.0
//
// Contract for bounded single-producer single-consumer ring buffers.

package api

// Ring is a wait-free bounded SPSC queue contract.
//
// Exactly one goroutine may call Enqueue and exactly one goroutine may call
// Dequeue for the lifetime of the ring. The remaining methods are advisory
// snapshots either side may take.
type Ring[T any] interface {
	// Enqueue adds an item, returns false if full. Producer side only.
	Enqueue(item T) bool
	// Dequeue removes the oldest item, ok false if empty. Consumer side only.
	Dequeue() (T, bool)
	// Len returns the approximate number of items currently held.
	Len() int
	// Cap returns the usable capacity.
	Cap() int
	// Empty reports whether the ring appeared empty at the time of the call.
	Empty() bool
	// Full reports whether the ring appeared full at the time of the call.
	Full() bool
}

// File: spsc/ring.go
// License: Apache-2.0
//
// Wait-free single-producer single-consumer ring buffer with masked cursors,
// one reserved slot for empty/full disambiguation, and cache-line padded
// producer/consumer indices.

package spsc

import (
	"sync/atomic"

	"github.com/lockfree-go/ring/api"
)

const cacheLinePad = 64

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a bounded SPSC queue over a fixed slice of slots.
//
// head is advanced only by the consumer, tail only by the producer; each is
// read by the opposite side through an atomic load. Under the Go memory model
// every atomic store is a release and every atomic load an acquire, so the
// producer's slot write happens-before the consumer's read of that slot, and
// the consumer's take happens-before the producer's reuse of the slot. The
// slots themselves are plain memory: at any instant at most one goroutine may
// touch a given slot, which the cursor invariant enforces by construction.
//
// One slot is always kept vacant: head == tail means empty and
// (tail+1)&mask == head means full, so usable capacity is one less than the
// slot count.
type RingBuffer[T any] struct {
	slots []T
	mask  uint64

	_    [cacheLinePad]byte
	head atomic.Uint64 // next slot to read, consumer-owned
	_    [cacheLinePad]byte
	tail atomic.Uint64 // next slot to write, producer-owned
	_    [cacheLinePad]byte
}

// New allocates a ring buffer with the given slot count.
//
// capacity must be a power of two and at least 2; anything else is a contract
// violation and panics. Usable capacity is capacity-1. No further allocation
// happens after construction.
func New[T any](capacity uint64) *RingBuffer[T] {
	if capacity < 2 || capacity&(capacity-1) != 0 {
		panic("spsc: capacity must be a power of two and >= 2")
	}
	return &RingBuffer[T]{
		slots: make([]T, capacity),
		mask:  capacity - 1,
	}
}

// Enqueue adds an item; returns false if the ring is full.
//
// Producer side only. A false return is ordinary backpressure, not an error;
// retry policy belongs to the caller (see the wait package).
func (r *RingBuffer[T]) Enqueue(item T) bool {
	tail := r.tail.Load() // sole writer of tail
	next := (tail + 1) & r.mask
	if next == r.head.Load() {
		return false
	}
	r.slots[tail] = item
	r.tail.Store(next) // publish: slot write above is now visible to the consumer
	return true
}

// Dequeue removes and returns the oldest item; ok is false if the ring is
// empty.
//
// Consumer side only. The vacated slot is zeroed before the new head is
// published, so the ring holds no reference to the element once ownership has
// transferred to the caller.
func (r *RingBuffer[T]) Dequeue() (T, bool) {
	head := r.head.Load() // sole writer of head
	if head == r.tail.Load() {
		var zero T
		return zero, false
	}
	item := r.slots[head]
	var zero T
	r.slots[head] = zero
	r.head.Store((head + 1) & r.mask) // publish: slot is reusable by the producer
	return item, true
}

// Empty reports whether the ring appeared empty at the time of the call.
// Advisory snapshot; either side may call it.
func (r *RingBuffer[T]) Empty() bool {
	return r.head.Load() == r.tail.Load()
}

// Full reports whether the ring appeared full at the time of the call.
// Advisory snapshot; either side may call it.
func (r *RingBuffer[T]) Full() bool {
	return (r.tail.Load()+1)&r.mask == r.head.Load()
}

// Len returns the number of items held at the instant of observation. The
// opposite side may move its cursor concurrently, so the value is only an
// approximation for diagnostics and backoff decisions.
func (r *RingBuffer[T]) Len() int {
	return int((r.tail.Load() - r.head.Load()) & r.mask)
}

// Cap returns the usable capacity: one less than the slot count.
func (r *RingBuffer[T]) Cap() int {
	return len(r.slots) - 1
}

// BufferSize returns the raw slot count, including the reserved slot.
func (r *RingBuffer[T]) BufferSize() int {
	return len(r.slots)
}

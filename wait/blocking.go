// File: wait/blocking.go
// License: Apache-2.0
//
// Blocking helpers layered on any api.Ring. These retry on the caller's
// goroutine with a supplied backoff strategy; the ring itself stays wait-free.

package wait

import (
	"context"

	"github.com/lockfree-go/ring/api"
)

// Push enqueues item, retrying with the strategy until it succeeds.
// Producer side only, same as Enqueue.
func Push[T any](r api.Ring[T], item T, s api.WaitStrategy) {
	for attempt := 0; !r.Enqueue(item); attempt++ {
		s.Wait(attempt)
	}
}

// Pop dequeues an item, retrying with the strategy until one is available.
// Consumer side only, same as Dequeue.
func Pop[T any](r api.Ring[T], s api.WaitStrategy) T {
	for attempt := 0; ; attempt++ {
		if v, ok := r.Dequeue(); ok {
			return v
		}
		s.Wait(attempt)
	}
}

// PushContext is Push with cancellation checked between attempts. Returns the
// context error if ctx ends before the item is accepted; the item is not
// enqueued in that case.
func PushContext[T any](ctx context.Context, r api.Ring[T], item T, s api.WaitStrategy) error {
	for attempt := 0; ; attempt++ {
		if r.Enqueue(item) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Wait(attempt)
	}
}

// PopContext is Pop with cancellation checked between attempts.
func PopContext[T any](ctx context.Context, r api.Ring[T], s api.WaitStrategy) (T, error) {
	for attempt := 0; ; attempt++ {
		if v, ok := r.Dequeue(); ok {
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		s.Wait(attempt)
	}
}

// File: spsc/doc.go
// License: Apache-2.0
//
// Package spsc provides a wait-free bounded queue for passing values between
// exactly two goroutines: one producer, one consumer.
//
// The ring never blocks, never allocates after construction, and never retries
// internally. Enqueue returns false when full and Dequeue reports !ok when
// empty; both are expected outcomes under backpressure, and any spin, yield,
// or park policy is layered on top by the caller (the wait package provides
// ready-made strategies).
//
// The SPSC contract is not runtime-checked: calling Enqueue from more than one
// goroutine, or Dequeue from more than one goroutine, is a data race and voids
// all guarantees. The ring must not be copied after first use, and teardown
// while either side is still operating on it is undefined.
//
//	rb := spsc.New[int](1024)
//
//	// producer goroutine
//	if !rb.Enqueue(42) {
//		// full, back off and retry
//	}
//
//	// consumer goroutine
//	if v, ok := rb.Dequeue(); ok {
//		// own v
//	}
package spsc

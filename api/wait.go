// File: api/wait.go
// License: Apache-2.0
//
// Backoff policy contract for callers of non-blocking rings.

package api

// WaitStrategy decides how a caller backs off between failed ring operations.
//
// The ring itself never blocks; any spin, yield, or park policy is supplied by
// the caller through this interface. Wait receives the number of failed
// attempts so far for the current operation, starting at 0.
type WaitStrategy interface {
	Wait(attempt int)
}

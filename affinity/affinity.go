// File: affinity/affinity.go
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// live in separate files guarded by build tags.
//
// Pinning producer and consumer onto distinct cores keeps each ring cursor's
// cache line resident on one core; benchmarks and latency-sensitive drivers
// use it, correctness never depends on it.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the given logical CPU. Returns an error on unsupported platforms or if the
// kernel rejects the mask; the goroutine stays thread-locked either way until
// Unpin is called.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// Unpin releases the goroutine/thread lock taken by Pin. The kernel-side
// affinity mask is left as-is; the thread returns to the scheduler pool.
func Unpin() {
	runtime.UnlockOSThread()
}

// File: wait/strategy.go
// License: Apache-2.0
//
// Backoff strategies for callers of non-blocking rings. The ring core never
// waits; these policies implement the caller side of the contract.

package wait

import (
	"runtime"
	"time"

	"github.com/lockfree-go/ring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.WaitStrategy = Spin{}
	_ api.WaitStrategy = Yield{}
	_ api.WaitStrategy = Sleep(0)
	_ api.WaitStrategy = Progressive{}
)

// Spin busy-loops between attempts. Lowest latency, burns a core.
type Spin struct{}

func (Spin) Wait(int) {}

// Yield hands the processor to the scheduler between attempts.
type Yield struct{}

func (Yield) Wait(int) { runtime.Gosched() }

// Sleep parks for a fixed duration between attempts.
type Sleep time.Duration

func (s Sleep) Wait(int) { time.Sleep(time.Duration(s)) }

// Progressive spins for the first SpinAttempts tries, yields for the next
// YieldAttempts, then sleeps Park between further attempts. Zero fields fall
// through to the next stage immediately.
type Progressive struct {
	SpinAttempts  int
	YieldAttempts int
	Park          time.Duration
}

func (p Progressive) Wait(attempt int) {
	switch {
	case attempt < p.SpinAttempts:
	case attempt < p.SpinAttempts+p.YieldAttempts:
		runtime.Gosched()
	default:
		time.Sleep(p.Park)
	}
}

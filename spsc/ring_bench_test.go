// File: spsc/ring_bench_test.go
// License: Apache-2.0
//
// Comparison benchmarks: this ring vs a buffered channel, a mutex-guarded
// eapache queue, and go-lock-free-ring's sharded ring in single-shard
// configuration.

package spsc_test

import (
	"sync"
	"testing"

	"github.com/eapache/queue"
	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/lockfree-go/ring/spsc"
)

const benchRingSize = 1024

func BenchmarkEnqueueDequeue(b *testing.B) {
	rb := spsc.New[int](benchRingSize)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !rb.Enqueue(i) {
			rb.Dequeue()
			rb.Enqueue(i)
		}
		rb.Dequeue()
	}
}

func BenchmarkSPSC_Ring(b *testing.B) {
	rb := spsc.New[int](benchRingSize)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				rb.Dequeue()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !rb.Enqueue(i) {
		}
	}
	b.StopTimer()
	close(done)
	wg.Wait()
}

func BenchmarkSPSC_Channel(b *testing.B) {
	ch := make(chan int, benchRingSize)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-ch:
			default:
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for {
			select {
			case ch <- i:
			default:
				continue
			}
			break
		}
	}
	b.StopTimer()
	close(done)
	wg.Wait()
}

// mutexQueue is the classic lock-guarded alternative: an eapache FIFO behind a
// mutex, bounded by hand to match the ring's capacity.
type mutexQueue struct {
	mu    sync.Mutex
	q     *queue.Queue
	bound int
}

func newMutexQueue(bound int) *mutexQueue {
	return &mutexQueue{q: queue.New(), bound: bound}
}

func (m *mutexQueue) Enqueue(v int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.q.Length() >= m.bound {
		return false
	}
	m.q.Add(v)
	return true
}

func (m *mutexQueue) Dequeue() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.q.Length() == 0 {
		return 0, false
	}
	return m.q.Remove().(int), true
}

func BenchmarkSPSC_MutexQueue(b *testing.B) {
	mq := newMutexQueue(benchRingSize)
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				mq.Dequeue()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !mq.Enqueue(i) {
		}
	}
	b.StopTimer()
	close(done)
	wg.Wait()
}

// BenchmarkSPSC_ShardedRing drives go-lock-free-ring with one shard, the
// closest SPSC-like configuration its MPSC design offers.
func BenchmarkSPSC_ShardedRing(b *testing.B) {
	r, err := ring.NewShardedRing(benchRingSize, 1)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
	}
	b.StopTimer()
	close(done)
	wg.Wait()
}

// BenchmarkWrapHeavy cycles a tiny ring so every operation wraps within a few
// steps, stressing the masked index arithmetic.
func BenchmarkWrapHeavy(b *testing.B) {
	rb := spsc.New[int](4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Enqueue(i)
		rb.Enqueue(i + 1)
		rb.Dequeue()
		rb.Dequeue()
	}
}

// File: instrument/ring.go
// License: Apache-2.0
//
// Prometheus instrumentation for rings. Opt-in wrapper; the bare ring stays
// free of any metrics cost.

package instrument

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lockfree-go/ring/api"
)

// Metrics holds the collectors for one instrumented ring.
type Metrics struct {
	EnqueuedTotal  prometheus.Counter
	DequeuedTotal  prometheus.Counter
	FullRejections prometheus.Counter
	EmptyPolls     prometheus.Counter
	Occupancy      prometheus.Gauge
}

// NewMetrics creates the collectors under the given namespace. Collectors are
// not registered; call Register with the target registry.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		EnqueuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "enqueued_total",
			Help:      "Total number of items accepted by the ring",
		}),
		DequeuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "dequeued_total",
			Help:      "Total number of items taken from the ring",
		}),
		FullRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "full_rejections_total",
			Help:      "Enqueue attempts rejected because the ring was full",
		}),
		EmptyPolls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "empty_polls_total",
			Help:      "Dequeue attempts that found the ring empty",
		}),
		Occupancy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ring",
			Name:      "occupancy",
			Help:      "Approximate number of items held by the ring",
		}),
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.EnqueuedTotal,
		m.DequeuedTotal,
		m.FullRejections,
		m.EmptyPolls,
		m.Occupancy,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring wraps an api.Ring and counts its traffic. The SPSC contract carries
// over unchanged: the wrapper adds no synchronization of its own, so the
// counters inherit the single-producer/single-consumer discipline of the
// underlying ring (prometheus counters are themselves safe for concurrent
// use).
type Ring[T any] struct {
	inner   api.Ring[T]
	metrics *Metrics
}

// Wrap instruments inner with the given metrics.
func Wrap[T any](inner api.Ring[T], m *Metrics) *Ring[T] {
	return &Ring[T]{inner: inner, metrics: m}
}

// Enqueue forwards to the inner ring, counting acceptance or rejection.
func (r *Ring[T]) Enqueue(item T) bool {
	if !r.inner.Enqueue(item) {
		r.metrics.FullRejections.Inc()
		return false
	}
	r.metrics.EnqueuedTotal.Inc()
	r.metrics.Occupancy.Set(float64(r.inner.Len()))
	return true
}

// Dequeue forwards to the inner ring, counting hits and empty polls.
func (r *Ring[T]) Dequeue() (T, bool) {
	v, ok := r.inner.Dequeue()
	if !ok {
		r.metrics.EmptyPolls.Inc()
		return v, false
	}
	r.metrics.DequeuedTotal.Inc()
	r.metrics.Occupancy.Set(float64(r.inner.Len()))
	return v, true
}

func (r *Ring[T]) Len() int    { return r.inner.Len() }
func (r *Ring[T]) Cap() int    { return r.inner.Cap() }
func (r *Ring[T]) Empty() bool { return r.inner.Empty() }
func (r *Ring[T]) Full() bool  { return r.inner.Full() }

// Package metrics tracks conversion activity with process-wide atomic
// counters. There is no exposition endpoint; embedding applications read a
// Snapshot and report it however they like.
package metrics

import (
	"sync"
	"sync/atomic"
)

// Metrics holds all conversion counters.
type Metrics struct {
	conversionsTotal uint64
	bytesOut         uint64
	failuresTotal    uint64
	failuresByKind   sync.Map // error kind -> *uint64
}

var globalMetrics = &Metrics{}

// Get returns the global metrics instance.
func Get() *Metrics {
	return globalMetrics
}

// Reset resets all metrics (for testing).
func Reset() {
	globalMetrics = &Metrics{}
}

func (m *Metrics) IncConversion() {
	atomic.AddUint64(&m.conversionsTotal, 1)
}

func (m *Metrics) AddBytesOut(n int) {
	if n > 0 {
		atomic.AddUint64(&m.bytesOut, uint64(n))
	}
}

func (m *Metrics) IncFailure(kind string) {
	atomic.AddUint64(&m.failuresTotal, 1)
	count, _ := m.failuresByKind.LoadOrStore(kind, new(uint64))
	atomic.AddUint64(count.(*uint64), 1)
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Conversions    uint64
	BytesOut       uint64
	Failures       uint64
	FailuresByKind map[string]uint64
}

func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		Conversions:    atomic.LoadUint64(&m.conversionsTotal),
		BytesOut:       atomic.LoadUint64(&m.bytesOut),
		Failures:       atomic.LoadUint64(&m.failuresTotal),
		FailuresByKind: map[string]uint64{},
	}
	m.failuresByKind.Range(func(key, value interface{}) bool {
		s.FailuresByKind[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	return s
}

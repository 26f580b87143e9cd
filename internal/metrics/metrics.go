package metrics

import "sync/atomic"

// MetricID identifies a single counter slot.
type MetricID uint16

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricLogout
	MetricTokenRejected
	MetricTokenRevoked
	MetricAuthzDenied
	MetricEnrollmentAdded
	MetricEnrollmentDuplicate
	MetricEnrollmentRemoved
	MetricEnrollmentMissing
	MetricReset

	// MetricIDCount is the number of defined counter slots.
	MetricIDCount
)

const cacheLineSize = 64

// paddedCounter keeps each slot on its own cache line so concurrent
// increments of different counters do not false-share.
type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Config controls metric collection.
type Config struct {
	Enabled bool
}

// Metrics holds atomic counters. The zero value is disabled; use [New].
type Metrics struct {
	enabled  bool
	counters [MetricIDCount]paddedCounter
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Counters map[MetricID]uint64
}

// New creates a Metrics instance. When cfg.Enabled is false every
// operation is a no-op and Snapshot returns empty maps.
func New(cfg Config) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether collection is active.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc atomically increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value returns the current count for id.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot returns a deep copy of all counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil || !m.enabled {
		return Snapshot{Counters: map[MetricID]uint64{}}
	}

	s := Snapshot{Counters: make(map[MetricID]uint64, int(MetricIDCount))}
	for id := MetricID(0); id < MetricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}

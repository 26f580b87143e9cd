package metrics

import (
	"sync"
	"testing"
)

func TestDisabledMetricsAreNoOps(t *testing.T) {
	m := New(Config{Enabled: false})

	m.Inc(MetricLoginSuccess)
	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Fatalf("Value = %d, want 0 when disabled", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("Snapshot = %v, want empty when disabled", snap.Counters)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLogout)
	if m.Enabled() {
		t.Fatal("nil metrics reported enabled")
	}
	if got := m.Value(MetricLogout); got != 0 {
		t.Fatalf("Value = %d, want 0", got)
	}
}

func TestIncAndSnapshot(t *testing.T) {
	m := New(Config{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricEnrollmentAdded)
	m.Inc(MetricIDCount + 10) // out of range, ignored

	if got := m.Value(MetricLoginSuccess); got != 2 {
		t.Fatalf("login success = %d, want 2", got)
	}

	snap := m.Snapshot()
	if len(snap.Counters) != int(MetricIDCount) {
		t.Fatalf("snapshot has %d slots, want %d", len(snap.Counters), MetricIDCount)
	}
	if snap.Counters[MetricEnrollmentAdded] != 1 {
		t.Fatalf("enrollment added = %d, want 1", snap.Counters[MetricEnrollmentAdded])
	}
	if snap.Counters[MetricAuthzDenied] != 0 {
		t.Fatalf("authz denied = %d, want 0", snap.Counters[MetricAuthzDenied])
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New(Config{Enabled: true})

	const workers = 16
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricTokenRejected)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricTokenRejected); got != workers*perWorker {
		t.Fatalf("token rejected = %d, want %d", got, workers*perWorker)
	}
}

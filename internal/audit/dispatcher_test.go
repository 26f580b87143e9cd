package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

// collectSink records events synchronously for assertions.
type collectSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *collectSink) Emit(_ context.Context, event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *collectSink) all() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func TestDisabledDispatcherIsNil(t *testing.T) {
	d := NewDispatcher(Config{Enabled: false}, NoOpSink{})
	if d != nil {
		t.Fatal("disabled dispatcher should be nil")
	}
	d.Emit(context.Background(), Event{EventType: "login"})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reported drops")
	}
}

func TestDispatcherDeliversAndDrains(t *testing.T) {
	sink := &collectSink{}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 8}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), Event{
			Timestamp: time.Now(),
			EventType: "login",
			Username:  "somchai",
			Success:   true,
		})
	}
	d.Close()

	got := sink.all()
	if len(got) != 5 {
		t.Fatalf("delivered %d events, want 5", len(got))
	}
	if got[0].Username != "somchai" || !got[0].Success {
		t.Fatalf("unexpected event %+v", got[0])
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// A sink that never returns until released keeps the relay busy so
	// the buffer can fill up.
	release := make(chan struct{})
	blocking := sinkFunc(func(context.Context, Event) { <-release })

	d := NewDispatcher(Config{Enabled: true, BufferSize: 1, DropIfFull: true}, blocking)

	// First event occupies the relay, second fills the buffer, the rest
	// must be dropped.
	for i := 0; i < 10; i++ {
		d.Emit(context.Background(), Event{EventType: "logout"})
	}

	deadline := time.Now().Add(2 * time.Second)
	for d.Dropped() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if d.Dropped() == 0 {
		t.Fatal("no events dropped with a saturated buffer")
	}

	close(release)
	d.Close()
}

type sinkFunc func(context.Context, Event)

func (f sinkFunc) Emit(ctx context.Context, event Event) { f(ctx, event) }

func TestEmitAfterCloseIsDropped(t *testing.T) {
	sink := &collectSink{}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 4}, sink)
	d.Close()

	d.Emit(context.Background(), Event{EventType: "login"})
	if got := sink.all(); len(got) != 0 {
		t.Fatalf("delivered %d events after close, want 0", len(got))
	}
}

func TestJSONWriterSinkWritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{EventType: "login", Username: "admin", Success: true})
	sink.Emit(context.Background(), Event{EventType: "logout", Username: "admin", Success: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2", len(lines))
	}

	var event Event
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("line 0 is not JSON: %v", err)
	}
	if event.EventType != "login" || event.Username != "admin" {
		t.Fatalf("unexpected event %+v", event)
	}
}

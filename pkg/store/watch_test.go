package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestDiskvWatchIgnoresOtherKeys(t *testing.T) {
	base := t.TempDir()
	kv, err := NewDiskvKV(base)
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := kv.Watch(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := kv.Write("other.key", []byte(`{}`)); err != nil {
		t.Fatalf("write other key: %v", err)
	}
	select {
	case evt := <-ch:
		t.Fatalf("unexpected event for %q", evt.Key)
	case <-time.After(300 * time.Millisecond):
	}

	if err := kv.Write(DefaultKey, []byte(`{}`)); err != nil {
		t.Fatalf("write key: %v", err)
	}
	select {
	case evt := <-ch:
		if evt.Key != DefaultKey {
			t.Fatalf("expected key %q, got %q", DefaultKey, evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestDiskvWatchClosesOnCancel(t *testing.T) {
	kv, err := NewDiskvKV(t.TempDir())
	if err != nil {
		t.Fatalf("open diskv: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := kv.Watch(ctx, DefaultKey)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestEventThrottleCoalescesBursts(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	var mu sync.Mutex
	var got []Event
	send := func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, ev)
	}

	for i := 0; i < 10; i++ {
		th.Enqueue(Event{Key: DefaultKey}, send)
	}

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected 1 coalesced event, got %d", len(got))
	}
}

func TestEventThrottleStopDropsPending(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)

	sent := make(chan Event, 1)
	th.Enqueue(Event{Key: DefaultKey}, func(ev Event) { sent <- ev })
	th.Stop()

	select {
	case <-sent:
		t.Fatal("event sent after Stop")
	case <-time.After(60 * time.Millisecond):
	}
}

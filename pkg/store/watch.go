package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is emitted by Watch when the persisted value for Key may have
// changed outside this process.
type Event struct {
	Key string
}

// Watcher is implemented by KV backends that can report external changes.
type Watcher interface {
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

// watchDir streams an Event for key whenever a file in dir matching match is
// touched, until ctx is cancelled. Callers should drain the returned channel;
// events are dropped when the consumer falls behind.
func watchDir(ctx context.Context, dir, key string, match func(name string) bool) (<-chan Event, error) {
	if dir == "" {
		return nil, errors.New("store: watch directory unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure watch directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer watcher.Close()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer re-reads the whole value, so a dropped event
				// is covered by the next one it does receive.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		const interesting = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Key: key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&interesting == 0 || !match(evt.Name) {
					continue
				}
				throttle.Enqueue(Event{Key: key}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces rapid change notifications so a consumer reloads
// once per burst of filesystem activity.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.pending[ev.Key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	// Hold the lock while sending so Stop cannot close the channel under us.
	defer t.mu.Unlock()

	for key := range pending {
		send(Event{Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

package list

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/store"
)

var (
	// ErrDuplicateTitle is returned by Dispatch when an Add or Edit would
	// give two entries the same normalized title.
	ErrDuplicateTitle = errors.New("list: title already on the list")
	// ErrNotFound is returned by lookups for an unknown id.
	ErrNotFound = errors.New("list: entry not found")
)

// Store owns the watchlist. Every change goes through Dispatch, which runs
// Reduce and then persists the new state through the storage adapter.
type Store struct {
	mu      sync.Mutex
	items   []entry.Entry
	adapter *store.Adapter
	key     string
	clock   entry.Clock
	log     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used to stamp actions.
func WithClock(c entry.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Open loads the persisted list through adapter.
func Open(adapter *store.Adapter, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		key:     store.DefaultKey,
		clock:   entry.SystemClock,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.items = s.load()
	return s
}

func (s *Store) load() []entry.Entry {
	env := s.adapter.Load(s.key, store.Empty(), store.Migrate(s.clock))
	items := env.Items
	if err := entry.ValidateList(items); err != nil {
		s.log.Warn("stored list is inconsistent, repairing", zap.Error(err))
		items = store.Repair(items)
	}
	if items == nil {
		items = []entry.Entry{}
	}
	return items
}

// Reload replaces the in-memory list with what is persisted, picking up
// writes made by another process.
func (s *Store) Reload() []entry.Entry {
	items := s.load()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	return entry.Clone(s.items)
}

// Key is the storage key the list is persisted under.
func (s *Store) Key() string {
	return s.key
}

// Dispatch applies a and returns the resulting list. Add and Edit are
// rejected with ErrDuplicateTitle when the new title collides with another
// entry; nothing is changed or written in that case. A state change is
// always kept in memory even if persisting it fails.
func (s *Store) Dispatch(a Action) ([]entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a = s.stamp(a)
	if err := s.checkUnique(a); err != nil {
		return entry.Clone(s.items), err
	}

	next, changed := reduce(s.items, a)
	if !changed {
		return entry.Clone(s.items), nil
	}
	s.items = next

	if !s.adapter.Save(s.key, store.Envelope{Version: store.CurrentVersion, Items: s.items}) {
		s.log.Warn("persist failed, keeping in-memory state",
			zap.String("action", string(a.Kind())),
			zap.Int("items", len(s.items)))
	}
	return entry.Clone(s.items), nil
}

func (s *Store) stamp(a Action) Action {
	switch v := a.(type) {
	case Add:
		if v.At == 0 {
			v.At = s.clock()
		}
		return v
	case Toggle:
		if v.At == 0 {
			v.At = s.clock()
		}
		return v
	}
	return a
}

func (s *Store) checkUnique(a Action) error {
	switch v := a.(type) {
	case Add:
		return s.checkTitle(v.Title, "")
	case Edit:
		if v.Title == nil || entry.Index(s.items, v.ID) < 0 {
			return nil
		}
		return s.checkTitle(*v.Title, v.ID)
	}
	return nil
}

func (s *Store) checkTitle(title, excludeID string) error {
	if strings.TrimSpace(title) == "" {
		return nil
	}
	if other, ok := entry.FindTitle(s.items, title, excludeID); ok {
		return fmt.Errorf("%w: %q (id %s)", ErrDuplicateTitle, other.Title, other.ID)
	}
	return nil
}

// CheckTitle reports ErrDuplicateTitle if title collides with an entry other
// than excludeID. Callers can use it to validate input before dispatching.
func (s *Store) CheckTitle(title, excludeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkTitle(title, excludeID)
}

// Items returns a copy of the current list.
func (s *Store) Items() []entry.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entry.Clone(s.items)
}

// Remaining counts the entries not yet completed.
func (s *Store) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Remaining(s.items)
}

// Find returns the entry with id.
func (s *Store) Find(id string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := entry.Index(s.items, id); i >= 0 {
		return s.items[i], nil
	}
	return entry.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// FindByTitle returns the entry whose normalized title matches title.
func (s *Store) FindByTitle(title string) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := entry.FindTitle(s.items, title, ""); ok {
		return e, nil
	}
	return entry.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, title)
}

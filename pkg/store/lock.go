package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned by TryLock when another process holds the lock.
var ErrLocked = errors.New("store: locked by another process")

const lockFileName = ".streamlist.lock"

// Lock is an advisory, cross-process writer lock kept next to the data.
type Lock struct {
	f *flock.Flock
}

// NewLock returns the writer lock for the store rooted at basePath.
func NewLock(basePath string) *Lock {
	return &Lock{f: flock.New(filepath.Join(basePath, lockFileName))}
}

// Path is the lock file location.
func (l *Lock) Path() string {
	return l.f.Path()
}

// TryLock acquires the lock without blocking.
func (l *Lock) TryLock() error {
	if err := os.MkdirAll(filepath.Dir(l.f.Path()), 0o755); err != nil {
		return fmt.Errorf("store: ensure lock directory: %w", err)
	}
	ok, err := l.f.TryLock()
	if err != nil {
		return fmt.Errorf("store: acquire lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	return nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	return l.f.Unlock()
}

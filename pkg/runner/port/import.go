// Package port imports and exports the watchlist as JSON or CSV files.
package port

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/logging"
	"tableflip.dev/streamlist/pkg/merge"
	"tableflip.dev/streamlist/pkg/store"
	"tableflip.dev/streamlist/pkg/transfer"
)

// ErrImportInProgress is returned when an import starts while another one
// on the same Importer has not finished.
var ErrImportInProgress = errors.New("import: another import is in progress")

// Stdin is the path that reads from In instead of a file.
const Stdin = "-"

// Importer merges files into a list store. At most one import runs at a
// time; a second one is rejected rather than queued.
type Importer struct {
	Store *list.Store
	// Lock, when set, is held for the duration of an import so that other
	// processes cannot import into the same data directory concurrently.
	Lock  *store.Lock
	Log   *zap.Logger
	Clock entry.Clock
	// In is read for the Stdin path. Defaults to os.Stdin.
	In io.Reader

	mu sync.Mutex
}

// Import reads path, decodes it in format (picked from the extension when
// empty), merges it into the store and persists the result. The store is
// left untouched when reading or decoding fails.
func (im *Importer) Import(ctx context.Context, path string, format transfer.Format) (merge.Result, error) {
	if im.Store == nil {
		return merge.Result{}, errors.New("can not import, no store")
	}
	if !im.mu.TryLock() {
		return merge.Result{}, ErrImportInProgress
	}
	defer im.mu.Unlock()

	if im.Lock != nil {
		if err := im.Lock.TryLock(); err != nil {
			return merge.Result{}, fmt.Errorf("import: %w", err)
		}
		defer func() { _ = im.Lock.Unlock() }()
	}

	log := logging.Component(im.Log, "import").With(
		zap.String("import_id", uuid.NewString()),
		zap.String("path", path),
	)

	if format == "" {
		if path == Stdin {
			return merge.Result{}, fmt.Errorf("import: %w: a format is required when reading stdin", transfer.ErrUnknownFormat)
		}
		f, err := transfer.FormatFromPath(path)
		if err != nil {
			return merge.Result{}, fmt.Errorf("import: %w", err)
		}
		format = f
	}

	data, err := im.read(ctx, path)
	if err != nil {
		log.Warn("read failed", zap.Error(err))
		return merge.Result{}, fmt.Errorf("import: read %s: %w", path, err)
	}

	records, err := transfer.Decode(format, data)
	if err != nil {
		log.Warn("decode failed", zap.String("format", string(format)), zap.Error(err))
		return merge.Result{}, fmt.Errorf("import: decode %s: %w", format, err)
	}

	clock := im.Clock
	if clock == nil {
		clock = entry.SystemClock
	}
	res := merge.Merge(im.Store.Items(), records, clock())
	if res.Added > 0 {
		if _, err := im.Store.Dispatch(list.Replace{Items: res.Items}); err != nil {
			return merge.Result{}, fmt.Errorf("import: %w", err)
		}
	}

	log.Info("import finished",
		zap.String("format", string(format)),
		zap.Int("records", len(records)),
		zap.Int("added", res.Added),
		zap.Int("skipped", res.Skipped))
	return res, nil
}

type readResult struct {
	data []byte
	err  error
}

// read loads path off the calling goroutine so ctx can abandon a slow read.
func (im *Importer) read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		var r readResult
		if path == Stdin {
			in := im.In
			if in == nil {
				in = os.Stdin
			}
			r.data, r.err = io.ReadAll(in)
		} else {
			r.data, r.err = os.ReadFile(path)
		}
		done <- r
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.data, r.err
	}
}

// Package watch reprints the watchlist whenever another process changes it.
package watch

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/logging"
	"tableflip.dev/streamlist/pkg/printers"
	"tableflip.dev/streamlist/pkg/store"
)

// ErrNotWatchable is returned when the storage backend has no change feed.
var ErrNotWatchable = errors.New("watch: storage backend does not support watching")

type Watch struct {
	View   list.View
	ShowID bool

	// Watcher is usually the KV the store was opened on.
	Watcher store.Watcher
	Store   *list.Store
	Log     *zap.Logger
	Out     io.Writer
}

// Do prints the current list, then a fresh copy after every change, until
// ctx is done.
func (w *Watch) Do(ctx context.Context) error {
	if w.Store == nil {
		return errors.New("can not watch, no store")
	}
	if w.Watcher == nil {
		return ErrNotWatchable
	}
	log := logging.Component(w.Log, "watch")

	events, err := w.Watcher.Watch(ctx, w.Store.Key())
	if err != nil {
		return err
	}

	w.print(w.Store.Items())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Debug("change detected", zap.String("key", ev.Key))
			w.print(w.Store.Reload())
		}
	}
}

func (w *Watch) print(all []entry.Entry) {
	pp := printers.PrettyPrint{ShowID: w.ShowID, Out: w.Out}
	pp.NewLine()
	pp.TitleWithCount("Watchlist", list.Remaining(all))
	pp.Entries(w.View.Apply(all)...)
}

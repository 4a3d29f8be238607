// Package toggle provides the runner logic for marking titles watched or
// unwatched.
package toggle

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

// Toggle flips the completion state of an entry.
type Toggle struct {
	ID    string
	Store *list.Store
	Out   io.Writer
}

// Do toggles the configured entry ID.
func (n *Toggle) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}

	if n.Store == nil {
		return errors.New("can not toggle, no store")
	}
	if _, err := n.Store.Find(n.ID); err != nil {
		return err
	}

	items, err := n.Store.Dispatch(list.Toggle{ID: n.ID})
	if err != nil {
		return err
	}

	pp.NewLine()
	pp.Watchlist(items)
	return nil
}

// Package remove provides the runner logic for deleting entries.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

type Remove struct {
	ID    string
	Store *list.Store
	Out   io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}

	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if _, err := n.Store.Find(n.ID); err != nil {
		return err
	}

	items, err := n.Store.Dispatch(list.Delete{ID: n.ID})
	if err != nil {
		return err
	}

	pp.NewLine()
	pp.Watchlist(items)
	return nil
}

// Package add provides the runner logic for adding titles to the watchlist.
package add

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

// Add puts a new title at the top of the list.
type Add struct {
	Title  string
	Genre  string
	ShowID bool

	Store *list.Store
	Out   io.Writer
}

// Do adds the title and prints the updated list.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if strings.TrimSpace(n.Title) == "" {
		return entry.ErrMissingTitle
	}

	items, err := n.Store.Dispatch(list.Add{Title: n.Title, Genre: n.Genre})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Watchlist(items)
	return nil
}

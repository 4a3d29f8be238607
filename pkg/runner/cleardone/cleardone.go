// Package cleardone provides the runner logic for dropping watched titles.
package cleardone

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

// Clear removes every completed entry.
type Clear struct {
	Store *list.Store
	Out   io.Writer
}

// Do clears completed entries and reports how many were removed.
func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	before := n.Store.Items()
	items, err := n.Store.Dispatch(list.ClearDone{})
	if err != nil {
		return err
	}

	removed := len(before) - len(items)
	f := color.New(color.Faint)
	switch removed {
	case 0:
		_, _ = f.Fprintln(out, "nothing to clear")
	case 1:
		_, _ = f.Fprintln(out, "cleared 1 watched title")
	default:
		_, _ = f.Fprintf(out, "cleared %d watched titles\n", removed)
	}

	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.Watchlist(items)
	return nil
}

package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

type Get struct {
	View   list.View
	ShowID bool
	JSON   bool

	Store *list.Store
	Out   io.Writer
}

type listing struct {
	Remaining int           `json:"remaining"`
	Items     []entry.Entry `json:"items"`
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	all := n.Store.Items()
	items := n.View.Apply(all)

	if n.JSON {
		return pp.JSON(listing{Remaining: list.Remaining(all), Items: items})
	}

	pp.NewLine()
	pp.TitleWithCount("Watchlist", list.Remaining(all))
	pp.Entries(items...)
	return nil
}

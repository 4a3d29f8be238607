// Package edit provides the runner logic for changing an entry's title or
// genre.
package edit

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

// ErrNothingToEdit is returned when neither a title nor a genre is given.
var ErrNothingToEdit = errors.New("edit: nothing to change, set a title or a genre")

// Edit updates an entry. A nil field is left unchanged.
type Edit struct {
	ID    string
	Title *string
	Genre *string

	Store *list.Store
	Out   io.Writer
}

// Do applies the edit and prints the updated entry.
func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if n.Title == nil && n.Genre == nil {
		return ErrNothingToEdit
	}
	if n.Title != nil && strings.TrimSpace(*n.Title) == "" {
		return entry.ErrMissingTitle
	}
	if _, err := n.Store.Find(n.ID); err != nil {
		return err
	}

	if _, err := n.Store.Dispatch(list.Edit{ID: n.ID, Title: n.Title, Genre: n.Genre}); err != nil {
		return err
	}
	e, err := n.Store.Find(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Detail(e)
	return nil
}

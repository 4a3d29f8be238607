package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
)

const (
	markActive    = "•"
	markCompleted = "✓"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// spacing is the id column width for entries.
func spacing(entries []entry.Entry) int {
	w := len("id")
	for _, e := range entries {
		if len(e.ID) > w {
			w = len(e.ID)
		}
	}
	return w + 2
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// TitleWithCount prints title followed by the number of active entries.
func (pp *PrettyPrint) TitleWithCount(title string, remaining int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", remaining)

	switch remaining {
	case 1:
		_, _ = c.Fprintln(pp.out(), " title to watch")
	default:
		_, _ = c.Fprintln(pp.out(), " titles to watch")
	}
}

// Entries prints one line per entry, newest first as given.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	g := color.New(color.FgCyan, color.Faint)
	width := spacing(entries)

	for _, e := range entries {
		if pp.ShowID {
			_, _ = y.Fprint(pp.out(), e.ID)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", width-len(e.ID)))
		}
		if e.Completed {
			_, _ = t.Fprintf(pp.out(), "%s ", markCompleted)
			_, _ = done.Fprint(pp.out(), e.Title)
		} else {
			_, _ = t.Fprintf(pp.out(), "%s %s", markActive, e.Title)
		}
		if e.Genre != "" {
			_, _ = g.Fprintf(pp.out(), "  [%s]", e.Genre)
		}
		_, _ = t.Fprintln(pp.out(), "")
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Watchlist prints the list heading with the remaining count, then items.
func (pp *PrettyPrint) Watchlist(items []entry.Entry) {
	pp.TitleWithCount("Watchlist", list.Remaining(items))
	pp.Entries(items...)
}

// Detail prints every field of e as a two column table.
func (pp *PrettyPrint) Detail(e entry.Entry) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), e.ID)
	tbl.AddRow(bold.Sprint("Title"), e.Title)
	tbl.AddRow(bold.Sprint("Genre"), e.Genre)
	tbl.AddRow(bold.Sprint("Created"), e.CreatedLabel())
	tbl.AddRow(bold.Sprint("Completed"), e.CompletedLabel())
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Table prints rows under a bold header. The first column is right aligned.
func (pp *PrettyPrint) Table(header []string, rows ...[]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	h := make([]interface{}, 0, len(header))
	for _, c := range header {
		h = append(h, bold.Sprint(c))
	}
	tbl.AddRow(h...)
	for _, r := range rows {
		cells := make([]interface{}, 0, len(r))
		for _, c := range r {
			cells = append(cells, c)
		}
		tbl.AddRow(cells...)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// JSON prints v indented.
func (pp *PrettyPrint) JSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

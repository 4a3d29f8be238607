// Package genres provides CLI helpers to display the genres in use.
package genres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/printers"
)

// Genres prints a table of genres with entry counts, followed by the
// suggested genres not yet used.
type Genres struct {
	Store *list.Store
	Out   io.Writer
}

// Do renders the genre table.
func (g *Genres) Do(ctx context.Context) error {
	if g.Store == nil {
		return errors.New("can not list genres, no store")
	}
	out := g.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	items := g.Store.Items()
	used := list.Genres(items)

	_, _ = fmt.Fprintln(out, "")
	if len(used) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(out, " no genres\n\n")
	} else {
		rows := make([][]string, 0, len(used))
		for _, name := range used {
			total, remaining := count(items, name)
			rows = append(rows, []string{name, strconv.Itoa(total), strconv.Itoa(remaining)})
		}
		pp.Table([]string{"Genre", "Titles", "To watch"}, rows...)
		_, _ = fmt.Fprintln(out, "")
	}

	if rest := Suggestions(used); len(rest) > 0 {
		_, _ = color.New(color.Faint).Fprintf(out, "Suggestions: %s\n", strings.Join(rest, ", "))
	}
	return nil
}

func count(items []entry.Entry, genre string) (total, remaining int) {
	key := entry.NormalizeTitle(genre)
	for _, e := range items {
		if entry.NormalizeTitle(e.Genre) != key {
			continue
		}
		total++
		if !e.Completed {
			remaining++
		}
	}
	return total, remaining
}

// Suggestions returns the common genres not present in used.
func Suggestions(used []string) []string {
	seen := make(map[string]bool, len(used))
	for _, u := range used {
		seen[entry.NormalizeTitle(u)] = true
	}
	out := make([]string, 0, len(entry.CommonGenres))
	for _, c := range entry.CommonGenres {
		if !seen[entry.NormalizeTitle(c)] {
			out = append(out, c)
		}
	}
	return out
}

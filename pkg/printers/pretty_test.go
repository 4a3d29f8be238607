package printers

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/streamlist/pkg/entry"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func ms(v int64) *int64 { return &v }

func TestEntries(t *testing.T) {
	var out bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &out}
	pp.Entries(
		entry.Entry{ID: "10", Title: "Heat", Genre: "Crime", Completed: true, CompletedAt: ms(1)},
		entry.Entry{ID: "2", Title: "Dune"},
	)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "10  ✓ Heat  [Crime]", lines[0])
	assert.Equal(t, "2   • Dune", lines[1])
}

func TestEntriesEmpty(t *testing.T) {
	var out bytes.Buffer
	(&PrettyPrint{Out: &out}).Entries()
	assert.Equal(t, " none\n\n", out.String())
}

func TestWatchlistCount(t *testing.T) {
	var out bytes.Buffer
	pp := PrettyPrint{Out: &out}
	pp.Watchlist([]entry.Entry{{ID: "1", Title: "Dune"}})
	assert.True(t, strings.HasPrefix(out.String(), "Watchlist - 1 title to watch\n"))

	out.Reset()
	pp.Watchlist(nil)
	assert.True(t, strings.HasPrefix(out.String(), "Watchlist - 0 titles to watch\n"))
}

func TestDetailPlaceholders(t *testing.T) {
	var out bytes.Buffer
	(&PrettyPrint{Out: &out}).Detail(entry.Entry{ID: "1", Title: "Dune"})

	assert.Contains(t, out.String(), entry.PlaceholderUnknown)
	assert.Contains(t, out.String(), entry.PlaceholderNotCompleted)
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, (&PrettyPrint{Out: &out}).JSON(map[string]int{"remaining": 2}))
	assert.Equal(t, "{\n  \"remaining\": 2\n}\n", out.String())
}

package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/streamlist/pkg/entry"
)

func ms(v int64) *int64 { return &v }

func TestReduceAddToEmpty(t *testing.T) {
	got := Reduce(nil, Add{Title: "Dune", Genre: "Sci-Fi", At: 1000})
	assert.Equal(t, []entry.Entry{{
		ID: "1", Title: "Dune", Genre: "Sci-Fi", Completed: false, CreatedAt: 1000, CompletedAt: nil,
	}}, got)
}

func TestReduceAddUsesMaxIDPlusOne(t *testing.T) {
	state := []entry.Entry{{ID: "5", Title: "a"}, {ID: "1", Title: "b"}, {ID: "3", Title: "c"}}
	got := Reduce(state, Add{Title: "d", At: 1})
	require.Len(t, got, 4)
	assert.Equal(t, "6", got[0].ID)
	assert.Equal(t, "d", got[0].Title, "new entries are prepended")
	assert.Len(t, state, 3, "input must not change")
}

func TestReduceAddIgnoresBlankTitle(t *testing.T) {
	state := []entry.Entry{{ID: "1", Title: "a"}}
	got := Reduce(state, Add{Title: "   ", At: 1})
	assert.Equal(t, state, got)
}

func TestReduceToggleRoundTrip(t *testing.T) {
	state := Reduce(nil, Add{Title: "Dune", At: 1000})

	done := Reduce(state, Toggle{ID: "1", At: 2000})
	require.True(t, done[0].Completed)
	require.NotNil(t, done[0].CompletedAt)
	assert.GreaterOrEqual(t, *done[0].CompletedAt, done[0].CreatedAt)

	back := Reduce(done, Toggle{ID: "1", At: 3000})
	assert.False(t, back[0].Completed)
	assert.Nil(t, back[0].CompletedAt)
	assert.Equal(t, state, back)
}

func TestReduceToggleUnknownID(t *testing.T) {
	state := []entry.Entry{{ID: "1", Title: "a"}}
	assert.Equal(t, state, Reduce(state, Toggle{ID: "9", At: 1}))
}

func TestReduceEdit(t *testing.T) {
	state := []entry.Entry{{ID: "1", Title: "Dune", Genre: "Sci-Fi", CreatedAt: 5}}

	got := Reduce(state, Edit{ID: "1", Title: String("  Dune: Part One ")})
	assert.Equal(t, "Dune: Part One", got[0].Title)
	assert.Equal(t, "Sci-Fi", got[0].Genre)

	got = Reduce(state, Edit{ID: "1", Title: String("   "), Genre: String("")})
	assert.Equal(t, "Dune", got[0].Title, "blank titles are ignored")
	assert.Equal(t, "", got[0].Genre, "empty genre clears it")

	got = Reduce(state, Edit{ID: "1"})
	assert.Equal(t, state, got)

	assert.Equal(t, state, Reduce(state, Edit{ID: "2", Title: String("x")}))
	assert.Equal(t, "Sci-Fi", state[0].Genre, "input must not change")
}

func TestReduceDeleteAndClearDone(t *testing.T) {
	state := []entry.Entry{
		{ID: "3", Title: "c", Completed: true, CompletedAt: ms(9)},
		{ID: "2", Title: "b"},
		{ID: "1", Title: "a", Completed: true, CompletedAt: ms(9)},
	}

	got := Reduce(state, Delete{ID: "2"})
	assert.Equal(t, []string{"3", "1"}, ids(got))
	assert.Equal(t, state, Reduce(state, Delete{ID: "7"}))

	got = Reduce(state, ClearDone{})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestReduceDeletedIDsAreNotReusedWhileLargerExists(t *testing.T) {
	state := Reduce(nil, Add{Title: "a", At: 1})
	state = Reduce(state, Add{Title: "b", At: 1})
	state = Reduce(state, Add{Title: "c", At: 1})
	state = Reduce(state, Delete{ID: "2"})
	state = Reduce(state, Add{Title: "d", At: 1})
	assert.Equal(t, "4", state[0].ID)
}

func TestReduceReplace(t *testing.T) {
	state := []entry.Entry{{ID: "1", Title: "a"}}

	items := []entry.Entry{{ID: "1", Title: "x"}, {ID: "2", Title: "y"}}
	got := Reduce(state, Replace{Items: items})
	assert.Equal(t, items, got)
	got[0].Title = "mutated"
	assert.Equal(t, "x", items[0].Title, "replace copies its items")

	assert.Equal(t, state, Reduce(state, Replace{Items: nil}))
	assert.Equal(t, state, Reduce(state, Replace{Items: []entry.Entry{{ID: "1", Title: "x"}, {ID: "2", Title: " X"}}}))
	assert.Equal(t, []entry.Entry{}, Reduce(state, Replace{Items: []entry.Entry{}}))
}

type bogus struct{}

func (bogus) Kind() Kind { return "BOGUS" }

func TestReduceUnknownAction(t *testing.T) {
	state := []entry.Entry{{ID: "1", Title: "a"}}
	assert.Equal(t, state, Reduce(state, bogus{}))
	assert.Equal(t, state, Reduce(state, nil))
}

func ids(list []entry.Entry) []string {
	out := make([]string, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

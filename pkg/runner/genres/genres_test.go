package genres

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/store"
)

func TestGenres(t *testing.T) {
	s := list.Open(store.NewAdapter(store.NewMemoryKV()))
	for _, a := range []list.Add{
		{Title: "Dune", Genre: "sci-fi"},
		{Title: "Arrival", Genre: "Sci-Fi"},
		{Title: "Alien", Genre: "Horror"},
		{Title: "Untitled"},
	} {
		_, err := s.Dispatch(a)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	require.NoError(t, (&Genres{Store: s, Out: &out}).Do(context.Background()))

	got := out.String()
	assert.Contains(t, got, "Horror")
	assert.Contains(t, got, "Sci-Fi")
	assert.NotContains(t, got, "sci-fi")
	assert.Contains(t, got, "Suggestions: Action, Adventure")
}

func TestGenresEmpty(t *testing.T) {
	var out bytes.Buffer
	s := list.Open(store.NewAdapter(store.NewMemoryKV()))
	require.NoError(t, (&Genres{Store: s, Out: &out}).Do(context.Background()))
	assert.Contains(t, out.String(), "no genres")
}

func TestSuggestions(t *testing.T) {
	got := Suggestions([]string{"action", "Comedy", "Mumblecore"})
	assert.NotContains(t, got, "Action")
	assert.NotContains(t, got, "Comedy")
	assert.Contains(t, got, "Drama")
}

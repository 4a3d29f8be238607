package cleardone

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/streamlist/pkg/list"
	"tableflip.dev/streamlist/pkg/store"
)

func TestClear(t *testing.T) {
	s := list.Open(store.NewAdapter(store.NewMemoryKV()))
	for _, title := range []string{"Dune", "Alien", "Heat"} {
		_, err := s.Dispatch(list.Add{Title: title})
		require.NoError(t, err)
	}
	for _, title := range []string{"alien", "heat"} {
		e, err := s.FindByTitle(title)
		require.NoError(t, err)
		_, err = s.Dispatch(list.Toggle{ID: e.ID})
		require.NoError(t, err)
	}

	var out bytes.Buffer
	require.NoError(t, (&Clear{Store: s, Out: &out}).Do(context.Background()))
	assert.Contains(t, out.String(), "cleared 2 watched titles")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Dune", s.Items()[0].Title)

	out.Reset()
	require.NoError(t, (&Clear{Store: s, Out: &out}).Do(context.Background()))
	assert.Contains(t, out.String(), "nothing to clear")
}

package list

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/store"
)

type fixedClock struct{ now int64 }

func (c *fixedClock) Now() int64 {
	c.now++
	return c.now
}

type flakyKV struct {
	*store.MemoryKV
	fail bool
}

func (f *flakyKV) Write(key string, val []byte) error {
	if f.fail {
		return errors.New("quota exceeded")
	}
	return f.MemoryKV.Write(key, val)
}

func newTestStore(t *testing.T, kv store.KV) *Store {
	t.Helper()
	clock := &fixedClock{now: 1000}
	return Open(store.NewAdapter(kv), WithClock(clock.Now))
}

func TestStoreDispatchPersists(t *testing.T) {
	kv := store.NewMemoryKV()
	s := newTestStore(t, kv)

	items, err := s.Dispatch(Add{Title: "Dune", Genre: "Sci-Fi"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1001), items[0].CreatedAt)

	env := store.NewAdapter(kv).Load(store.DefaultKey, store.Empty(), store.IdentityMigration)
	assert.Equal(t, store.CurrentVersion, env.Version)
	assert.Equal(t, items, env.Items)

	reopened := newTestStore(t, kv)
	assert.Equal(t, items, reopened.Items())
}

func TestStoreRejectsDuplicateTitles(t *testing.T) {
	kv := store.NewMemoryKV()
	s := newTestStore(t, kv)

	_, err := s.Dispatch(Add{Title: "Dune"})
	require.NoError(t, err)
	_, err = s.Dispatch(Add{Title: "Alien"})
	require.NoError(t, err)

	before, _ := kv.Read(store.DefaultKey)

	items, err := s.Dispatch(Add{Title: "  DUNE  "})
	require.ErrorIs(t, err, ErrDuplicateTitle)
	assert.Len(t, items, 2)

	alien, err := s.FindByTitle("alien")
	require.NoError(t, err)
	_, err = s.Dispatch(Edit{ID: alien.ID, Title: String("dune")})
	require.ErrorIs(t, err, ErrDuplicateTitle)

	after, _ := kv.Read(store.DefaultKey)
	assert.Equal(t, before, after, "rejected actions must not be persisted")

	// Renaming an entry to a different spelling of its own title is fine.
	_, err = s.Dispatch(Edit{ID: alien.ID, Title: String("ALIEN")})
	require.NoError(t, err)
	require.ErrorIs(t, s.CheckTitle("dune", ""), ErrDuplicateTitle)
	require.NoError(t, s.CheckTitle("alien", alien.ID))
}

func TestStoreKeepsStateWhenWriteFails(t *testing.T) {
	kv := &flakyKV{MemoryKV: store.NewMemoryKV()}
	core, logs := observer.New(zap.WarnLevel)
	s := Open(store.NewAdapter(kv), WithLogger(zap.New(core)))

	kv.fail = true
	items, err := s.Dispatch(Add{Title: "Dune"})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, 1, logs.FilterMessage("persist failed, keeping in-memory state").Len())

	_, err = kv.Read(store.DefaultKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStoreToggleScenario(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	_, err := s.Dispatch(Add{Title: "Dune"})
	require.NoError(t, err)

	items, err := s.Dispatch(Toggle{ID: "1"})
	require.NoError(t, err)
	require.True(t, items[0].Completed)
	require.NotNil(t, items[0].CompletedAt)
	assert.GreaterOrEqual(t, *items[0].CompletedAt, items[0].CreatedAt)
	assert.Equal(t, 0, s.Remaining())

	items, err = s.Dispatch(Toggle{ID: "1"})
	require.NoError(t, err)
	assert.False(t, items[0].Completed)
	assert.Nil(t, items[0].CompletedAt)
	assert.Equal(t, 1, s.Remaining())
}

func TestStoreFind(t *testing.T) {
	s := newTestStore(t, store.NewMemoryKV())
	_, err := s.Dispatch(Add{Title: "Dune"})
	require.NoError(t, err)

	e, err := s.Find("1")
	require.NoError(t, err)
	assert.Equal(t, "Dune", e.Title)

	_, err = s.Find("2")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindByTitle("alien")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRepairsInconsistentBlob(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Write(store.DefaultKey, []byte(`{"version":1,"items":[
		{"id":"1","title":"Dune","genre":"","completed":false,"createdAt":1,"completedAt":null},
		{"id":"2","title":"dune","genre":"","completed":false,"createdAt":2,"completedAt":null}
	]}`)))

	s := newTestStore(t, kv)
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)
}

func TestStoreReloadPicksUpExternalWrites(t *testing.T) {
	kv := store.NewMemoryKV()
	s := newTestStore(t, kv)
	other := newTestStore(t, kv)

	_, err := other.Dispatch(Add{Title: "Dune"})
	require.NoError(t, err)
	assert.Empty(t, s.Items())
	assert.Len(t, s.Reload(), 1)
}

// Random action sequences must keep titles unique and hand out ids above
// every id present at the time.
func TestStoreInvariantsUnderRandomActions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	titles := []string{"Dune", "dune ", "Alien", "ALIEN", "Heat", " heat", "Up", "The  Thing", "the thing"}

	s := newTestStore(t, store.NewMemoryKV())
	for i := 0; i < 500; i++ {
		before := s.Items()
		var a Action
		switch rng.Intn(6) {
		case 0, 1:
			a = Add{Title: titles[rng.Intn(len(titles))]}
		case 2:
			a = Toggle{ID: fmt.Sprint(rng.Intn(12))}
		case 3:
			a = Edit{ID: fmt.Sprint(rng.Intn(12)), Title: String(titles[rng.Intn(len(titles))])}
		case 4:
			a = Delete{ID: fmt.Sprint(rng.Intn(12))}
		default:
			a = ClearDone{}
		}

		after, err := s.Dispatch(a)
		if err != nil {
			require.ErrorIs(t, err, ErrDuplicateTitle)
			assert.Equal(t, before, after)
			continue
		}
		require.NoError(t, entry.ValidateList(after), "step %d: %#v", i, a)

		if _, ok := a.(Add); ok && len(after) == len(before)+1 {
			id, ok := entry.NumericID(after[0].ID)
			require.True(t, ok)
			assert.Greater(t, id, entry.MaxID(before))
		}
	}
}

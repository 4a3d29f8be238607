package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/streamlist/pkg/entry"
)

const now = int64(1_700_000_000_000)

func ms(v int64) *int64 { return &v }

func existingList() []entry.Entry {
	return []entry.Entry{
		{ID: "3", Title: "Alien", Genre: "Horror", CreatedAt: 30, Completed: true, CompletedAt: ms(40)},
		{ID: "1", Title: "Dune", Genre: "Sci-Fi", CreatedAt: 10},
	}
}

func TestMergeIgnoresIncomingIDsAndExistingTitles(t *testing.T) {
	existing := []entry.Entry{{ID: "1", Title: "Dune"}}
	res := Merge(existing, []entry.Record{{"id": "999", "title": "dune "}}, now)

	assert.Equal(t, existing, res.Items)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 1, res.Skipped)
}

func TestMergeWithItselfIsIdentity(t *testing.T) {
	existing := existingList()
	assert.Equal(t, existing, Lists(existing, existing, now))
}

func TestMergeIsAdditive(t *testing.T) {
	existing := existingList()
	snapshot := entry.Clone(existing)

	incoming := []entry.Record{
		{"id": "1", "title": "Heat", "genre": "Crime", "completed": true, "createdAt": 5.0, "completedAt": 6.0},
		{"id": "1", "title": "ALIEN", "genre": "Comedy"},
		{"title": "  heat  "},
		{"title": "Up"},
		{"title": "   "},
		{"genre": "Drama"},
	}
	res := Merge(existing, incoming, now)

	assert.Equal(t, snapshot, existing, "existing must not be modified")
	require.Len(t, res.Items, len(existing)+2)
	assert.Equal(t, existing, res.Items[:len(existing)])
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 4, res.Skipped)

	heat := res.Items[2]
	assert.Equal(t, entry.Entry{ID: "4", Title: "Heat", Genre: "Crime", Completed: true, CreatedAt: 5, CompletedAt: ms(6)}, heat)

	up := res.Items[3]
	assert.Equal(t, "5", up.ID)
	assert.Equal(t, now, up.CreatedAt)
	assert.Nil(t, up.CompletedAt)
	assert.Equal(t, "Horror", res.Items[0].Genre, "existing data wins")

	require.NoError(t, entry.ValidateList(res.Items))
}

func TestMergeIntoEmptyNumbersFromOne(t *testing.T) {
	res := Merge(nil, []entry.Record{{"id": "77", "title": "a"}, {"id": "78", "title": "b"}}, now)
	assert.Equal(t, []string{"1", "2"}, []string{res.Items[0].ID, res.Items[1].ID})
}

func TestMergeSeedSkipsNonNumericIDs(t *testing.T) {
	existing := []entry.Entry{{ID: "abc", Title: "a"}, {ID: "2", Title: "b"}}
	res := Merge(existing, []entry.Record{{"title": "c"}}, now)
	assert.Equal(t, "3", res.Items[2].ID)
}

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		in   entry.Record
		want entry.Entry
	}{
		"numbers": {
			in:   entry.Record{"title": " Dune ", "genre": "Sci-Fi", "completed": true, "createdAt": json.Number("10"), "completedAt": json.Number("20")},
			want: entry.Entry{Title: "Dune", Genre: "Sci-Fi", Completed: true, CreatedAt: 10, CompletedAt: ms(20)},
		},
		"iso strings": {
			in:   entry.Record{"title": "Dune", "completed": "true", "createdAt": "2024-01-02T03:04:05.000Z", "completedAt": "2024-01-03T00:00:00.000Z"},
			want: entry.Entry{Title: "Dune", Completed: true, CreatedAt: 1704164645000, CompletedAt: ms(1704240000000)},
		},
		"placeholders": {
			in:   entry.Record{"title": "Dune", "createdAt": "Unknown", "completedAt": "Not completed yet"},
			want: entry.Entry{Title: "Dune", CreatedAt: now},
		},
		"wrong types": {
			in:   entry.Record{"title": 1984.0, "genre": 3.0, "completed": "yes", "completedAt": nil},
			want: entry.Entry{Title: "1984", CreatedAt: now},
		},
		"empty strings": {
			in:   entry.Record{"title": "Dune", "createdAt": "", "completedAt": ""},
			want: entry.Entry{Title: "Dune", CreatedAt: now},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, now))
		})
	}
}

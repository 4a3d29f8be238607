package list

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

// Filter selects entries by completion state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// AllFilters returns the supported filters.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter converts raw to a Filter. Empty means all; "done" is accepted
// for completed.
func ParseFilter(raw string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case "":
		return FilterAll, nil
	case "done":
		return FilterCompleted, nil
	}
	for _, candidate := range AllFilters() {
		if candidate == f {
			return candidate, nil
		}
	}
	return FilterAll, fmt.Errorf("list: unknown filter %q", raw)
}

// SortKey orders a view.
type SortKey string

const (
	SortAdded     SortKey = "added"
	SortTitle     SortKey = "title"
	SortCreated   SortKey = "created"
	SortCompleted SortKey = "completed"
	SortGenre     SortKey = "genre"
)

// AllSortKeys returns the supported sort keys.
func AllSortKeys() []SortKey {
	return []SortKey{SortAdded, SortTitle, SortCreated, SortCompleted, SortGenre}
}

// ParseSortKey converts raw to a SortKey. Empty means added.
func ParseSortKey(raw string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	if k == "" {
		return SortAdded, nil
	}
	for _, candidate := range AllSortKeys() {
		if candidate == k {
			return candidate, nil
		}
	}
	return SortAdded, fmt.Errorf("list: unknown sort %q", raw)
}

// View is a read-only projection of the list.
type View struct {
	Filter  Filter
	Genre   string
	Sort    SortKey
	Reverse bool
}

// Apply returns the entries selected by v in v's order. items is not
// modified.
func (v View) Apply(items []entry.Entry) []entry.Entry {
	genre := entry.NormalizeTitle(v.Genre)
	out := make([]entry.Entry, 0, len(items))
	for _, e := range items {
		switch v.Filter {
		case FilterActive:
			if e.Completed {
				continue
			}
		case FilterCompleted:
			if !e.Completed {
				continue
			}
		}
		if genre != "" && entry.NormalizeTitle(e.Genre) != genre {
			continue
		}
		out = append(out, e)
	}

	if less := lessFor(v.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}
	if v.Reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func lessFor(k SortKey) func(a, b entry.Entry) bool {
	switch k {
	case SortTitle:
		return func(a, b entry.Entry) bool {
			return a.NormalizedTitle() < b.NormalizedTitle()
		}
	case SortCreated:
		return func(a, b entry.Entry) bool {
			return a.CreatedAt < b.CreatedAt
		}
	case SortCompleted:
		// Completed entries first, oldest completion first.
		return func(a, b entry.Entry) bool {
			switch {
			case a.CompletedAt == nil:
				return false
			case b.CompletedAt == nil:
				return true
			default:
				return *a.CompletedAt < *b.CompletedAt
			}
		}
	case SortGenre:
		return func(a, b entry.Entry) bool {
			ga, gb := entry.NormalizeTitle(a.Genre), entry.NormalizeTitle(b.Genre)
			if ga != gb {
				// Entries without a genre go last.
				if ga == "" || gb == "" {
					return gb == ""
				}
				return ga < gb
			}
			return a.NormalizedTitle() < b.NormalizedTitle()
		}
	default:
		return nil
	}
}

// Remaining counts active entries.
func Remaining(items []entry.Entry) int {
	n := 0
	for _, e := range items {
		if !e.Completed {
			n++
		}
	}
	return n
}

// Genres returns the distinct genres in use, first spelling wins, sorted
// case-insensitively.
func Genres(items []entry.Entry) []string {
	seen := make(map[string]string)
	for _, e := range items {
		key := entry.NormalizeTitle(e.Genre)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; !ok {
			seen[key] = strings.TrimSpace(e.Genre)
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

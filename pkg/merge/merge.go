// Package merge reconciles an imported list with the current one.
//
// The merge is additive and title based: an incoming record whose normalized
// title is already present, either in the existing list or earlier in the
// same import, is dropped. Existing entries are never changed and incoming
// ids are never used; accepted records get fresh ids above the current
// maximum, in input order.
package merge

import (
	"strconv"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

// Result contains the merged list and counts for reporting.
type Result struct {
	Items   []entry.Entry
	Added   int
	Skipped int
}

// Normalize coerces an imported record to an entry. The id is left empty.
//
//   - title: string form, trimmed.
//   - genre: the string value, or empty.
//   - completed: boolean, "true" in any case, or a non-zero number.
//   - createdAt: numeric as-is, else a parseable date string, else now.
//   - completedAt: numeric as-is, else a parseable date string that is not a
//     display placeholder, else null.
func Normalize(r entry.Record, now int64) entry.Entry {
	e := entry.Entry{
		Title:     strings.TrimSpace(r.String("title")),
		Completed: r.Bool("completed"),
	}
	if g, ok := r.StringOnly("genre"); ok {
		e.Genre = strings.TrimSpace(g)
	}

	if n, ok := r.Number("createdAt"); ok {
		e.CreatedAt = n
	} else if ms, ok := entry.ParseDate(r.String("createdAt")); ok {
		e.CreatedAt = ms
	} else {
		e.CreatedAt = now
	}

	if n, ok := r.Number("completedAt"); ok {
		e.CompletedAt = &n
	} else if s := r.String("completedAt"); r.Has("completedAt") && !entry.IsPlaceholder(s) {
		if ms, ok := entry.ParseDate(s); ok {
			e.CompletedAt = &ms
		}
	}
	return e
}

// Merge appends the records of incoming whose titles are new to existing.
// existing is not modified and keeps its order at the head of the result.
// Records with an empty title are skipped.
func Merge(existing []entry.Entry, incoming []entry.Record, now int64) Result {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, e := range existing {
		seen[e.NormalizedTitle()] = struct{}{}
	}
	next := entry.MaxID(existing)

	res := Result{Items: make([]entry.Entry, 0, len(existing)+len(incoming))}
	res.Items = append(res.Items, existing...)

	for _, r := range incoming {
		e := Normalize(r, now)
		key := e.NormalizedTitle()
		if key == "" {
			res.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		next++
		e.ID = strconv.FormatInt(next, 10)
		seen[key] = struct{}{}
		res.Items = append(res.Items, e)
		res.Added++
	}
	return res
}

// Lists merges two typed lists. Merging a list with itself returns an equal
// list.
func Lists(existing, incoming []entry.Entry, now int64) []entry.Entry {
	return Merge(existing, entry.Records(incoming), now).Items
}

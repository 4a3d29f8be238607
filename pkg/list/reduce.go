package list

import (
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

// Reduce returns the state that follows applying a to state. It never
// modifies state; when nothing changes, state itself is returned.
//
// Reduce does not check title uniqueness for Add and Edit. Store.Dispatch
// does that before calling it.
func Reduce(state []entry.Entry, a Action) []entry.Entry {
	next, _ := reduce(state, a)
	return next
}

func reduce(state []entry.Entry, a Action) ([]entry.Entry, bool) {
	switch a := a.(type) {
	case Add:
		title := strings.TrimSpace(a.Title)
		if title == "" {
			return state, false
		}
		e := entry.New(entry.NextID(state), title, a.Genre, a.At)
		next := make([]entry.Entry, 0, len(state)+1)
		next = append(next, e)
		next = append(next, state...)
		return next, true

	case Toggle:
		i := entry.Index(state, a.ID)
		if i < 0 {
			return state, false
		}
		next := entry.Clone(state)
		next[i] = next[i].Toggle(a.At)
		return next, true

	case Edit:
		i := entry.Index(state, a.ID)
		if i < 0 {
			return state, false
		}
		next := entry.Clone(state)
		if a.Title != nil {
			if t := strings.TrimSpace(*a.Title); t != "" {
				next[i].Title = t
			}
		}
		if a.Genre != nil {
			next[i].Genre = strings.TrimSpace(*a.Genre)
		}
		return next, true

	case Delete:
		i := entry.Index(state, a.ID)
		if i < 0 {
			return state, false
		}
		next := make([]entry.Entry, 0, len(state)-1)
		next = append(next, state[:i]...)
		next = append(next, state[i+1:]...)
		return next, true

	case ClearDone:
		next := make([]entry.Entry, 0, len(state))
		for _, e := range state {
			if !e.Completed {
				next = append(next, e)
			}
		}
		if len(next) == len(state) {
			return state, false
		}
		return next, true

	case Replace:
		if a.Items == nil || entry.ValidateList(a.Items) != nil {
			return state, false
		}
		return entry.Clone(a.Items), true

	default:
		return state, false
	}
}

// Package list holds the in-memory watchlist and the reducer that is the only
// way to change it.
package list

import "tableflip.dev/streamlist/pkg/entry"

// Kind names an action.
type Kind string

const (
	KindAdd       Kind = "ADD"
	KindToggle    Kind = "TOGGLE"
	KindEdit      Kind = "EDIT"
	KindDelete    Kind = "DELETE"
	KindClearDone Kind = "CLEAR_DONE"
	KindReplace   Kind = "REPLACE"
)

// Action is a user intent applied by Reduce.
type Action interface {
	Kind() Kind
}

// Add prepends a new active entry. At is the creation time in ms; Dispatch
// fills it from the store clock when zero.
type Add struct {
	Title string
	Genre string
	At    int64
}

// Toggle flips the completion state of the entry with ID. At stamps
// completedAt; Dispatch fills it when zero.
type Toggle struct {
	ID string
	At int64
}

// Edit changes the title and/or genre of the entry with ID. A nil field is
// left alone; an empty Genre clears the genre, an empty Title is ignored.
type Edit struct {
	ID    string
	Title *string
	Genre *string
}

// Delete removes the entry with ID.
type Delete struct {
	ID string
}

// ClearDone removes every completed entry.
type ClearDone struct{}

// Replace swaps the whole list, as done after an import merge. A nil Items
// or a list that breaks the list invariants leaves the state unchanged.
type Replace struct {
	Items []entry.Entry
}

func (Add) Kind() Kind       { return KindAdd }
func (Toggle) Kind() Kind    { return KindToggle }
func (Edit) Kind() Kind      { return KindEdit }
func (Delete) Kind() Kind    { return KindDelete }
func (ClearDone) Kind() Kind { return KindClearDone }
func (Replace) Kind() Kind   { return KindReplace }

// String returns a pointer to s, for Edit fields.
func String(s string) *string {
	return &s
}

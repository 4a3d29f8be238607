// Package entry defines the watchlist record and the helpers used to compare,
// validate and number entries.
package entry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Entry is one watchlist item.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Completed   bool   `json:"completed"`
	CreatedAt   int64  `json:"createdAt"`
	CompletedAt *int64 `json:"completedAt"`
}

// New returns an active entry created at the given time. Title and genre are
// trimmed; the id is left to the caller.
func New(id, title, genre string, at int64) Entry {
	return Entry{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Genre:     strings.TrimSpace(genre),
		CreatedAt: at,
	}
}

// Toggle flips the completion state. completedAt is stamped with at when the
// entry becomes completed, never earlier than CreatedAt, and cleared when it
// becomes active again.
func (e Entry) Toggle(at int64) Entry {
	if e.Completed {
		e.Completed = false
		e.CompletedAt = nil
		return e
	}
	if at < e.CreatedAt {
		at = e.CreatedAt
	}
	e.Completed = true
	e.CompletedAt = &at
	return e
}

// NormalizedTitle is the comparison key for the title.
func (e Entry) NormalizedTitle() string {
	return NormalizeTitle(e.Title)
}

func (e Entry) String() string {
	mark := "[ ]"
	if e.Completed {
		mark = "[x]"
	}
	if e.Genre == "" {
		return fmt.Sprintf("%s %s", mark, e.Title)
	}
	return fmt.Sprintf("%s %s (%s)", mark, e.Title, e.Genre)
}

var folder = cases.Fold()

// NormalizeTitle collapses inner whitespace, trims, and case-folds s. The
// result is only used for equality checks.
func NormalizeTitle(s string) string {
	return folder.String(strings.Join(strings.Fields(s), " "))
}

// NumericID parses id as a non-negative decimal integer.
func NumericID(id string) (int64, bool) {
	if id == "" {
		return 0, false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxID returns the largest numeric id in list, or 0 when there is none.
// Ids that are not plain decimal numbers are ignored.
func MaxID(list []Entry) int64 {
	var highest int64
	for _, e := range list {
		if n, ok := NumericID(e.ID); ok && n > highest {
			highest = n
		}
	}
	return highest
}

// NextID returns the id the next added entry gets.
func NextID(list []Entry) string {
	return strconv.FormatInt(MaxID(list)+1, 10)
}

// Index returns the position of the entry with id, or -1.
func Index(list []Entry, id string) int {
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// FindTitle returns the first entry whose normalized title equals title's,
// skipping the entry with excludeID.
func FindTitle(list []Entry, title, excludeID string) (Entry, bool) {
	key := NormalizeTitle(title)
	if key == "" {
		return Entry{}, false
	}
	for _, e := range list {
		if e.ID == excludeID && excludeID != "" {
			continue
		}
		if e.NormalizedTitle() == key {
			return e, true
		}
	}
	return Entry{}, false
}

var (
	ErrMissingID     = errors.New("entry: missing id")
	ErrMissingTitle  = errors.New("entry: missing title")
	ErrDuplicateID   = errors.New("entry: duplicate id")
	ErrDuplicateName = errors.New("entry: duplicate title")
)

// ValidateList checks the invariants a whole list must hold: every entry has
// an id and a title, ids are unique and normalized titles are unique.
func ValidateList(list []Entry) error {
	ids := make(map[string]struct{}, len(list))
	titles := make(map[string]struct{}, len(list))
	for _, e := range list {
		if e.ID == "" {
			return ErrMissingID
		}
		key := e.NormalizedTitle()
		if key == "" {
			return fmt.Errorf("%w: id %s", ErrMissingTitle, e.ID)
		}
		if _, ok := ids[e.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if _, ok := titles[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Title)
		}
		ids[e.ID] = struct{}{}
		titles[key] = struct{}{}
	}
	return nil
}

// Clone returns a copy of list that shares no backing array with it.
func Clone(list []Entry) []Entry {
	if list == nil {
		return nil
	}
	out := make([]Entry, len(list))
	copy(out, list)
	return out
}

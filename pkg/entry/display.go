package entry

import "strings"

const (
	// PlaceholderUnknown is shown for a date that is missing or unreadable.
	PlaceholderUnknown = "Unknown"
	// PlaceholderNotCompleted is shown for the completion date of an active
	// entry.
	PlaceholderNotCompleted = "Not completed yet"
)

// CommonGenres is the suggested genre vocabulary. It is offered for
// completion only; any text is a valid genre.
var CommonGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary", "Drama",
	"Family", "Fantasy", "History", "Horror", "Music", "Mystery", "Romance",
	"Sci-Fi", "Thriller", "War", "Western", "Other",
}

// IsPlaceholder reports whether v is one of the display placeholders rather
// than a real date.
func IsPlaceholder(v string) bool {
	v = strings.TrimSpace(v)
	return strings.EqualFold(v, PlaceholderUnknown) || strings.EqualFold(v, PlaceholderNotCompleted)
}

// CreatedLabel is the display text for the creation date.
func (e Entry) CreatedLabel() string {
	if e.CreatedAt <= 0 {
		return PlaceholderUnknown
	}
	return FormatDate(e.CreatedAt)
}

// CompletedLabel is the display text for the completion date.
func (e Entry) CompletedLabel() string {
	if e.CompletedAt == nil {
		return PlaceholderNotCompleted
	}
	if *e.CompletedAt <= 0 {
		return PlaceholderUnknown
	}
	return FormatDate(*e.CompletedAt)
}

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

// ErrUnknownShape is returned by migrations for items that are neither a
// list nor an object holding an items list.
var ErrUnknownShape = errors.New("store: unrecognized items shape")

// IdentityMigration decodes the items as entries without touching them.
func IdentityMigration(raw RawEnvelope) (Envelope, error) {
	items, err := itemsPayload(raw.Items)
	if err != nil {
		return Envelope{}, err
	}
	var list []entry.Entry
	if err := json.Unmarshal(items, &list); err != nil {
		return Envelope{}, fmt.Errorf("store: decode items: %w", err)
	}
	return Envelope{Version: CurrentVersion, Items: list}, nil
}

// Migrate returns the default migration. Each stored record keeps its
// fields; a non-string genre becomes empty, and a missing completedAt is set
// to now for completed records and null otherwise. The result is passed
// through Repair so the list invariants hold.
func Migrate(now entry.Clock) Migration {
	if now == nil {
		now = entry.SystemClock
	}
	return func(raw RawEnvelope) (Envelope, error) {
		items, err := itemsPayload(raw.Items)
		if err != nil {
			return Envelope{}, err
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(items, &elems); err != nil {
			return Envelope{}, fmt.Errorf("store: decode records: %w", err)
		}

		ts := now()
		list := make([]entry.Entry, 0, len(elems))
		for _, elem := range elems {
			r, ok := decodeRecord(elem)
			if !ok {
				continue
			}
			list = append(list, migrateRecord(r, ts))
		}
		return Envelope{Version: CurrentVersion, Items: Repair(list)}, nil
	}
}

func decodeRecord(raw json.RawMessage) (entry.Record, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var r entry.Record
	if err := dec.Decode(&r); err != nil || r == nil {
		return nil, false
	}
	return r, true
}

func migrateRecord(r entry.Record, now int64) entry.Entry {
	e := entry.Entry{
		ID:        r.String("id"),
		Title:     strings.TrimSpace(r.String("title")),
		Completed: r.Bool("completed"),
	}
	if g, ok := r.StringOnly("genre"); ok {
		e.Genre = g
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
	} else if e.Completed {
		at := now
		e.CompletedAt = &at
	}
	return e
}

// Repair drops entries without a title and entries whose normalized title
// repeats an earlier one, then gives every entry lacking a unique numeric id
// a fresh one above the current maximum. Order is preserved.
func Repair(list []entry.Entry) []entry.Entry {
	out := make([]entry.Entry, 0, len(list))
	seen := make(map[string]struct{}, len(list))
	for _, e := range list {
		key := e.NormalizedTitle()
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	next := entry.MaxID(out)
	ids := make(map[string]struct{}, len(out))
	for i := range out {
		_, numeric := entry.NumericID(out[i].ID)
		_, taken := ids[out[i].ID]
		if !numeric || taken {
			next++
			out[i].ID = strconv.FormatInt(next, 10)
		}
		ids[out[i].ID] = struct{}{}
	}
	return out
}

// itemsPayload accepts a JSON list, or an object whose items field is a list,
// and returns the list.
func itemsPayload(raw json.RawMessage) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrUnknownShape
	}
	switch raw[0] {
	case '[':
		return raw, nil
	case '{':
		var obj struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("store: decode object: %w", err)
		}
		inner := bytes.TrimSpace(obj.Items)
		if len(inner) == 0 || inner[0] != '[' {
			return nil, ErrUnknownShape
		}
		return inner, nil
	default:
		return nil, ErrUnknownShape
	}
}

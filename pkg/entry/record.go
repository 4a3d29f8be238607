package entry

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is an entry-like value of unknown shape, as read from an import
// file or a legacy blob. Values are whatever the decoder produced: strings,
// numbers (float64, int64 or json.Number), booleans or nil.
type Record map[string]any

// Has reports whether key is present and not null.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// String coerces the value at key to a string. Missing and null values are
// the empty string.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// StringOnly returns the value at key if it is a string.
func (r Record) StringOnly(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Bool coerces the value at key to a boolean: booleans as-is, strings equal
// to "true" ignoring case, and non-zero numbers are true.
func (r Record) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	case float64:
		return v != 0
	case int64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	default:
		return false
	}
}

// Number returns the value at key when it is numeric.
func (r Record) Number(key string) (int64, bool) {
	switch v := r[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		if f, err := v.Float64(); err == nil {
			return int64(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// ToRecord converts e to its Record form, mirroring its JSON shape.
func (e Entry) ToRecord() Record {
	r := Record{
		"id":          e.ID,
		"title":       e.Title,
		"genre":       e.Genre,
		"completed":   e.Completed,
		"createdAt":   e.CreatedAt,
		"completedAt": nil,
	}
	if e.CompletedAt != nil {
		r["completedAt"] = *e.CompletedAt
	}
	return r
}

// Records converts a list of entries to records.
func Records(list []Entry) []Record {
	out := make([]Record, 0, len(list))
	for _, e := range list {
		out = append(out, e.ToRecord())
	}
	return out
}

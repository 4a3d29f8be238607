// Package transfer converts the watchlist to and from the JSON and CSV files
// used for export and import.
package transfer

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

var (
	// ErrUnrecognizedShape is returned for JSON that is neither a list nor
	// an object with an items list.
	ErrUnrecognizedShape = errors.New("transfer: unrecognized JSON shape")
	// ErrEmptyCSV is returned for CSV input without a header row.
	ErrEmptyCSV = errors.New("transfer: empty CSV")
	// ErrUnknownFormat is returned for formats other than json and csv.
	ErrUnknownFormat = errors.New("transfer: unknown format")
)

// Format is an import/export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat converts raw to a Format.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatJSON, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Decode parses data in format f into records for merging.
func Decode(f Format, data []byte) ([]entry.Record, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatCSV:
		return DecodeCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Encode renders items in format f.
func Encode(f Format, items []entry.Entry) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(items)
	case FormatCSV:
		return EncodeCSV(items), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

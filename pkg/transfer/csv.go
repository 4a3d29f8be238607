package transfer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/streamlist/pkg/entry"
)

// Header is the column order written by EncodeCSV.
var Header = []string{"id", "title", "genre", "completed", "createdAt", "completedAt"}

var utf8BOM = []byte("\xef\xbb\xbf")

// DecodeCSV reads a header row followed by one record per line. Fields map
// to record keys by header position; quoted fields may hold commas, newlines
// and doubled quotes. Blank lines are skipped. A completed field is true iff
// its text is "true" in any case.
func DecodeCSV(data []byte) ([]entry.Record, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	r := newReader(bytes.NewReader(data))

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("transfer: read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []entry.Record
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("transfer: read csv: %w", err)
		}
		rec := make(entry.Record, len(header))
		for i, name := range header {
			if i >= len(fields) || name == "" {
				continue
			}
			if name == "completed" {
				rec[name] = strings.ToLower(strings.TrimSpace(fields[i])) == "true"
				continue
			}
			rec[name] = fields[i]
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []entry.Record{}
	}
	return records, nil
}

// SplitCSVLine splits one CSV line into fields.
func SplitCSVLine(line string) ([]string, error) {
	fields, err := newReader(strings.NewReader(line)).Read()
	if errors.Is(err, io.EOF) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("transfer: split csv line: %w", err)
	}
	return fields, nil
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// EncodeCSV renders items under Header with ISO-8601 timestamps. An empty
// completedAt means the entry is active.
func EncodeCSV(items []entry.Entry) []byte {
	var b bytes.Buffer
	writeRow(&b, Header)
	for _, e := range items {
		completedAt := ""
		if e.CompletedAt != nil {
			completedAt = entry.FormatISO(*e.CompletedAt)
		}
		writeRow(&b, []string{
			e.ID,
			e.Title,
			e.Genre,
			strconv.FormatBool(e.Completed),
			entry.FormatISO(e.CreatedAt),
			completedAt,
		})
	}
	return b.Bytes()
}

func writeRow(b *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteField(f))
	}
	b.WriteByte('\n')
}

// quoteField quotes f only when it holds a comma, quote or line break.
func quoteField(f string) string {
	if !strings.ContainsAny(f, ",\"\n\r") {
		return f
	}
	return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
}

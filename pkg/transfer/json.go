package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tableflip.dev/streamlist/pkg/entry"
	"tableflip.dev/streamlist/pkg/store"
)

// DecodeJSON accepts a bare list of entry-like objects or an object with an
// items list. List elements that are not objects become empty records.
func DecodeJSON(data []byte) ([]entry.Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrUnrecognizedShape
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var top any
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("transfer: decode json: %w", err)
	}

	var list []any
	switch v := top.(type) {
	case []any:
		list = v
	case map[string]any:
		items, ok := v["items"].([]any)
		if !ok {
			return nil, ErrUnrecognizedShape
		}
		list = items
	default:
		return nil, ErrUnrecognizedShape
	}

	records := make([]entry.Record, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			records = append(records, entry.Record{})
			continue
		}
		records = append(records, entry.Record(obj))
	}
	return records, nil
}

// EncodeJSON renders items as a versioned envelope with two-space
// indentation.
func EncodeJSON(items []entry.Entry) ([]byte, error) {
	if items == nil {
		items = []entry.Entry{}
	}
	b, err := json.MarshalIndent(store.Envelope{Version: store.CurrentVersion, Items: items}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("transfer: encode json: %w", err)
	}
	return append(b, '\n'), nil
}

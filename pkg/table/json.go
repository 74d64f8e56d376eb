package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/matzehuels/gridtable/pkg/errors"
)

// FromJSON builds a table from JSON input. Two shapes are accepted: an
// array of objects, where columns are the union of all keys in sorted
// order and become the header, and an array of arrays, taken as plain rows
// with no header. Missing object keys render as empty cells.
func FromJSON(r io.Reader) (*Table, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding json")
	}
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "json input holds no rows")
	}

	switch firstByte(raw[0]) {
	case '{':
		return fromJSONObjects(raw)
	case '[':
		return fromJSONArrays(raw)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "json rows must be objects or arrays")
}

func fromJSONObjects(raw []json.RawMessage) (*Table, error) {
	objects := make([]map[string]any, len(raw))
	for i, msg := range raw {
		if err := decodeValue(msg, &objects[i]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding json row %d", i)
		}
	}

	var keys []string
	seen := make(map[string]bool)
	for _, obj := range objects {
		for k := range obj {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	slices.Sort(keys)

	t := New()
	t.SetHeader(keys...)
	for _, obj := range objects {
		row := make([]string, len(keys))
		for i, k := range keys {
			if v, ok := obj[k]; ok {
				row[i] = jsonCell(v)
			}
		}
		t.AppendRow(row...)
	}
	return t, nil
}

func fromJSONArrays(raw []json.RawMessage) (*Table, error) {
	t := New()
	for i, msg := range raw {
		var values []any
		if err := decodeValue(msg, &values); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding json row %d", i)
		}
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = jsonCell(v)
		}
		t.AppendRow(row...)
	}
	return t, nil
}

// decodeValue decodes one JSON value with numbers kept verbatim.
func decodeValue(msg json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()
	return dec.Decode(dst)
}

// firstByte returns the first non-space byte of msg, or 0.
func firstByte(msg json.RawMessage) byte {
	for _, b := range msg {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}

// jsonCell renders a decoded JSON value as cell text. Nested containers
// are re-encoded compactly rather than flattened.
func jsonCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(encoded)
	}
}

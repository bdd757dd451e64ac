// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one item of a search response. It keeps the fields in the order
// the API sent them so that callers asking for every field get a stable,
// meaningful column order.
type Record struct {
	keys   []string
	values map[string]json.RawMessage
}

// Keys returns the field names in response order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Text renders a field as a single CSV cell. Strings are returned verbatim,
// null and missing fields are empty, and any other value is rendered as its
// compact JSON text.
func (r Record) Text(key string) string {
	raw, ok := r.values[key]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return ""
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return string(raw)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// UnmarshalJSON decodes a JSON object while recording key order.
// A key that appears twice keeps its first position and its last value.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("decoding record: expected object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding record key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decoding record: unexpected key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding record field %q: %w", key, err)
		}
		if _, dup := r.values[key]; !dup {
			r.keys = append(r.keys, key)
		}
		r.values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}
	return nil
}

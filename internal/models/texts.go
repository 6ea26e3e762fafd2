package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Texts is an insertion-ordered mapping of opaque keys to strings.
//
// The keys only serve to re-associate translated strings with their inputs after a positional
// round trip through the provider. The zero value is an empty mapping ready to use.
type Texts struct {
	keys   []string
	values map[string]string
}

// NewTexts creates a mapping from alternating key/value arguments.
// A trailing key without a value is ignored.
func NewTexts(keyValues ...string) Texts {
	var t Texts
	for i := 0; i+1 < len(keyValues); i += 2 {
		t.Set(keyValues[i], keyValues[i+1])
	}
	return t
}

// Set stores value under key. Existing keys keep their position.
func (t *Texts) Set(key, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value stored under key
func (t Texts) Get(key string) (string, bool) {
	value, ok := t.values[key]
	return value, ok
}

// Len returns the number of keys
func (t Texts) Len() int {
	return len(t.keys)
}

// Keys returns the keys in insertion order
func (t Texts) Keys() []string {
	keys := make([]string, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Values returns the values in key order
func (t Texts) Values() []string {
	values := make([]string, len(t.keys))
	for i, key := range t.keys {
		values[i] = t.values[key]
	}
	return values
}

// MarshalJSON encodes the mapping as a JSON object keeping key order
func (t Texts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
		}
		encodedValue, err := json.Marshal(t.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to encode value of %q: %w", key, err)
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings keeping the order of its members
func (t *Texts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	token, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode texts: %w", err)
	}
	if token == nil {
		*t = Texts{}
		return nil
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("texts must be a JSON object")
	}

	var decoded Texts
	for dec.More() {
		keyToken, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to decode texts: %w", err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return fmt.Errorf("texts must be a JSON object")
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("text %q must be a string: %w", key, err)
		}
		decoded.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to decode texts: %w", err)
	}

	*t = decoded
	return nil
}

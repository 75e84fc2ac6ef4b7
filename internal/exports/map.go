package exports

import (
	"bytes"
	"encoding/json"
	"slices"
)

// RootKey is the specifier of the package's main entry.
const RootKey = "."

// Map is an insertion-ordered specifier -> path mapping.
// Setting an existing key replaces its value and keeps its position.
type Map struct {
	keys   []string
	values map[string]string
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// Set stores path under key.
func (m *Map) Set(key, path string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = path
}

// Get returns the path stored under key.
func (m *Map) Get(key string) (string, bool) {
	path, ok := m.values[key]
	return path, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf, scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)

	quote := func(s string) error {
		scratch.Reset()
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
		return nil
	}

	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := quote(key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := quote(m.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

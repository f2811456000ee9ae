package aggregator

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Mapping is an insertion-ordered map from key to an ordered set of distinct,
// non-empty target strings.
type Mapping struct {
	keys   []string
	values map[string][]string
}

func NewMapping() *Mapping {
	return &Mapping{values: make(map[string][]string)}
}

// Add records value under key. A key is only created by a non-empty value; an
// existing key gains value unless it is empty or already present.
func (m *Mapping) Add(key, value string) {
	if value == "" {
		return
	}
	existing, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
		m.values[key] = []string{value}
		return
	}
	for _, v := range existing {
		if v == value {
			return
		}
	}
	m.values[key] = append(existing, value)
}

// Get returns the values recorded for key.
func (m *Mapping) Get(key string) ([]string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in first-seen order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

// set replaces the values of key, keeping its position if it already exists.
func (m *Mapping) set(key string, values []string) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append([]string(nil), values...)
}

// Merge copies general and overlays caption. A key present in both keeps its
// position from general and takes caption's values wholesale.
func Merge(general, caption *Mapping) *Mapping {
	out := NewMapping()
	for _, k := range general.keys {
		out.set(k, general.values[k])
	}
	for _, k := range caption.keys {
		out.set(k, caption.values[k])
	}
	return out
}

// MarshalJSON writes the mapping as an object in key order, laid out like the
// existing translation dictionaries: ", " and ": " separators, no
// trailing newline, and non-ASCII text (U+2028 and U+2029 included) unescaped.
// HTML characters are not escaped.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteString(": [")
		for j, v := range m.values[k] {
			if j > 0 {
				buf.WriteString(", ")
			}
			if err := writeString(&buf, v); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeString quotes s. encoding/json always escapes the line and paragraph
// separators, so those runes are written around it.
func writeString(buf *bytes.Buffer, s string) error {
	buf.WriteByte('"')
	start := 0
	for i, r := range s {
		if r != '\u2028' && r != '\u2029' {
			continue
		}
		if err := writeEscaped(buf, s[start:i]); err != nil {
			return err
		}
		buf.WriteRune(r)
		start = i + utf8.RuneLen(r)
	}
	if err := writeEscaped(buf, s[start:]); err != nil {
		return err
	}
	buf.WriteByte('"')
	return nil
}

// writeEscaped writes the JSON escaping of s without the surrounding quotes.
func writeEscaped(buf *bytes.Buffer, s string) error {
	if s == "" {
		return nil
	}
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// strip the quotes and the newline Encode appends
	b := tmp.Bytes()
	buf.Write(b[1 : len(b)-2])
	return nil
}

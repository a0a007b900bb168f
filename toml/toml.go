// Package toml provides a TOML codec implementation.
//
// An element is written as top-level key/value pairs in element order.
// Integers decode as int64, floats as float64.
package toml

import (
	"bytes"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/attrib"
)

// tomlCodec implements attrib.Codec for TOML.
type tomlCodec struct{}

// New returns a TOML codec.
func New() attrib.Codec {
	return &tomlCodec{}
}

// ContentType returns the MIME type for TOML.
func (c *tomlCodec) ContentType() string {
	return "application/toml"
}

// Marshal encodes el as TOML key/value pairs.
func (c *tomlCodec) Marshal(el *attrib.Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	for _, a := range el.Attrs {
		v, err := attrib.NativeValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		// TOML integers are signed 64-bit.
		if u, ok := v.(uint64); ok && u > math.MaxInt64 {
			return nil, fmt.Errorf("attribute %q: %w: %d exceeds the TOML integer range", a.Name, attrib.ErrOutOfRange, u)
		}
		// One key per Encode keeps element order; a map would be sorted.
		if err := enc.Encode(map[string]any{a.Name: v}); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes top-level TOML keys into el, in document order.
func (c *tomlCodec) Unmarshal(data []byte, el *attrib.Element) error {
	var values map[string]any
	md, err := toml.Decode(string(data), &values)
	if err != nil {
		return err
	}

	for _, key := range md.Keys() {
		if len(key) != 1 {
			return attrib.StructureError("nested key %q", key.String())
		}
		name := key[0]
		v := values[name]
		switch v.(type) {
		case map[string]any, []any, []map[string]any:
			return attrib.StructureError("key %q is not a scalar", name)
		}
		if err := el.Add(name, v); err != nil {
			return err
		}
	}
	return nil
}

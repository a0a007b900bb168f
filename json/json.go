// Package json provides a JSON codec implementation.
//
// An element is written as a flat object whose members appear in element order.
// Numbers decode as json.Number, so integer attributes keep their exact value.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/zoobzio/attrib"
)

// jsonCodec implements attrib.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() attrib.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes el as a JSON object.
func (c *jsonCodec) Marshal(el *attrib.Element) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range el.Attrs {
		v, err := attrib.NativeValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Unmarshal decodes a flat JSON object into el.
func (c *jsonCodec) Unmarshal(data []byte, el *attrib.Element) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return attrib.StructureError("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return attrib.StructureError("expected member name, got %v", tok)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return err
		}
		switch v.(type) {
		case map[string]any, []any:
			return attrib.StructureError("member %q is not a scalar", name)
		}
		if err := el.Add(name, v); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return attrib.StructureError("trailing data after object")
	}
	return nil
}

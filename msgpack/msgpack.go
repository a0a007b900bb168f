// Package msgpack provides a MessagePack codec implementation.
//
// An element is written as a map whose entries appear in element order.
// Integers decode as the narrowest MessagePack integer type.
package msgpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/attrib"
)

// msgpackCodec implements attrib.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() attrib.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes el as a MessagePack map.
func (c *msgpackCodec) Marshal(el *attrib.Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeMapLen(len(el.Attrs)); err != nil {
		return nil, err
	}
	for _, a := range el.Attrs {
		v, err := attrib.NativeValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if err := enc.EncodeString(a.Name); err != nil {
			return nil, err
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a flat MessagePack map into el.
func (c *msgpackCodec) Unmarshal(data []byte, el *attrib.Element) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))

	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n < 0 {
		return attrib.StructureError("expected map, got nil")
	}

	for i := 0; i < n; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := dec.DecodeInterface()
		if err != nil {
			return err
		}
		switch v.(type) {
		case map[string]any, map[any]any, []any:
			return attrib.StructureError("entry %q is not a scalar", name)
		}
		if err := el.Add(name, v); err != nil {
			return err
		}
	}

	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return attrib.StructureError("trailing data after map")
	}
	return nil
}

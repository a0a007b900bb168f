// Package bson provides a BSON codec implementation.
//
// An element is written as a document whose fields appear in element order.
// Integers are written as int64 and floats as double.
package bson

import (
	"fmt"

	"github.com/zoobzio/attrib"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements attrib.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() attrib.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes el as a BSON document.
func (c *bsonCodec) Marshal(el *attrib.Element) ([]byte, error) {
	doc := make(bson.D, 0, len(el.Attrs))
	for _, a := range el.Attrs {
		v, err := attrib.NativeValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		doc = append(doc, bson.E{Key: a.Name, Value: v})
	}
	return bson.Marshal(doc)
}

// Unmarshal decodes a flat BSON document into el.
func (c *bsonCodec) Unmarshal(data []byte, el *attrib.Element) error {
	var doc bson.D
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	for _, e := range doc {
		switch e.Value.(type) {
		case bson.D, bson.M, bson.A:
			return attrib.StructureError("field %q is not a scalar", e.Key)
		}
		if err := el.Add(e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

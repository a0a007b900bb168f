// Package testing provides test utilities for attrib.
package testing

import (
	"github.com/zoobzio/attrib"
	"github.com/zoobzio/attrib/bson"
	"github.com/zoobzio/attrib/json"
	"github.com/zoobzio/attrib/model"
	"github.com/zoobzio/attrib/msgpack"
	"github.com/zoobzio/attrib/toml"
	"github.com/zoobzio/attrib/xml"
	"github.com/zoobzio/attrib/yaml"
)

// Codecs returns every codec provider, XML first.
func Codecs() []attrib.Codec {
	return []attrib.Codec{
		xml.New(),
		json.New(),
		yaml.New(),
		msgpack.New(),
		bson.New(),
		toml.New(),
	}
}

// SampleRoot returns the record encoded as <root byte="1" other="1"/>.
func SampleRoot() model.Root {
	return model.Root{
		Intermediate: model.Intermediate{Byte: model.One, Other: 1},
	}
}

// Scalars exercises every built-in coercion on the reflection path.
type Scalars struct {
	Int  int            `attr:"int"`
	I8   int8           `attr:"i8"`
	I16  int16          `attr:"i16"`
	I32  int32          `attr:"i32"`
	I64  int64          `attr:"i64"`
	Uint uint           `attr:"uint"`
	U8   uint8          `attr:"u8"`
	U16  uint16         `attr:"u16"`
	U32  uint32         `attr:"u32"`
	U64  uint64         `attr:"u64"`
	F32  float32        `attr:"f32"`
	F64  float64        `attr:"f64"`
	Bool bool           `attr:"bool"`
	Char attrib.Char    `attr:"char"`
	Text string         `attr:"text"`
	Code model.ByteEnum `attr:"code"`
	Skip string         `attr:"-"`
}

// SampleScalars returns a Scalars value with distinct, representable values.
// U64 stays within int64 range so BSON and TOML can carry it.
func SampleScalars() Scalars {
	return Scalars{
		Int:  -42,
		I8:   -8,
		I16:  -1600,
		I32:  -320000,
		I64:  -6400000000,
		Uint: 42,
		U8:   255,
		U16:  1600,
		U32:  320000,
		U64:  6400000000,
		F32:  0.5,
		F64:  3.25,
		Bool: true,
		Char: 'λ',
		Text: "a <b> & \"c\"",
		Code: model.Three,
	}
}

// TaggedRoot mirrors model.Root through attr tags alone, with no override methods.
type TaggedRoot struct {
	Intermediate TaggedIntermediate `attr:",flatten"`
}

// TaggedIntermediate mirrors model.Intermediate through attr tags alone.
type TaggedIntermediate struct {
	Byte  model.ByteEnum `attr:"byte"`
	Other uint8          `attr:"other"`
}

// Flag is a record with a single boolean attribute.
type Flag struct {
	On bool `attr:"on"`
}

// Package attrib provides flattened attribute encoding with typed scalar coercion.
//
// A record is flattened into a single markup element whose attributes carry scalar
// values. Depending on the format, a decoder hands those values back either already
// typed (JSON numbers, YAML ints, MessagePack and BSON integers) or as residual text
// (XML attributes, quoted YAML scalars). attrib reconciles the two: every field is
// decoded through one adapter that tries the typed value first and falls back to
// parsing the attribute text with the field type's own grammar.
//
// # Coercion
//
// Built-in scalar kinds are supported out of the box: all integer widths, float32,
// float64, bool and string, including named types over those kinds. Integers and
// floats use strconv at the field's bit size. Booleans accept "true", "1", "false"
// and "0" and nothing else. Char parses exactly one rune.
//
// Types with their own grammar implement AttrUnmarshaler (decode) and AttrMarshaler
// (encode):
//
//	type Level uint8
//
//	func (l *Level) UnmarshalAttrText(text string) error {
//	    n, err := attrib.ParseText[uint8](text)
//	    if err != nil {
//	        return err
//	    }
//	    return l.set(n)
//	}
//
// # Tag Syntax
//
// Fields are mapped to attributes via the attr struct tag:
//
//	attr:"name"      - attribute name (defaults to the Go field name)
//	attr:"-"         - skip the field
//	attr:",flatten"  - surface a nested struct's fields on the parent element
//
// # Basic Usage
//
//	type Inner struct {
//	    Level Level `attr:"level"`
//	    Count uint8 `attr:"count"`
//	}
//
//	type Outer struct {
//	    Inner Inner `attr:",flatten"`
//	}
//
//	proc, _ := attrib.NewProcessor[Outer](xml.New(), attrib.WithRoot("outer"))
//
//	data, _ := proc.Encode(ctx, &Outer{Inner{Level: 2, Count: 7}})
//	// <outer level="2" count="7"/>
//
//	out, _ := proc.Decode(ctx, data)
//
// # Override Interfaces
//
// Records can bypass reflection by implementing AttrsMarshaler and AttrsUnmarshaler,
// typically calling Field for each attribute.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - xml - XML attributes (application/xml)
//   - json - JSON object members (application/json)
//   - yaml - YAML mapping entries (application/yaml)
//   - msgpack - MessagePack map entries (application/msgpack)
//   - bson - BSON document elements (application/bson)
//   - toml - TOML top-level keys (application/toml)
package attrib

// Codec converts between a flat Element and its encoded form.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/xml").
	ContentType() string

	// Marshal encodes el into bytes, preserving attribute order.
	Marshal(el *Element) ([]byte, error)

	// Unmarshal decodes data into el. Values are left as the format produced them:
	// typed where the format carries types, strings where it does not.
	Unmarshal(data []byte, el *Element) error
}

// AttrUnmarshaler is implemented by scalar types that decode themselves from an
// attribute. The field adapter calls UnmarshalAttrValue first and falls back to
// UnmarshalAttrText only when that returns an error matching ErrTypeMismatch.
type AttrUnmarshaler interface {
	// UnmarshalAttrText parses captured attribute text.
	UnmarshalAttrText(text string) error

	// UnmarshalAttrValue accepts a value a decoder already produced in typed form.
	// It must return an error matching ErrTypeMismatch for shapes it does not accept.
	UnmarshalAttrValue(v any) error
}

// AttrMarshaler is implemented by scalar types with a fixed wire form.
type AttrMarshaler interface {
	// MarshalAttrText returns the attribute text.
	MarshalAttrText() (string, error)

	// MarshalAttrValue returns the value typed codecs should carry.
	MarshalAttrValue() (any, error)
}

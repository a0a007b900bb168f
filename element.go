package attrib

import (
	"encoding/json"
	"reflect"
)

// Attr is a single named attribute. Value holds a typed Go value when encoding; when
// decoding it holds whatever the codec produced.
type Attr struct {
	Name  string
	Value any
}

// Element is a flat markup element: a name plus ordered attributes.
// Formats without element names leave Name empty on decode.
type Element struct {
	Name  string
	Attrs []Attr
}

// Add appends an attribute, rejecting duplicate names.
func (e *Element) Add(name string, value any) error {
	if _, ok := e.Lookup(name); ok {
		return StructureError("duplicate attribute %q", name)
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return nil
}

// Lookup returns the value of the named attribute.
func (e *Element) Lookup(name string) (any, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return nil, false
}

// TextCount returns how many attribute values are residual text.
func (e *Element) TextCount() int {
	n := 0
	for _, a := range e.Attrs {
		if _, ok := textOf(a.Value); ok {
			n++
		}
	}
	return n
}

// textOf reports whether v is text. json.Number is a typed number despite its kind.
func textOf(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if _, ok := v.(json.Number); ok {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

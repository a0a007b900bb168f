package attrib

import (
	"errors"
	"reflect"
)

// typeOrString is the shape an attribute value resolved to: the target type itself,
// or residual text still to be parsed.
type typeOrString struct {
	typed bool
	text  string
}

// split tries src as rv's type first. On a type mismatch from a text source it
// captures the text instead. Any other failure is returned as is.
func split(rv reflect.Value, src any) (typeOrString, error) {
	err := decodeTyped(rv, src)
	if err == nil {
		return typeOrString{typed: true}, nil
	}
	if !errors.Is(err, ErrTypeMismatch) {
		return typeOrString{}, err
	}
	text, ok := textOf(src)
	if !ok {
		return typeOrString{}, err
	}
	return typeOrString{text: text}, nil
}

// resolve decodes src into rv through the typed path or the text grammar.
func resolve(rv reflect.Value, src any) (typeOrString, error) {
	tos, err := split(rv, src)
	if err != nil || tos.typed {
		return tos, err
	}
	return tos, decodeText(rv, tos.text)
}

// Flattened converts an attribute value into T. A value the decoder already typed is
// accepted directly; text is parsed with T's grammar. A typed value of the wrong
// shape is only retried as text when it is text, so structural problems are not
// masked by the fallback.
func Flattened[T any](src any) (T, error) {
	var out T
	if _, err := resolve(reflect.ValueOf(&out).Elem(), src); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Field decodes the named attribute of el into T.
// Errors are reported as *FieldError naming the attribute.
func Field[T any](el *Element, name string) (T, error) {
	var zero T
	src, ok := el.Lookup(name)
	if !ok {
		return zero, &FieldError{Field: name, Err: ErrMissingAttr}
	}
	out, err := Flattened[T](src)
	if err != nil {
		return zero, &FieldError{Field: name, Err: err}
	}
	return out, nil
}

// Package model holds the discriminant enumeration and the flattened records
// exchanged as a single <root> element.
package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/zoobzio/attrib"
)

// ErrInvalidByteEnum indicates a code outside the ByteEnum variants.
var ErrInvalidByteEnum = errors.New("invalid ByteEnum")

// ByteEnum is a closed set of variants, each bound to a fixed code.
// The code is its only wire representation; the variant name is never encoded.
type ByteEnum uint8

const (
	Zero  ByteEnum = 0
	One   ByteEnum = 1
	Two   ByteEnum = 2
	Three ByteEnum = 3
)

var byteEnumNames = [...]string{"Zero", "One", "Two", "Three"}

// FromCode maps a code to its variant.
func FromCode(code uint8) (ByteEnum, error) {
	if code > uint8(Three) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidByteEnum, code)
	}
	return ByteEnum(code), nil
}

// ParseByteEnum parses decimal text as a uint8 first, then maps it to a variant.
// Integer parse errors are returned as they are.
func ParseByteEnum(text string) (ByteEnum, error) {
	code, err := attrib.ParseText[uint8](text)
	if err != nil {
		return 0, err
	}
	b, err := FromCode(code)
	if err != nil {
		return 0, rangeError(text, err)
	}
	return b, nil
}

// Valid reports whether b is one of the declared variants.
func (b ByteEnum) Valid() bool {
	return b <= Three
}

// Code returns the discriminant.
func (b ByteEnum) Code() uint8 {
	return uint8(b)
}

func (b ByteEnum) String() string {
	if !b.Valid() {
		return "ByteEnum(" + strconv.Itoa(int(b)) + ")"
	}
	return byteEnumNames[b]
}

func (b *ByteEnum) UnmarshalAttrText(text string) error {
	v, err := ParseByteEnum(text)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// UnmarshalAttrValue accepts any integer that is a valid code.
func (b *ByteEnum) UnmarshalAttrValue(v any) error {
	n, err := attrib.ParseValue[uint64](v)
	if err != nil {
		return err
	}
	input := strconv.FormatUint(n, 10)
	if n > math.MaxUint8 {
		return rangeError(input, fmt.Errorf("%w: %d", ErrInvalidByteEnum, n))
	}
	code, err := FromCode(uint8(n))
	if err != nil {
		return rangeError(input, err)
	}
	*b = code
	return nil
}

func (b ByteEnum) MarshalAttrText() (string, error) {
	if !b.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidByteEnum, uint8(b))
	}
	return strconv.Itoa(int(b)), nil
}

func (b ByteEnum) MarshalAttrValue() (any, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidByteEnum, uint8(b))
	}
	return uint8(b), nil
}

// MarshalXMLAttr lets ByteEnum sit on plain encoding/xml structs as an attribute.
func (b ByteEnum) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	text, err := b.MarshalAttrText()
	if err != nil {
		return xml.Attr{}, err
	}
	return xml.Attr{Name: name, Value: text}, nil
}

func (b *ByteEnum) UnmarshalXMLAttr(attr xml.Attr) error {
	return b.UnmarshalAttrText(attr.Value)
}

func rangeError(input string, cause error) error {
	return &attrib.CoercionError{
		Err:    attrib.ErrOutOfRange,
		Target: "model.ByteEnum",
		Input:  input,
		Cause:  cause,
	}
}

package model

import "github.com/zoobzio/attrib"

// ElementName is the element Root is exchanged as.
const ElementName = "root"

// Intermediate pairs a ByteEnum with a byte-sized value. It has no element of its
// own: its fields are attributes of whichever record flattens it.
type Intermediate struct {
	Byte  ByteEnum `attr:"byte"`
	Other uint8    `attr:"other"`
}

// MarshalAttrs implements attrib.AttrsMarshaler.
func (i Intermediate) MarshalAttrs() ([]attrib.Attr, error) {
	return []attrib.Attr{
		{Name: "byte", Value: i.Byte},
		{Name: "other", Value: i.Other},
	}, nil
}

// UnmarshalAttrs implements attrib.AttrsUnmarshaler.
func (i *Intermediate) UnmarshalAttrs(el *attrib.Element) error {
	b, err := attrib.Field[ByteEnum](el, "byte")
	if err != nil {
		return err
	}
	other, err := attrib.Field[uint8](el, "other")
	if err != nil {
		return err
	}
	i.Byte, i.Other = b, other
	return nil
}

// Root is the top-level record. Its whole surface is the flattened Intermediate.
type Root struct {
	Intermediate Intermediate `attr:",flatten"`
}

// MarshalAttrs implements attrib.AttrsMarshaler.
func (r Root) MarshalAttrs() ([]attrib.Attr, error) {
	return r.Intermediate.MarshalAttrs()
}

// UnmarshalAttrs implements attrib.AttrsUnmarshaler.
func (r *Root) UnmarshalAttrs(el *attrib.Element) error {
	var i Intermediate
	if err := i.UnmarshalAttrs(el); err != nil {
		return err
	}
	r.Intermediate = i
	return nil
}

package model

import (
	"errors"
	"testing"

	"github.com/zoobzio/attrib"
)

func TestParseByteEnum(t *testing.T) {
	tests := []struct {
		text string
		want ByteEnum
	}{
		{"0", Zero},
		{"1", One},
		{"2", Two},
		{"3", Three},
		{"+3", Three},
		{"003", Three},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseByteEnum(tt.text)
			if err != nil {
				t.Fatalf("ParseByteEnum(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseByteEnum(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseByteEnum_Errors(t *testing.T) {
	tests := []struct {
		text     string
		sentinel error
	}{
		{"4", ErrInvalidByteEnum},
		{"200", ErrInvalidByteEnum},
		{"256", attrib.ErrOutOfRange},
		{"-1", attrib.ErrGrammar},
		{"One", attrib.ErrGrammar},
		{" 1", attrib.ErrGrammar},
		{"", attrib.ErrGrammar},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseByteEnum(tt.text)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("ParseByteEnum(%q) error = %v, want %v", tt.text, err, tt.sentinel)
			}
		})
	}
}

func TestParseByteEnum_IntegerErrorPropagates(t *testing.T) {
	_, err := ParseByteEnum("x")

	var ce *attrib.CoercionError
	if !errors.As(err, &ce) {
		t.Fatalf("ParseByteEnum(x) error = %T, want *attrib.CoercionError", err)
	}
	if ce.Target != "uint8" {
		t.Errorf("Target = %q, want uint8 (integer parser error)", ce.Target)
	}
}

func TestFromCode(t *testing.T) {
	for code := 0; code <= 255; code++ {
		b, err := FromCode(uint8(code))
		if code <= 3 {
			if err != nil || b.Code() != uint8(code) {
				t.Errorf("FromCode(%d) = %v, %v", code, b, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidByteEnum) {
			t.Errorf("FromCode(%d) error = %v, want ErrInvalidByteEnum", code, err)
		}
	}
}

func TestByteEnum_String(t *testing.T) {
	tests := map[ByteEnum]string{
		Zero:          "Zero",
		One:           "One",
		Two:           "Two",
		Three:         "Three",
		ByteEnum(200): "ByteEnum(200)",
	}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestByteEnum_MarshalAttr(t *testing.T) {
	text, err := Two.MarshalAttrText()
	if err != nil || text != "2" {
		t.Errorf("MarshalAttrText() = %q, %v, want \"2\"", text, err)
	}

	v, err := Two.MarshalAttrValue()
	if err != nil || v != uint8(2) {
		t.Errorf("MarshalAttrValue() = %v (%T), %v, want uint8(2)", v, v, err)
	}

	if _, err := ByteEnum(4).MarshalAttrText(); !errors.Is(err, ErrInvalidByteEnum) {
		t.Errorf("MarshalAttrText(4) error = %v, want ErrInvalidByteEnum", err)
	}
	if _, err := ByteEnum(4).MarshalAttrValue(); !errors.Is(err, ErrInvalidByteEnum) {
		t.Errorf("MarshalAttrValue(4) error = %v, want ErrInvalidByteEnum", err)
	}
}

func TestByteEnum_UnmarshalAttrValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		want     ByteEnum
		sentinel error
	}{
		{"uint8", uint8(3), Three, nil},
		{"int", 2, Two, nil},
		{"int32", int32(0), Zero, nil},
		{"four", uint8(4), 0, ErrInvalidByteEnum},
		{"wide", int64(1000), 0, ErrInvalidByteEnum},
		{"negative", -1, 0, attrib.ErrOutOfRange},
		{"string", "1", 0, attrib.ErrTypeMismatch},
		{"float", 1.0, 0, attrib.ErrTypeMismatch},
		{"nil", nil, 0, attrib.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ByteEnum
			err := b.UnmarshalAttrValue(tt.value)
			if tt.sentinel != nil {
				if !errors.Is(err, tt.sentinel) {
					t.Errorf("UnmarshalAttrValue(%v) error = %v, want %v", tt.value, err, tt.sentinel)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnmarshalAttrValue(%v) error: %v", tt.value, err)
			}
			if b != tt.want {
				t.Errorf("UnmarshalAttrValue(%v) = %v, want %v", tt.value, b, tt.want)
			}
		})
	}
}

func TestByteEnum_Flattened(t *testing.T) {
	for _, src := range []any{"1", uint8(1), int64(1), One} {
		got, err := attrib.Flattened[ByteEnum](src)
		if err != nil {
			t.Fatalf("Flattened(%v) error: %v", src, err)
		}
		if got != One {
			t.Errorf("Flattened(%v) = %v, want One", src, got)
		}
	}
}

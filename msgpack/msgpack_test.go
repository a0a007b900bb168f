package msgpack

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/attrib"
)

func TestMsgpackCodec_ContentType(t *testing.T) {
	c := New()
	if ct := c.ContentType(); ct != "application/msgpack" {
		t.Errorf("ContentType() = %q, want %q", ct, "application/msgpack")
	}
}

func TestMsgpackCodec_RoundTrip(t *testing.T) {
	c := New()
	el := &attrib.Element{Name: "root", Attrs: []attrib.Attr{
		{Name: "other", Value: uint8(200)},
		{Name: "byte", Value: uint8(1)},
		{Name: "delta", Value: int32(-70000)},
		{Name: "ratio", Value: float32(0.25)},
		{Name: "label", Value: "1"},
		{Name: "on", Value: true},
	}}

	first, err := c.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var back attrib.Element
	if err := c.Unmarshal(first, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back.Name != "" {
		t.Errorf("Name = %q, want empty", back.Name)
	}
	if len(back.Attrs) != len(el.Attrs) {
		t.Fatalf("Attrs = %+v", back.Attrs)
	}
	for i, a := range el.Attrs {
		if back.Attrs[i].Name != a.Name {
			t.Errorf("Attrs[%d].Name = %q, want %q", i, back.Attrs[i].Name, a.Name)
		}
	}
	if back.TextCount() != 1 {
		t.Errorf("TextCount() = %d, want 1", back.TextCount())
	}

	second, err := c.Marshal(&back)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("re-encode = %x, want %x", second, first)
	}
}

func TestMsgpackCodec_TypedValues(t *testing.T) {
	c := New()
	el := &attrib.Element{Attrs: []attrib.Attr{
		{Name: "byte", Value: uint8(3)},
		{Name: "delta", Value: int16(-5)},
	}}

	data, err := c.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back attrib.Element
	if err := c.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	b, err := attrib.Field[uint8](&back, "byte")
	if err != nil || b != 3 {
		t.Errorf("Field(byte) = %d, %v", b, err)
	}
	d, err := attrib.Field[int16](&back, "delta")
	if err != nil || d != -5 {
		t.Errorf("Field(delta) = %d, %v", d, err)
	}
	if _, err := attrib.Field[uint8](&back, "delta"); !errors.Is(err, attrib.ErrOutOfRange) {
		t.Errorf("Field[uint8](delta) error = %v, want ErrOutOfRange", err)
	}
}

func TestMsgpackCodec_Unmarshal_Structure(t *testing.T) {
	c := New()

	encode := func(v any) []byte {
		data, err := msgpack.Marshal(v)
		if err != nil {
			t.Fatalf("msgpack.Marshal() error: %v", err)
		}
		return data
	}

	nested := encode(map[string]any{"a": map[string]any{"b": 1}})
	list := encode(map[string]any{"a": []int{1}})
	null := encode(nil)
	trailing := append(encode(map[string]any{"a": 1}), encode(1)...)

	for name, input := range map[string][]byte{
		"nested":   nested,
		"list":     list,
		"nil":      null,
		"trailing": trailing,
	} {
		t.Run(name, func(t *testing.T) {
			var el attrib.Element
			err := c.Unmarshal(input, &el)
			if !errors.Is(err, attrib.ErrStructure) {
				t.Errorf("Unmarshal() error = %v, want ErrStructure", err)
			}
		})
	}
}

func TestMsgpackCodec_Unmarshal_Malformed(t *testing.T) {
	c := New()

	for _, input := range [][]byte{{}, {0x81}, {0x81, 0xa1}, {0x01}} {
		var el attrib.Element
		if err := c.Unmarshal(input, &el); err == nil {
			t.Errorf("Unmarshal(%x) should fail", input)
		}
	}
}

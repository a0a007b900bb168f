package toml

import (
	"errors"
	"math"
	"testing"

	"github.com/zoobzio/attrib"
)

func TestTOMLCodec_ContentType(t *testing.T) {
	c := New()
	if ct := c.ContentType(); ct != "application/toml" {
		t.Errorf("ContentType() = %q, want %q", ct, "application/toml")
	}
}

func TestTOMLCodec_Marshal(t *testing.T) {
	c := New()
	el := &attrib.Element{Name: "root", Attrs: []attrib.Attr{
		{Name: "other", Value: uint8(1)},
		{Name: "byte", Value: uint8(2)},
		{Name: "label", Value: "x"},
	}}

	data, err := c.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "other = 1\nbyte = 2\nlabel = \"x\"\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestTOMLCodec_Unmarshal_Order(t *testing.T) {
	c := New()

	var el attrib.Element
	if err := c.Unmarshal([]byte("zeta = 1\nalpha = \"2\"\nmid = true\n"), &el); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	want := []attrib.Attr{
		{Name: "zeta", Value: int64(1)},
		{Name: "alpha", Value: "2"},
		{Name: "mid", Value: true},
	}
	if len(el.Attrs) != len(want) {
		t.Fatalf("Attrs = %+v, want %+v", el.Attrs, want)
	}
	for i := range want {
		if el.Attrs[i] != want[i] {
			t.Errorf("Attrs[%d] = %#v, want %#v", i, el.Attrs[i], want[i])
		}
	}
}

func TestTOMLCodec_RoundTrip(t *testing.T) {
	c := New()
	el := &attrib.Element{Attrs: []attrib.Attr{
		{Name: "byte", Value: uint8(3)},
		{Name: "other", Value: uint8(255)},
		{Name: "ratio", Value: 1.5},
	}}

	first, err := c.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var back attrib.Element
	if err := c.Unmarshal(first, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	other, err := attrib.Field[uint8](&back, "other")
	if err != nil || other != 255 {
		t.Errorf("Field(other) = %d, %v", other, err)
	}

	second, err := c.Marshal(&back)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("re-encode = %q, want %q", second, first)
	}
}

func TestTOMLCodec_Unmarshal_Structure(t *testing.T) {
	c := New()

	inputs := []string{
		"[table]\na = 1\n",
		"a = [1, 2]\n",
		"a = { b = 1 }\n",
		"a.b = 1\n",
	}

	for _, input := range inputs {
		var el attrib.Element
		if err := c.Unmarshal([]byte(input), &el); !errors.Is(err, attrib.ErrStructure) {
			t.Errorf("Unmarshal(%q) error = %v, want ErrStructure", input, err)
		}
	}
}

func TestTOMLCodec_Unmarshal_Malformed(t *testing.T) {
	var el attrib.Element
	if err := New().Unmarshal([]byte("a = \n"), &el); err == nil {
		t.Error("Unmarshal() should fail on malformed TOML")
	}
}

func TestTOMLCodec_Marshal_UnsignedRange(t *testing.T) {
	c := New()

	el := &attrib.Element{Attrs: []attrib.Attr{{Name: "n", Value: uint64(math.MaxUint64)}}}
	if _, err := c.Marshal(el); !errors.Is(err, attrib.ErrOutOfRange) {
		t.Errorf("Marshal(MaxUint64) error = %v, want ErrOutOfRange", err)
	}

	el = &attrib.Element{Attrs: []attrib.Attr{{Name: "n", Value: uint64(math.MaxInt64)}}}
	data, err := c.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal(MaxInt64) error: %v", err)
	}
	var back attrib.Element
	if err := c.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	n, err := attrib.Field[uint64](&back, "n")
	if err != nil || n != math.MaxInt64 {
		t.Errorf("Field(n) = %d, %v, want %d", n, err, uint64(math.MaxInt64))
	}
}

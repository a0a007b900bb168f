package attrib

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestElement_Add(t *testing.T) {
	el := &Element{Name: "root"}
	if err := el.Add("a", 1); err != nil {
		t.Fatalf("Add(a) error: %v", err)
	}
	if err := el.Add("b", "2"); err != nil {
		t.Fatalf("Add(b) error: %v", err)
	}
	if err := el.Add("a", 3); !errors.Is(err, ErrStructure) {
		t.Errorf("Add(duplicate) error = %v, want ErrStructure", err)
	}
	if len(el.Attrs) != 2 || el.Attrs[0].Name != "a" || el.Attrs[1].Name != "b" {
		t.Errorf("Attrs = %+v, want a then b", el.Attrs)
	}
}

func TestElement_Lookup(t *testing.T) {
	el := &Element{Attrs: []Attr{{Name: "x", Value: "1"}}}

	v, ok := el.Lookup("x")
	if !ok || v != "1" {
		t.Errorf("Lookup(x) = %v, %v", v, ok)
	}
	if _, ok := el.Lookup("y"); ok {
		t.Error("Lookup(y) should report absence")
	}
}

func TestElement_TextCount(t *testing.T) {
	el := &Element{Attrs: []Attr{
		{Name: "a", Value: "text"},
		{Name: "b", Value: json.Number("1")},
		{Name: "c", Value: int64(1)},
		{Name: "d", Value: Char('x')},
		{Name: "e", Value: nil},
		{Name: "f", Value: ""},
	}}

	if got := el.TextCount(); got != 2 {
		t.Errorf("TextCount() = %d, want 2", got)
	}
}

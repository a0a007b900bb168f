package testing

import (
	"testing"

	"github.com/zoobzio/attrib/model"
)

func TestCodecs(t *testing.T) {
	codecs := Codecs()
	if len(codecs) != 6 {
		t.Fatalf("Codecs() length = %d, want 6", len(codecs))
	}
	if codecs[0].ContentType() != "application/xml" {
		t.Errorf("Codecs()[0] = %q, want application/xml", codecs[0].ContentType())
	}

	seen := make(map[string]bool)
	for _, c := range codecs {
		if seen[c.ContentType()] {
			t.Errorf("duplicate codec %q", c.ContentType())
		}
		seen[c.ContentType()] = true
	}
}

func TestSampleRoot(t *testing.T) {
	r := SampleRoot()
	if r.Intermediate.Byte != model.One || r.Intermediate.Other != 1 {
		t.Errorf("SampleRoot() = %+v", r)
	}
}

func TestSampleScalars_Valid(t *testing.T) {
	s := SampleScalars()
	if !s.Code.Valid() {
		t.Errorf("SampleScalars().Code = %v, want a valid variant", s.Code)
	}
	if s.Skip != "" {
		t.Error("SampleScalars() should leave skipped fields empty")
	}
}

package attrib

// Override interfaces allow records to bypass reflection-based flattening.
// When a record implements one of these interfaces, the Processor calls the
// interface method instead of walking the record's field plans.
//
// Implementations typically list their attributes in a fixed order on the way out
// and call Field once per attribute on the way in, which keeps the per-field
// decode step explicit and testable on its own.

// AttrsMarshaler bypasses reflection when flattening a record.
type AttrsMarshaler interface {
	// MarshalAttrs returns the record's attributes in wire order.
	// Nested records are flattened by appending their attributes.
	MarshalAttrs() ([]Attr, error)
}

// AttrsUnmarshaler bypasses reflection when rebuilding a record.
type AttrsUnmarshaler interface {
	// UnmarshalAttrs populates the receiver from a decoded element.
	// The receiver is a fresh zero value.
	UnmarshalAttrs(el *Element) error
}

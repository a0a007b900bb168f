package attrib

// Option configures a Processor.
type Option func(*options)

type options struct {
	root    string
	rootSet bool
	strict  bool
}

// WithRoot sets the element name written on encode and checked on decode.
// Defaults to the Go type name.
func WithRoot(name string) Option {
	return func(o *options) {
		o.root = name
		o.rootSet = true
	}
}

// WithStrict rejects decoded elements carrying attributes no field claims.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

package attrib

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrGrammar indicates attribute text does not match the target type's grammar.
	ErrGrammar = errors.New("grammar mismatch")

	// ErrOutOfRange indicates a value is well-formed but does not fit the target type.
	ErrOutOfRange = errors.New("out of range")

	// ErrTypeMismatch indicates a decoded value has a shape the target type cannot accept.
	// The field adapter treats this as the signal to retry a value as attribute text.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnsupported indicates the target type has no coercion rules.
	ErrUnsupported = errors.New("unsupported type")

	// ErrMissingAttr indicates a required attribute was absent from the element.
	ErrMissingAttr = errors.New("missing attribute")

	// ErrUnknownAttr indicates an element carried an attribute no field claims (strict mode).
	ErrUnknownAttr = errors.New("unknown attribute")

	// ErrStructure indicates the encoded element has an unexpected shape.
	ErrStructure = errors.New("malformed element")

	// ErrRootMismatch indicates the element name differs from the processor's root name.
	ErrRootMismatch = errors.New("root element mismatch")

	// ErrInvalidTag indicates an attr struct tag has an invalid format or target.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// CoercionError describes a value that could not be converted into its target type.
// Err is one of ErrGrammar, ErrOutOfRange, ErrTypeMismatch or ErrUnsupported.
// The message is for display; match on Err with errors.Is.
type CoercionError struct {
	Err    error  // Underlying sentinel error
	Target string // Go type being produced
	Input  string // Offending text, or the formatted typed value
	Cause  error  // Parser or type-specific error, if any
}

func (e *CoercionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse %s from %q: %v", e.Target, e.Input, e.Cause)
	}
	return fmt.Sprintf("parse %s from %q: %v", e.Target, e.Input, e.Err)
}

func (e *CoercionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// FieldError ties a decode failure to the attribute it occurred on.
type FieldError struct {
	Field string // Attribute name
	Err   error  // CoercionError or ErrMissingAttr/ErrUnknownAttr
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("attribute %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error found while planning a type.
type ConfigError struct {
	Err   error  // Underlying sentinel error (ErrInvalidTag)
	Field string // Go field path that triggered the error
	Cause string // Explanation
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Cause != "" {
		return fmt.Sprintf("%s (field %s): %s", e.Err.Error(), e.Field, e.Cause)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newCoercionError creates a CoercionError.
func newCoercionError(sentinel error, target, input string, cause error) error {
	return &CoercionError{
		Err:    sentinel,
		Target: target,
		Input:  input,
		Cause:  cause,
	}
}

// newConfigError creates a ConfigError for invalid tag scenarios.
func newConfigError(sentinel error, field, cause string) error {
	return &ConfigError{
		Err:   sentinel,
		Field: field,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// StructureError reports a malformed element. Codecs use it to wrap format-specific
// problems so callers can match them with errors.Is(err, ErrStructure).
func StructureError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, args...))
}

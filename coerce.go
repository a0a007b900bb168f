package attrib

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// ParseText parses attribute text into T using T's grammar.
// T must be a built-in scalar kind or implement AttrUnmarshaler through its pointer.
func ParseText[T any](text string) (T, error) {
	var out T
	if err := decodeText(reflect.ValueOf(&out).Elem(), text); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// ParseValue converts a value a decoder already produced in typed form into T.
// Shapes T cannot accept yield an error matching ErrTypeMismatch.
func ParseValue[T any](v any) (T, error) {
	var out T
	if err := decodeTyped(reflect.ValueOf(&out).Elem(), v); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// unmarshalerOf returns rv's AttrUnmarshaler when its pointer implements one.
func unmarshalerOf(rv reflect.Value) (AttrUnmarshaler, bool) {
	if !rv.CanAddr() {
		return nil, false
	}
	u, ok := rv.Addr().Interface().(AttrUnmarshaler)
	return u, ok
}

// supported reports whether rt can be coerced.
func supported(rt reflect.Type) bool {
	if reflect.PointerTo(rt).Implements(reflect.TypeFor[AttrUnmarshaler]()) {
		return true
	}
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
		return true
	}
	return false
}

// decodeText stores the value parsed from text into rv.
func decodeText(rv reflect.Value, text string) error {
	target := rv.Type().String()

	if u, ok := unmarshalerOf(rv); ok {
		if err := u.UnmarshalAttrText(text); err != nil {
			return wrapCoercion(err, ErrGrammar, target, text)
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rv.Type().Bits())
		if err != nil {
			return textError(err, target, text)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(trimPlus(text), 10, rv.Type().Bits())
		if err != nil {
			return textError(err, target, text)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		if hexPrefixed(text) {
			return newCoercionError(ErrGrammar, target, text, nil)
		}
		f, err := strconv.ParseFloat(text, rv.Type().Bits())
		if err != nil {
			return textError(err, target, text)
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return newCoercionError(ErrGrammar, target, text, err)
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(text)
	default:
		return newCoercionError(ErrUnsupported, target, text, nil)
	}
	return nil
}

// decodeTyped stores an already-typed value into rv.
func decodeTyped(rv reflect.Value, src any) error {
	target := rv.Type().String()

	if u, ok := unmarshalerOf(rv); ok {
		if err := u.UnmarshalAttrValue(src); err != nil {
			return wrapCoercion(err, ErrGrammar, target, formatInput(src))
		}
		return nil
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := intValue(src, target)
		if err != nil {
			return err
		}
		if rv.OverflowInt(n) {
			return newCoercionError(ErrOutOfRange, target, formatInput(src), nil)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := uintValue(src, target)
		if err != nil {
			return err
		}
		if rv.OverflowUint(n) {
			return newCoercionError(ErrOutOfRange, target, formatInput(src), nil)
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := floatValue(src, target)
		if err != nil {
			return err
		}
		if !math.IsInf(f, 0) && !math.IsNaN(f) && rv.OverflowFloat(f) {
			return newCoercionError(ErrOutOfRange, target, formatInput(src), nil)
		}
		rv.SetFloat(f)
	case reflect.Bool:
		sv := reflect.ValueOf(src)
		if src == nil || sv.Kind() != reflect.Bool {
			return mismatch(target, src)
		}
		rv.SetBool(sv.Bool())
	case reflect.String:
		s, ok := textOf(src)
		if !ok {
			return mismatch(target, src)
		}
		rv.SetString(s)
	default:
		return newCoercionError(ErrUnsupported, target, formatInput(src), nil)
	}
	return nil
}

func intValue(src any, target string) (int64, error) {
	if num, ok := src.(json.Number); ok {
		n, err := strconv.ParseInt(string(num), 10, 64)
		if err != nil {
			return 0, numberError(err, target, string(num))
		}
		return n, nil
	}
	if src == nil {
		return 0, mismatch(target, src)
	}
	sv := reflect.ValueOf(src)
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return sv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := sv.Uint()
		if u > math.MaxInt64 {
			return 0, newCoercionError(ErrOutOfRange, target, formatInput(src), nil)
		}
		return int64(u), nil
	}
	return 0, mismatch(target, src)
}

func uintValue(src any, target string) (uint64, error) {
	if num, ok := src.(json.Number); ok {
		n, err := strconv.ParseUint(string(num), 10, 64)
		if err != nil {
			if _, ierr := strconv.ParseInt(string(num), 10, 64); ierr == nil {
				return 0, newCoercionError(ErrOutOfRange, target, string(num), nil)
			}
			return 0, numberError(err, target, string(num))
		}
		return n, nil
	}
	if src == nil {
		return 0, mismatch(target, src)
	}
	sv := reflect.ValueOf(src)
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := sv.Int()
		if n < 0 {
			return 0, newCoercionError(ErrOutOfRange, target, formatInput(src), nil)
		}
		return uint64(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return sv.Uint(), nil
	}
	return 0, mismatch(target, src)
}

func floatValue(src any, target string) (float64, error) {
	if num, ok := src.(json.Number); ok {
		f, err := strconv.ParseFloat(string(num), 64)
		if err != nil {
			return 0, numberError(err, target, string(num))
		}
		return f, nil
	}
	if src == nil {
		return 0, mismatch(target, src)
	}
	sv := reflect.ValueOf(src)
	switch sv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(sv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(sv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return sv.Float(), nil
	}
	return 0, mismatch(target, src)
}

// parseBool accepts the lexical and numeric boolean forms only.
func parseBool(text string) (bool, error) {
	switch text {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a valid bool", text)
}

// trimPlus drops a single leading '+' ahead of a digit; strconv.ParseUint rejects signs.
func trimPlus(text string) string {
	if len(text) > 1 && text[0] == '+' && text[1] >= '0' && text[1] <= '9' {
		return text[1:]
	}
	return text
}

// hexPrefixed reports whether text is a hexadecimal literal such as "0x1p4",
// which strconv.ParseFloat accepts but decimal attribute text does not.
func hexPrefixed(text string) bool {
	if text != "" && (text[0] == '+' || text[0] == '-') {
		text = text[1:]
	}
	return len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// textError maps a strconv failure on attribute text.
func textError(err error, target, text string) error {
	if errors.Is(err, strconv.ErrRange) {
		return newCoercionError(ErrOutOfRange, target, text, err)
	}
	return newCoercionError(ErrGrammar, target, text, err)
}

// numberError maps a strconv failure on a typed json.Number. A syntax failure means
// the number has the wrong shape for the target (e.g. a fraction for an integer).
func numberError(err error, target, num string) error {
	if errors.Is(err, strconv.ErrRange) {
		return newCoercionError(ErrOutOfRange, target, num, err)
	}
	return newCoercionError(ErrTypeMismatch, target, num, fmt.Errorf("cannot use number %s", num))
}

func mismatch(target string, src any) error {
	return newCoercionError(ErrTypeMismatch, target, formatInput(src), fmt.Errorf("cannot use %T", src))
}

// wrapCoercion passes CoercionErrors through and wraps anything else under sentinel.
func wrapCoercion(err, sentinel error, target, input string) error {
	var ce *CoercionError
	if errors.As(err, &ce) {
		return err
	}
	return newCoercionError(sentinel, target, input, err)
}

func formatInput(src any) string {
	if s, ok := src.(string); ok {
		return s
	}
	return fmt.Sprint(src)
}

package attrib

import (
	"fmt"
	"reflect"
	"strconv"
)

// FormatText returns the attribute text for v.
func FormatText(v any) (string, error) {
	if m, ok := v.(AttrMarshaler); ok {
		return m.MarshalAttrText()
	}
	if v == nil {
		return "", newCoercionError(ErrUnsupported, "<nil>", "", nil)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.String:
		return rv.String(), nil
	}
	return "", newCoercionError(ErrUnsupported, rv.Type().String(), fmt.Sprint(v), nil)
}

// NativeValue returns v in a form typed codecs can carry: int64, uint64, float32,
// float64, bool or string. AttrMarshaler types supply their own value first.
func NativeValue(v any) (any, error) {
	if m, ok := v.(AttrMarshaler); ok {
		mv, err := m.MarshalAttrValue()
		if err != nil {
			return nil, err
		}
		v = mv
	}
	if v == nil {
		return nil, newCoercionError(ErrUnsupported, "<nil>", "", nil)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32:
		return float32(rv.Float()), nil
	case reflect.Float64:
		return rv.Float(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	}
	return nil, newCoercionError(ErrUnsupported, rv.Type().String(), fmt.Sprint(v), nil)
}

package attrib

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

// Char errors.
var (
	ErrEmptyChar    = errors.New("cannot parse char from empty string")
	ErrTooManyChars = errors.New("too many characters in string")
	ErrInvalidRune  = errors.New("invalid unicode code point")
)

// Char is a single Unicode code point carried as a one-character attribute.
// Typed codecs carry it as a one-character string.
type Char rune

func (c *Char) UnmarshalAttrText(text string) error {
	r, size := utf8.DecodeRuneInString(text)
	switch {
	case text == "":
		return newCoercionError(ErrGrammar, "attrib.Char", text, ErrEmptyChar)
	case r == utf8.RuneError && size == 1:
		return newCoercionError(ErrGrammar, "attrib.Char", text, ErrInvalidRune)
	case size != len(text):
		return newCoercionError(ErrGrammar, "attrib.Char", text, ErrTooManyChars)
	}
	*c = Char(r)
	return nil
}

// UnmarshalAttrValue accepts an integer code point. Strings are left to the text path.
func (c *Char) UnmarshalAttrValue(v any) error {
	n, err := ParseValue[int32](v)
	if err != nil {
		return err
	}
	if !utf8.ValidRune(n) {
		return newCoercionError(ErrOutOfRange, "attrib.Char", strconv.Itoa(int(n)), ErrInvalidRune)
	}
	*c = Char(n)
	return nil
}

func (c Char) MarshalAttrText() (string, error) {
	if !utf8.ValidRune(rune(c)) {
		return "", newCoercionError(ErrOutOfRange, "attrib.Char", strconv.Itoa(int(c)), ErrInvalidRune)
	}
	return string(rune(c)), nil
}

func (c Char) MarshalAttrValue() (any, error) {
	return c.MarshalAttrText()
}

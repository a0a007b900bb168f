// Package xml provides an XML attribute codec implementation.
//
// An element is written as a single self-closing tag whose attributes appear in
// element order:
//
//	<root byte="1" other="1"/>
//
// Decoded attribute values are always strings.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/attrib"
)

// xmlCodec implements attrib.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() attrib.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes el as a self-closing XML element.
func (c *xmlCodec) Marshal(el *attrib.Element) ([]byte, error) {
	if !validName(el.Name) {
		return nil, fmt.Errorf("invalid element name %q", el.Name)
	}

	var buf bytes.Buffer
	buf.WriteByte('<')
	buf.WriteString(el.Name)
	for _, a := range el.Attrs {
		if !validName(a.Name) {
			return nil, fmt.Errorf("invalid attribute name %q", a.Name)
		}
		text, err := attrib.FormatText(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		if !validText(text) {
			return nil, fmt.Errorf("attribute %q: %w: %q is not valid XML text", a.Name, attrib.ErrOutOfRange, text)
		}
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		if err := xml.EscapeText(&buf, []byte(text)); err != nil {
			return nil, err
		}
		buf.WriteByte('"')
	}
	buf.WriteString("/>")
	return buf.Bytes(), nil
}

// Unmarshal decodes a single XML element into el.
// Child elements, text content and prefixed attributes are rejected; xmlns
// declarations are ignored.
func (c *xmlCodec) Unmarshal(data []byte, el *attrib.Element) error {
	dec := xml.NewDecoder(bytes.NewReader(data))

	seen := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if !seen {
				return attrib.StructureError("no root element")
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if seen {
				return attrib.StructureError("unexpected element <%s>", t.Name.Local)
			}
			seen = true
			el.Name = t.Name.Local
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				if a.Name.Space != "" {
					return attrib.StructureError("namespaced attribute %s:%s", a.Name.Space, a.Name.Local)
				}
				if err := el.Add(a.Name.Local, a.Value); err != nil {
					return err
				}
			}
			if err := closeElement(dec, t.Name.Local); err != nil {
				return err
			}
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return attrib.StructureError("unexpected text outside root element")
			}
		}
	}
}

// closeElement consumes tokens up to the root's end tag, allowing only whitespace,
// comments and processing instructions inside it.
func closeElement(dec *xml.Decoder, name string) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return attrib.StructureError("unclosed element <%s>", name)
			}
			return err
		}
		switch t := tok.(type) {
		case xml.EndElement:
			return nil
		case xml.StartElement:
			return attrib.StructureError("nested element <%s> in <%s>", t.Name.Local, name)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return attrib.StructureError("text content in <%s>", name)
			}
		}
	}
}

// validName reports whether name can be written unescaped as an element or attribute name.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\r\n<>&\"'=/")
}

// validText reports whether text is valid UTF-8 made only of runes in the XML Char
// production. Anything else would be replaced on the way out and decode differently.
func validText(text string) bool {
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				return false
			}
		}
		switch {
		case r == 0x09, r == 0x0A, r == 0x0D:
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

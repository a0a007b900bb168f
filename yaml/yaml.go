// Package yaml provides a YAML codec implementation.
//
// An element is written as a block mapping whose keys appear in element order.
// Plain scalars decode typed (int, float, bool); quoted scalars decode as text.
package yaml

import (
	"fmt"

	"github.com/zoobzio/attrib"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements attrib.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() attrib.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes el as a YAML mapping.
func (c *yamlCodec) Marshal(el *attrib.Element) ([]byte, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, a := range el.Attrs {
		v, err := attrib.NativeValue(a.Value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: a.Name}
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("attribute %q: %w", a.Name, err)
		}
		mapping.Content = append(mapping.Content, key, val)
	}
	return yaml.Marshal(mapping)
}

// Unmarshal decodes a flat YAML mapping into el.
func (c *yamlCodec) Unmarshal(data []byte, el *attrib.Element) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return attrib.StructureError("expected a single YAML document")
	}

	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return attrib.StructureError("expected mapping at line %d", mapping.Line)
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return attrib.StructureError("non-scalar key at line %d", key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return attrib.StructureError("key %q is not a scalar at line %d", key.Value, val.Line)
		}
		var v any
		if err := val.Decode(&v); err != nil {
			return err
		}
		if err := el.Add(key.Value, v); err != nil {
			return err
		}
	}
	return nil
}

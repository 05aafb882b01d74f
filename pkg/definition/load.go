package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseJSON builds a tree from a JSON object, preserving key order.
// Numbers are kept as json.Number so they are re-emitted unchanged.
func ParseJSON(data []byte) (*Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	t, ok := v.(*Tree)
	if !ok {
		return nil, ErrNotMapping
	}
	return t, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tree) UnmarshalJSON(data []byte) error {
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		t := New()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			t.put(key, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return t, nil
	case '[':
		list := []any{}
		for dec.More() {
			v, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// ParseYAML builds a tree from a YAML mapping, preserving key order.
// An empty document yields an empty tree.
func ParseYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	if doc.Kind == 0 {
		return New(), nil
	}
	return FromYAMLNode(&doc)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := FromYAMLNode(node)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// FromYAMLNode converts a decoded YAML mapping node into a tree.
func FromYAMLNode(node *yaml.Node) (*Tree, error) {
	v, err := yamlValue(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSource, err)
	}
	t, ok := v.(*Tree)
	if !ok {
		return nil, ErrNotMapping
	}
	return t, nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return New(), nil
		}
		return yamlValue(node.Content[0])
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.MappingNode:
		t := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			t.put(key, v)
		}
		return t, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unsupported yaml node kind %d", node.Kind)
}

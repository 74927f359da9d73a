package vecmap

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotAMapping is returned when YAML input that should describe a map is
// neither null nor a mapping node.
var ErrNotAMapping = errors.New("YAML node is not a mapping")

// MarshalJSON encodes the map as a JSON array of {"key": ..., "value": ...}
// objects in current backing order. JSON object keys must be strings, so the
// generic mapping cannot use a JSON object; the entry-list form keeps
// arbitrary key types round-trippable. An empty map encodes as [].
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	if m.Len() == 0 {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(m.entries)
	if err != nil {
		return nil, fmt.Errorf("vecmap: error marshaling entries to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalJSON decodes a JSON entry list produced by MarshalJSON, replacing
// the map's contents. null decodes to an empty map. Each decoded pair is
// inserted via Insert, so a later duplicate key silently overwrites an
// earlier one. On malformed input the map is left unmodified and a decode
// error is returned.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var entries []Entry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("vecmap: error unmarshaling JSON entry list: %w", err)
	}

	decoded := NewWithCapacity[K, V](len(entries))
	for _, e := range entries {
		decoded.Insert(e.Key, e.Value)
	}

	m.entries = decoded.entries

	return nil
}

// MarshalYAML encodes the map as a YAML mapping node in current backing
// order. YAML mappings allow non-string keys, so this preserves the natural
// key-to-value representation. The node is pre-sized to the element count.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*m.Len()),
	}

	for i := range m.entries {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(m.entries[i].Key); err != nil {
			return nil, fmt.Errorf("vecmap: error encoding key as YAML: %w", err)
		}

		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.entries[i].Value); err != nil {
			return nil, fmt.Errorf("vecmap: error encoding value as YAML: %w", err)
		}

		node.Content = append(node.Content, keyNode, valueNode)
	}

	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into the map, replacing its contents.
// A null node decodes to an empty map. Each decoded pair is inserted via
// Insert, so a later duplicate key silently overwrites an earlier one. On
// malformed input the map is left unmodified and a decode error is returned.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		m.entries = nil

		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("vecmap: %w (got %s)", ErrNotAMapping, node.Tag)
	}

	decoded := NewWithCapacity[K, V](len(node.Content) / 2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("vecmap: error decoding YAML key: %w", err)
		}

		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("vecmap: error decoding YAML value: %w", err)
		}

		decoded.Insert(key, value)
	}

	m.entries = decoded.entries

	return nil
}

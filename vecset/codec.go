package vecset

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotASequence is returned when YAML input that should describe a set is
// neither null nor a sequence node.
var ErrNotASequence = errors.New("YAML node is not a sequence")

// MarshalJSON encodes the set as a plain JSON array of its elements in
// current backing order. An empty set encodes as [].
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	if s.Len() == 0 {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(s.Entries())
	if err != nil {
		return nil, fmt.Errorf("vecset: error marshaling elements to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalJSON decodes a JSON array of elements, replacing the set's
// contents. null decodes to an empty set. Each element is inserted via Add,
// so duplicates in the input collapse silently. On malformed input the set
// is left unmodified and a decode error is returned.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("vecset: error unmarshaling JSON element list: %w", err)
	}

	decoded := NewWithCapacity[T](len(values))
	decoded.AddAll(values...)

	s.m = decoded.m

	return nil
}

// MarshalYAML encodes the set as a YAML sequence of its elements in current
// backing order.
func (s *Set[T]) MarshalYAML() (any, error) {
	return s.Entries(), nil
}

// UnmarshalYAML decodes a YAML sequence into the set, replacing its
// contents. A null node decodes to an empty set. Each element is inserted
// via Add, so duplicates in the input collapse silently. On malformed input
// the set is left unmodified and a decode error is returned.
func (s *Set[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		s.Clear()

		return nil
	}

	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("vecset: %w (got %s)", ErrNotASequence, node.Tag)
	}

	decoded := NewWithCapacity[T](len(node.Content))

	for _, item := range node.Content {
		var value T
		if err := item.Decode(&value); err != nil {
			return fmt.Errorf("vecset: error decoding YAML element: %w", err)
		}

		decoded.Add(value)
	}

	s.m = decoded.m

	return nil
}

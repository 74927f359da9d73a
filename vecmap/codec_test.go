package vecmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("empty map", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(New[string, int]())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))

		decoded := New[string, int]()
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.Equal(t, 0, decoded.Len())
	})

	t.Run("single entry", func(t *testing.T) {
		t.Parallel()

		m := New[string, int]()
		m.Insert("a", 1)

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"key":"a","value":1}]`, string(data))

		decoded := New[string, int]()
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, Equal(m, decoded))
	})

	t.Run("many entries", func(t *testing.T) {
		t.Parallel()

		m := New[int, string]()
		for i := range 100 {
			m.Insert(i, string(rune('a'+i%26)))
		}

		data, err := json.Marshal(m)
		require.NoError(t, err)

		decoded := New[int, string]()
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, Equal(m, decoded))
	})

	t.Run("non-string keys survive the round trip", func(t *testing.T) {
		t.Parallel()

		type point struct {
			X int `json:"x"`
			Y int `json:"y"`
		}

		m := New[point, string]()
		m.Insert(point{X: 1, Y: 2}, "origin-ish")

		data, err := json.Marshal(m)
		require.NoError(t, err)

		decoded := New[point, string]()
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, Equal(m, decoded))
	})
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("null decodes to an empty map", func(t *testing.T) {
		t.Parallel()

		decoded := New[string, int]()
		decoded.Insert("stale", 1)

		require.NoError(t, json.Unmarshal([]byte(`null`), decoded))
		assert.Equal(t, 0, decoded.Len())
	})

	t.Run("later duplicate keys overwrite earlier ones", func(t *testing.T) {
		t.Parallel()

		input := `[{"key":"a","value":1},{"key":"a","value":2}]`

		decoded := New[string, int]()
		require.NoError(t, json.Unmarshal([]byte(input), decoded))

		assert.Equal(t, 1, decoded.Len())
		assert.Equal(t, 2, decoded.GetOrElse("a", -1))
	})

	t.Run("malformed input returns an error and leaves the map unmodified", func(t *testing.T) {
		t.Parallel()

		decoded := New[string, int]()
		decoded.Insert("kept", 7)

		err := json.Unmarshal([]byte(`{"not":"a list"}`), decoded)
		require.Error(t, err)
		assert.Equal(t, 1, decoded.Len())
		assert.Equal(t, 7, decoded.GetOrElse("kept", -1))
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("encodes as a YAML mapping", func(t *testing.T) {
		t.Parallel()

		m := New[string, int]()
		m.Insert("a", 1)

		data, err := yaml.Marshal(m)
		require.NoError(t, err)
		assert.YAMLEq(t, "a: 1\n", string(data))
	})

	t.Run("round trips zero one and many entries", func(t *testing.T) {
		t.Parallel()

		for _, size := range []int{0, 1, 50} {
			m := New[int, string]()
			for i := range size {
				m.Insert(i, string(rune('a'+i%26)))
			}

			data, err := yaml.Marshal(m)
			require.NoError(t, err)

			decoded := New[int, string]()
			require.NoError(t, yaml.Unmarshal(data, decoded))
			assert.True(t, Equal(m, decoded), "size %d", size)
		}
	})

	t.Run("non-string keys are legal YAML mapping keys", func(t *testing.T) {
		t.Parallel()

		m := New[int, string]()
		m.Insert(42, "answer")

		data, err := yaml.Marshal(m)
		require.NoError(t, err)
		assert.YAMLEq(t, "42: answer\n", string(data))

		decoded := New[int, string]()
		require.NoError(t, yaml.Unmarshal(data, decoded))
		assert.True(t, Equal(m, decoded))
	})

	t.Run("null node decodes to an empty map", func(t *testing.T) {
		t.Parallel()

		decoded := New[string, int]()
		decoded.Insert("stale", 1)

		nullNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}

		require.NoError(t, decoded.UnmarshalYAML(nullNode))
		assert.Equal(t, 0, decoded.Len())
	})

	t.Run("non-mapping input returns ErrNotAMapping", func(t *testing.T) {
		t.Parallel()

		decoded := New[string, int]()

		err := yaml.Unmarshal([]byte("- 1\n- 2\n"), decoded)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotAMapping)
	})
}

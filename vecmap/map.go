// Package vecmap implements a map backed by a single contiguous slice of
// key-value entries, answering every lookup with a linear scan.
//
// Most operations are O(n), including ones that are O(1) on the builtin map.
// For small collections (up to a few hundred entries for simple key types)
// scanning a contiguous slice is more branch- and cache-predictable than
// hashing, and tends to win on constant factors. Above that, use the builtin
// map instead.
//
// To keep removal fast, the container makes no guarantee on entry ordering,
// nor on the stability of that ordering across mutations: Remove overwrites
// the removed slot with the last entry.
//
// Equality between two maps (see Equal and EqualFunc) is set equality of
// their entries, not sequence equality, and performs worst for maps that are
// permutations of each other.
//
// A Map is not safe for concurrent use. Callers that share one across
// goroutines must synchronize externally.
package vecmap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-vecmap/zero"
)

// Entry is a single key-value slot in the map's backing slice.
// It is exported so that the unsafe accessors (UnsafeEntries, UnsafeAppend)
// and the codec layer can work with the raw storage representation.
type Entry[K comparable, V any] struct {
	Key   K `json:"key"   yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Map is a slice-backed associative container for small key counts.
// The zero value is an empty map ready for use, though most callers
// construct one with New or NewWithCapacity.
//
// Invariant: at most one entry exists per distinct key. Only the Unsafe*
// accessors can violate this, and then lookup behavior is undefined until
// the caller restores it.
type Map[K comparable, V any] struct {
	// entries is the sole storage. Order is unspecified and changes on removal.
	entries []Entry[K, V]
}

// New creates an empty Map.
//
// Example:
//
//	m := vecmap.New[string, int]()
//	m.Insert("answer", 42)
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewWithCapacity creates an empty Map with backing storage pre-sized for
// capacity entries. Use this when the expected size is known in advance to
// avoid reallocation during initial population.
func NewWithCapacity[K comparable, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		entries: make([]Entry[K, V], 0, capacity),
	}
}

// FromEntries creates a Map holding the given entries.
// Entries are inserted in order, so a later duplicate key overwrites an
// earlier one, consistent with Insert.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := NewWithCapacity[K, V](len(entries))
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}

	return m
}

// Collect creates a Map from a key-value sequence.
// Later duplicate keys overwrite earlier ones, consistent with Insert.
//
// Example:
//
//	m := vecmap.Collect(maps.All(map[string]int{"a": 1, "b": 2}))
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	for key, value := range seq {
		m.Insert(key, value)
	}

	return m
}

// Len returns the number of entries currently stored in the map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// Cap returns the number of entries the map can hold without reallocating
// its backing storage.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}

	return cap(m.entries)
}

// index returns the position of the entry with the given key, or -1.
func (m *Map[K, V]) index(key K) int {
	for i := range m.entries {
		if m.entries[i].Key == key {
			return i
		}
	}

	return -1
}

// Insert adds a key-value pair to the map. If the key is already present,
// its value is replaced and the previous value is returned with
// replaced=true; the entry count is unchanged. Otherwise the pair is
// appended, the count grows by one, and replaced is false.
//
// Appending may grow the backing storage, which invalidates pointers
// previously obtained from GetPtr or UnsafeEntries.
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if i := m.index(key); i >= 0 {
		previous = m.entries[i].Value
		m.entries[i].Value = value

		return previous, true
	}

	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})

	return zero.Value[V](), false
}

// Get retrieves the value for the given key.
// If the key exists, returns the value with found=true. If the key doesn't
// exist, returns a zero value with found=false. Cost is O(n).
func (m *Map[K, V]) Get(key K) (value V, found bool) {
	if i := m.index(key); i >= 0 {
		return m.entries[i].Value, true
	}

	return zero.Value[V](), false
}

// GetOrElse retrieves the value for the given key, or returns defaultValue
// if the key doesn't exist.
func (m *Map[K, V]) GetOrElse(key K, defaultValue V) V {
	if value, found := m.Get(key); found {
		return value
	}

	return defaultValue
}

// GetPtr returns a pointer to the value slot for the given key, or nil if the
// key doesn't exist. The pointer aliases the backing storage: mutating
// through it updates the map in place.
//
// The pointer is invalidated by any growth-triggering Insert and by any
// Remove (which may move the last entry into another slot). Do not hold it
// across mutations.
//
// Example:
//
//	if v := m.GetPtr("counter"); v != nil {
//	    *v++
//	}
func (m *Map[K, V]) GetPtr(key K) *V {
	if i := m.index(key); i >= 0 {
		return &m.entries[i].Value
	}

	return nil
}

// GetPair retrieves the full entry for the given key.
// The entry is returned by value; mutating it does not affect the map.
func (m *Map[K, V]) GetPair(key K) (Entry[K, V], bool) {
	if i := m.index(key); i >= 0 {
		return m.entries[i], true
	}

	return Entry[K, V]{}, false
}

// Contains reports whether the given key exists in the map. Cost is O(n).
func (m *Map[K, V]) Contains(key K) bool {
	return m.index(key) >= 0
}

// Remove deletes the entry for the given key, returning its value and true
// if it existed. The scan is O(n); the removal itself is O(1): the found
// slot is overwritten with the last entry and the storage shrinks by one
// (swap-remove). Relative order of the remaining entries is not preserved,
// and pointers to both the removed slot and the former last slot are
// invalidated.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	i := m.index(key)
	if i < 0 {
		return zero.Value[V](), false
	}

	return m.removeAt(i), true
}

// removeAt swap-removes the entry at position i and returns its value.
func (m *Map[K, V]) removeAt(i int) V {
	last := len(m.entries) - 1
	removed := m.entries[i].Value

	m.entries[i] = m.entries[last]
	m.entries[last] = Entry[K, V]{} // release the moved slot for GC
	m.entries = m.entries[:last]

	return removed
}

// Retain keeps only the entries for which keep returns true, removing the
// rest in place. Like Remove, it uses swap-removal and does not preserve the
// relative order of the surviving entries.
func (m *Map[K, V]) Retain(keep func(key K, value V) bool) {
	for i := 0; i < len(m.entries); {
		if keep(m.entries[i].Key, m.entries[i].Value) {
			i++

			continue
		}

		m.removeAt(i)
	}
}

// Clear removes all entries, keeping the allocated backing storage for reuse.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
}

// Grow ensures the backing storage has room for n more entries without
// reallocating. Growing invalidates pointers previously obtained from GetPtr,
// AllPtr, or UnsafeEntries.
func (m *Map[K, V]) Grow(n int) {
	m.entries = slices.Grow(m.entries, n)
}

// Clip releases unused backing capacity, shrinking the storage to the current
// entry count. Useful after a build-then-shrink phase when the map will be
// held for a long time.
func (m *Map[K, V]) Clip() {
	m.entries = slices.Clip(m.entries)
}

// Drain returns an iterator over the key-value pairs that empties the map.
// The map is cleared when the sequence finishes, whether it was consumed
// fully or stopped early; the backing storage is kept for reuse.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer m.Clear()

		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// Clone creates a shallow copy of the map. Keys and values are copied by
// assignment; anything they reference is shared between the two maps.
// Returns nil if the receiver is nil.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}

	out := NewWithCapacity[K, V](len(m.entries))
	out.entries = append(out.entries, m.entries...)

	return out
}

// Keys returns an iterator over the keys in current backing order.
// The order is unspecified and not stable across mutations. Each call
// produces a fresh sequence; compatible with Go 1.23+ range-over-func:
//
//	for key := range m.Keys() { ... }
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in current backing order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Value) {
				return
			}
		}
	}
}

// All returns an iterator over the key-value pairs in current backing order.
// The order is unspecified and not stable across mutations. Each call
// produces a fresh sequence.
//
//	for key, value := range m.All() { ... }
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, m.entries[i].Value) {
				return
			}
		}
	}
}

// AllPtr returns an iterator over keys and pointers to the corresponding
// value slots, for mutating values in place during iteration:
//
//	for _, v := range m.AllPtr() { *v *= 2 }
//
// Keys are yielded by value, so the uniqueness invariant cannot be broken
// this way. The pointers alias the backing storage and are invalidated by
// any mutation of the map; do not hold them past the loop body.
func (m *Map[K, V]) AllPtr() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].Key, &m.entries[i].Value) {
				return
			}
		}
	}
}

// Entries returns a copy of all entries in current backing order.
// Mutating the returned slice does not affect the map; for direct access to
// the live storage see UnsafeEntries.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.entries))
	copy(out, m.entries)

	return out
}

// String returns a map-like representation for debugging.
// Entry order follows the current backing order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder

	sb.WriteString("vecmap.Map{")

	for i := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v: %v", m.entries[i].Key, m.entries[i].Value)
	}

	sb.WriteByte('}')

	return sb.String()
}

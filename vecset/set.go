// Package vecset implements a set backed by a vecmap.Map whose value slots
// are the zero-size empty.T marker: the inner map's key set is exactly the
// set's element set.
//
// Every operation delegates to the inner map, so membership tests stay O(n)
// linear scans and the same small-collection performance tradeoffs apply.
// Element ordering is unspecified and not stable across mutations.
//
// A Set is not safe for concurrent use. Callers that share one across
// goroutines must synchronize externally.
package vecset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/amp-labs/amp-vecmap/compare"
	"github.com/amp-labs/amp-vecmap/empty"
	"github.com/amp-labs/amp-vecmap/vecmap"
)

// Set is a collection of unique elements stored in a slice-backed map.
// Uniqueness is determined by Go's == operator on the element type.
type Set[T comparable] struct {
	m vecmap.Map[T, empty.T]
}

// New creates an empty Set.
//
// Example:
//
//	s := vecset.New[int]()
//	s.Add(1)
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// NewWithCapacity creates an empty Set with backing storage pre-sized for
// capacity elements.
func NewWithCapacity[T comparable](capacity int) *Set[T] {
	s := New[T]()
	s.m = *vecmap.NewWithCapacity[T, empty.T](capacity)

	return s
}

// FromValues creates a Set holding the given values, ignoring duplicates.
func FromValues[T comparable](values ...T) *Set[T] {
	s := NewWithCapacity[T](len(values))
	s.AddAll(values...)

	return s
}

// Collect creates a Set from a sequence of values, ignoring duplicates.
func Collect[T comparable](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for v := range seq {
		s.Add(v)
	}

	return s
}

// Add adds a value to the set.
// Returns true if the value was newly inserted, false if it was already present.
func (s *Set[T]) Add(value T) bool {
	_, replaced := s.m.Insert(value, empty.V)

	return !replaced
}

// AddAll adds multiple values to the set, ignoring duplicates.
func (s *Set[T]) AddAll(values ...T) {
	for _, v := range values {
		s.Add(v)
	}
}

// Remove removes a value from the set.
// Returns true if the value was present. Removal does not preserve the
// relative order of the remaining elements.
func (s *Set[T]) Remove(value T) bool {
	_, removed := s.m.Remove(value)

	return removed
}

// Contains reports whether the set holds the given value. Cost is O(n).
func (s *Set[T]) Contains(value T) bool {
	return s.m.Contains(value)
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return s.m.Len()
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes all elements, keeping the allocated backing storage for reuse.
func (s *Set[T]) Clear() {
	s.m.Clear()
}

// Grow ensures the backing storage has room for n more elements without
// reallocating.
func (s *Set[T]) Grow(n int) {
	s.m.Grow(n)
}

// Clip releases unused backing capacity, shrinking the storage to the
// current element count.
func (s *Set[T]) Clip() {
	s.m.Clip()
}

// Drain returns an iterator over the elements that empties the set.
// The set is cleared when the sequence finishes, whether it was consumed
// fully or stopped early; the backing storage is kept for reuse.
func (s *Set[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.m.Drain() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone creates a copy of the set. Returns nil if the receiver is nil.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil {
		return nil
	}

	out := New[T]()
	out.m = *s.m.Clone()

	return out
}

// Retain keeps only the elements for which keep returns true, removing the
// rest in place.
func (s *Set[T]) Retain(keep func(value T) bool) {
	s.m.Retain(func(key T, _ empty.T) bool {
		return keep(key)
	})
}

// All returns an iterator over the elements in current backing order.
// The order is unspecified and not stable across mutations. Each call
// produces a fresh sequence; compatible with Go 1.23+ range-over-func:
//
//	for v := range s.All() { ... }
func (s *Set[T]) All() iter.Seq[T] {
	return s.m.Keys()
}

// Entries returns all elements as a slice in current backing order.
// Mutating the returned slice does not affect the set.
func (s *Set[T]) Entries() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Equal reports whether two sets hold the same elements, regardless of
// internal ordering: same size, and every element of a found in b.
// A nil set is equal to an empty one.
func Equal[T comparable](a, b *Set[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	if a.Len() == 0 {
		return true
	}

	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}

	return true
}

// ContainsBy reports whether any element is matched by the probe, using the
// one-directional equality relation eq. The probe type need not equal the
// element type.
func ContainsBy[T comparable, Q any](s *Set[T], probe Q, eq func(probe Q, value T) bool) bool {
	return vecmap.ContainsBy(&s.m, probe, eq)
}

// RemoveBy removes the first element matched by the probe, returning true
// if one existed.
func RemoveBy[T comparable, Q any](s *Set[T], probe Q, eq func(probe Q, value T) bool) bool {
	_, removed := vecmap.RemoveBy(&s.m, probe, eq)

	return removed
}

// ContainsProbe reports whether any element is matched by the probe.
func ContainsProbe[T comparable](s *Set[T], probe compare.Probe[T]) bool {
	return vecmap.ContainsProbe(&s.m, probe)
}

// RemoveProbe removes the first element matched by the probe, returning
// true if one existed.
func RemoveProbe[T comparable](s *Set[T], probe compare.Probe[T]) bool {
	_, removed := vecmap.RemoveProbe(&s.m, probe)

	return removed
}

// String returns a set-like representation for debugging.
// Element order follows the current backing order.
func (s *Set[T]) String() string {
	var sb strings.Builder

	sb.WriteString("vecset.Set{")

	first := true

	for v := range s.All() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v", v)
	}

	sb.WriteByte('}')

	return sb.String()
}

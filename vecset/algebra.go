package vecset

import (
	"iter"

	"github.com/amp-labs/amp-vecmap/empty"
)

// The algebra methods return lazy sequences composed from All and Contains:
// no intermediate storage is allocated, and each call produces a fresh
// sequence with no cursor state shared between calls. The *Set variants
// materialize the same sequences into new owned sets.

// chain concatenates two sequences into one, preserving finiteness.
func chain[T any](first, second iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range first {
			if !yield(v) {
				return
			}
		}

		for v := range second {
			if !yield(v) {
				return
			}
		}
	}
}

// Difference returns a lazy sequence of the elements of s that are not in
// other. Difference is not symmetric: s.Difference(other) and
// other.Difference(s) yield different element sets in general.
//
// Example:
//
//	a := vecset.FromValues(1, 2, 3)
//	b := vecset.FromValues(2, 3, 4)
//	// a.Difference(b) yields 1; b.Difference(a) yields 4.
func (s *Set[T]) Difference(other *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.All() {
			if !other.Contains(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// SymmetricDifference returns a lazy sequence of the elements in exactly one
// of the two sets: s.Difference(other) followed by other.Difference(s).
// As sets the operands commute: s.SymmetricDifference(other) and
// other.SymmetricDifference(s) yield the same elements.
func (s *Set[T]) SymmetricDifference(other *Set[T]) iter.Seq[T] {
	return chain(s.Difference(other), other.Difference(s))
}

// Intersection returns a lazy sequence of the elements of s that are also in
// other.
func (s *Set[T]) Intersection(other *Set[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.All() {
			if other.Contains(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Union returns a lazy sequence of the elements in either set: all of s
// followed by other.Difference(s), so shared elements are yielded once.
func (s *Set[T]) Union(other *Set[T]) iter.Seq[T] {
	return chain(s.All(), other.Difference(s))
}

// DifferenceSet materializes s.Difference(other) into a new owned set.
func (s *Set[T]) DifferenceSet(other *Set[T]) *Set[T] {
	return collectDisjoint(s.Len(), s.Difference(other))
}

// SymmetricDifferenceSet materializes s.SymmetricDifference(other) into a
// new owned set.
func (s *Set[T]) SymmetricDifferenceSet(other *Set[T]) *Set[T] {
	return collectDisjoint(s.Len()+other.Len(), s.SymmetricDifference(other))
}

// IntersectionSet materializes s.Intersection(other) into a new owned set.
func (s *Set[T]) IntersectionSet(other *Set[T]) *Set[T] {
	return collectDisjoint(s.Len(), s.Intersection(other))
}

// UnionSet materializes s.Union(other) into a new owned set.
func (s *Set[T]) UnionSet(other *Set[T]) *Set[T] {
	return collectDisjoint(s.Len()+other.Len(), s.Union(other))
}

// collectDisjoint builds a set from a sequence already known to yield
// distinct elements, so each one is appended without a uniqueness scan.
// Every algebra sequence qualifies: each draws from the key set of one or
// both operands and filters, never duplicating an element.
func collectDisjoint[T comparable](sizeHint int, seq iter.Seq[T]) *Set[T] {
	out := NewWithCapacity[T](sizeHint)
	for v := range seq {
		out.m.UnsafeAppend(v, empty.V)
	}

	return out
}

// IsDisjoint reports whether the two sets have no elements in common,
// equivalent to an empty intersection. Short-circuits on the first shared
// element.
func (s *Set[T]) IsDisjoint(other *Set[T]) bool {
	for v := range s.All() {
		if other.Contains(v) {
			return false
		}
	}

	return true
}

// IsSubset reports whether every element of s is in other.
// Short-circuits on the first missing element.
func (s *Set[T]) IsSubset(other *Set[T]) bool {
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// IsSuperset reports whether every element of other is in s.
// s.IsSuperset(other) is exactly other.IsSubset(s).
func (s *Set[T]) IsSuperset(other *Set[T]) bool {
	return other.IsSubset(s)
}

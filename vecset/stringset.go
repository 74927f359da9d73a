package vecset

import (
	"sort"

	"facette.io/natsort"
)

// StringSet is a specialized Set for string elements.
// It provides additional methods for sorting entries.
type StringSet struct {
	set Set[string]
}

// NewStringSet creates an empty StringSet.
func NewStringSet() *StringSet {
	return &StringSet{}
}

// StringSetOf creates a StringSet holding the given values, ignoring duplicates.
func StringSetOf(values ...string) *StringSet {
	s := NewStringSet()
	s.AddAll(values...)

	return s
}

// Add adds a single string element to the set.
// Returns true if the element was newly inserted.
func (s *StringSet) Add(element string) bool {
	return s.set.Add(element)
}

// AddAll adds multiple string elements to the set.
func (s *StringSet) AddAll(elements ...string) {
	s.set.AddAll(elements...)
}

// Remove removes a string element from the set.
// Returns true if the element was present.
func (s *StringSet) Remove(element string) bool {
	return s.set.Remove(element)
}

// Contains checks if a string element exists in the set.
func (s *StringSet) Contains(element string) bool {
	return s.set.Contains(element)
}

// Clear removes all elements from the set.
func (s *StringSet) Clear() {
	s.set.Clear()
}

// Size returns the number of elements in the set.
func (s *StringSet) Size() int {
	return s.set.Len()
}

// Entries returns all string elements in the set. The order is not guaranteed.
func (s *StringSet) Entries() []string {
	return s.set.Entries()
}

// SortedEntries returns all string elements in the set sorted alphabetically.
func (s *StringSet) SortedEntries() []string {
	items := s.Entries()

	sort.Strings(items)

	return items
}

// NaturalSortedEntries returns all string elements in the set sorted using natural sort order.
// Natural sort treats numbers within strings numerically (e.g., "file2" comes before "file10").
func (s *StringSet) NaturalSortedEntries() []string {
	items := s.Entries()

	natsort.Sort(items)

	return items
}

// Union returns a new StringSet containing all elements from both sets.
func (s *StringSet) Union(other *StringSet) *StringSet {
	out := NewStringSet()
	out.set = *s.set.UnionSet(&other.set)

	return out
}

// Intersection returns a new StringSet containing only elements present in both sets.
func (s *StringSet) Intersection(other *StringSet) *StringSet {
	out := NewStringSet()
	out.set = *s.set.IntersectionSet(&other.set)

	return out
}

// Difference returns a new StringSet containing the elements of s not present in other.
func (s *StringSet) Difference(other *StringSet) *StringSet {
	out := NewStringSet()
	out.set = *s.set.DifferenceSet(&other.set)

	return out
}

package vecmap

// Equal reports whether two maps hold the same set of key-value pairs.
// Entry order is irrelevant: maps built from permuted insertion sequences
// compare equal.
//
// The check is staged by ascending cost to exploit common cases:
//  1. O(1) rejection if the lengths differ;
//  2. O(n) acceptance if the backing slices are pairwise identical, the
//     common case for maps built via identical insertion sequences;
//  3. O(n²) cross-lookup of every left entry in the right map otherwise,
//     short-circuiting on the first miss or value mismatch.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq, allowing value types
// that are not comparable or that differ between the two maps.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	if a.Len() == 0 {
		return true
	}

	identical := true

	for i := range a.entries {
		if a.entries[i].Key != b.entries[i].Key || !eq(a.entries[i].Value, b.entries[i].Value) {
			identical = false

			break
		}
	}

	if identical {
		return true
	}

	for i := range a.entries {
		value, found := b.Get(a.entries[i].Key)
		if !found || !eq(a.entries[i].Value, value) {
			return false
		}
	}

	return true
}

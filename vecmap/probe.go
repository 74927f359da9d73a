package vecmap

import (
	"github.com/amp-labs/amp-vecmap/compare"
	"github.com/amp-labs/amp-vecmap/zero"
)

// The *By and *Probe functions look entries up with a probe value whose type
// differs from the stored key type. Only the probe needs to know the
// equality relation, so callers can search with a borrowed or view type
// (a field, a prefix, an ID) without constructing an owned key.
//
// These live at package level rather than as methods because Go methods
// cannot introduce the extra probe type parameter.

// indexBy returns the position of the first entry whose key the probe
// matches, or -1.
func indexBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) int {
	for i := range m.entries {
		if eq(probe, m.entries[i].Key) {
			return i
		}
	}

	return -1
}

// GetBy retrieves the value for the first key matched by the probe, using
// the one-directional equality relation eq. Cost is O(n).
//
// Example:
//
//	type userID struct{ Name string; Serial int }
//
//	// Look up by name alone, without building a full userID.
//	v, found := vecmap.GetBy(m, "alice", func(name string, k userID) bool {
//	    return k.Name == name
//	})
func GetBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) (V, bool) {
	if i := indexBy(m, probe, eq); i >= 0 {
		return m.entries[i].Value, true
	}

	return zero.Value[V](), false
}

// GetPtrBy returns a pointer to the value slot for the first key matched by
// the probe, or nil. The same invalidation rules as GetPtr apply.
func GetPtrBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) *V {
	if i := indexBy(m, probe, eq); i >= 0 {
		return &m.entries[i].Value
	}

	return nil
}

// GetPairBy retrieves the full entry for the first key matched by the probe.
func GetPairBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) (Entry[K, V], bool) {
	if i := indexBy(m, probe, eq); i >= 0 {
		return m.entries[i], true
	}

	return Entry[K, V]{}, false
}

// ContainsBy reports whether any key is matched by the probe.
func ContainsBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) bool {
	return indexBy(m, probe, eq) >= 0
}

// RemoveBy swap-removes the first entry whose key the probe matches,
// returning its value and true if one existed.
func RemoveBy[K comparable, V any, Q any](m *Map[K, V], probe Q, eq func(probe Q, key K) bool) (V, bool) {
	i := indexBy(m, probe, eq)
	if i < 0 {
		return zero.Value[V](), false
	}

	return m.removeAt(i), true
}

// GetProbe retrieves the value for the first key matched by the probe,
// using the compare.Probe capability instead of a bare function.
func GetProbe[K comparable, V any](m *Map[K, V], probe compare.Probe[K]) (V, bool) {
	return GetBy(m, probe, compare.Probe[K].Matches)
}

// ContainsProbe reports whether any key is matched by the probe.
func ContainsProbe[K comparable, V any](m *Map[K, V], probe compare.Probe[K]) bool {
	return ContainsBy(m, probe, compare.Probe[K].Matches)
}

// RemoveProbe swap-removes the first entry whose key the probe matches,
// returning its value and true if one existed.
func RemoveProbe[K comparable, V any](m *Map[K, V], probe compare.Probe[K]) (V, bool) {
	return RemoveBy(m, probe, compare.Probe[K].Matches)
}

package vecmap

// The Unsafe* accessors expose the backing slice directly for bulk
// operations that the method surface would make slower (un-boxed iteration,
// batch loads of pre-deduplicated data). They can break the key-uniqueness
// invariant; nothing checks or repairs it at runtime. With duplicate keys in
// storage, lookups return the first match and Remove drops only one
// occurrence, so the caller must re-establish uniqueness before relying on
// lookup correctness again.

// UnsafeEntries returns the live backing slice. Mutating it mutates the map.
//
// Reordering or rewriting values in place is safe. Rewriting keys is not
// checked: introducing a duplicate key breaks the uniqueness invariant.
// The slice header is invalidated by any growth-triggering Insert and by
// Remove; re-fetch it after mutations through the map's methods.
func (m *Map[K, V]) UnsafeEntries() []Entry[K, V] {
	return m.entries
}

// UnsafeAppend pushes a key-value pair onto the end of the backing slice
// without scanning for an existing entry. It is O(1) where Insert is O(n),
// which matters when bulk-loading input that is already known to hold
// distinct keys. Appending a key that is already present breaks the
// uniqueness invariant.
func (m *Map[K, V]) UnsafeAppend(key K, value V) {
	m.entries = append(m.entries, Entry[K, V]{Key: key, Value: value})
}

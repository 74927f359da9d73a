// Package compare provides equality capabilities used by the vecmap and vecset
// containers, including the probe capability that lets a value of one type be
// matched against stored keys of another type.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Probe is the capability of being matched against a stored key of type K
// without being a K itself. The relation is one-directional: the probe knows
// how to recognize a key, but keys know nothing about the probe. This lets
// callers look up entries with a borrowed or view type (a field, a prefix,
// an ID) without constructing a full key value.
//
// Example:
//
//	type byName string
//
//	func (p byName) Matches(u User) bool { return string(p) == u.Name }
//
//	value, found := vecmap.GetProbe(users, byName("alice"))
type Probe[K any] interface {
	Matches(key K) bool
}

// ProbeFunc adapts a plain predicate function to the Probe interface.
//
// Example:
//
//	p := compare.ProbeFunc[User](func(u User) bool { return u.ID == 42 })
//	found := vecmap.ContainsProbe(users, p)
type ProbeFunc[K any] func(key K) bool

// Matches reports whether the wrapped predicate accepts the given key.
func (f ProbeFunc[K]) Matches(key K) bool {
	return f(key)
}

// Package empty provides the zero-size placeholder value used by set-like
// containers in this module.
//
// A set is a map whose values carry no information. Using empty.T as the
// value type makes that explicit and costs zero bytes per entry.
//
// Example usage:
//
//	inner := vecmap.New[int, empty.T]()
//	inner.Insert(42, empty.V)
package empty

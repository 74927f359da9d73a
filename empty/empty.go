package empty

// T is an empty struct type that occupies zero bytes of memory.
// The vecset package stores its elements as the keys of a
// vecmap.Map[E, empty.T]: the value slot carries no information,
// only the presence of a key matters.
//
// Example:
//
//	inner := vecmap.New[string, empty.T]()
//	inner.Insert("member", empty.V)
type T struct{}

// V is a pre-allocated instance of the empty struct T.
// Use this to avoid spelling out the empty composite literal.
//
// Example:
//
//	m.Insert(key, empty.V)
var V = T{}

// P is a pointer to the pre-allocated empty struct V.
// Use this when you need a pointer to an empty struct.
var P = &V

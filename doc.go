// Package tuple provides struct types that hold a specific number of
// values, each with its own type, together with the operations relating
// those types to each other: the Tuple arity marker and the Concat_m_j
// family that joins an m-tuple and a j-tuple into an (m+j)-tuple.
//
// See the split package for the inverse operation, dividing a tuple into a
// left prefix and a right suffix at a point fixed at compile time. For
// every tuple t and every index k in [0, len],
//
//	tuple.Concat_k_j(split.At_n_k(t)) == t
//
// The types and operations in this package are generated. The maximum
// supported arity is chosen when the package is regenerated; see
// cmd/tuplegen. Raising it adds specializations quadratically and costs
// compile time only, never run time.
package tuple

//go:generate go run github.com/tuplekit/tuple/cmd/tuplegen --max-arity 16 --dir .

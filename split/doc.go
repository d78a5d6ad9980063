// Package split divides a tuple into a left prefix and a right suffix at a
// split point fixed at compile time. There is no runtime dispatch: every
// supported (arity, split point) pair has its own generated function, and
// calling code selects one by name and ordinary type inference.
//
// The names of the functions in this package match the following regular
// expression:
//
//	(At|LeftInto|RightInto|Into)_[0-9]+_[0-9]+
//
// The first number is the arity of the source tuple; the second is the
// split point, counted from zero at the start of the tuple. A split point
// of 0 yields an empty left tuple; a split point equal to the arity yields
// an empty right tuple.
//
// So, for example:
//
//	l, r := split.At_3_2(tuple.T3[uint8, float32, string]{1, 1.0, "test"})
//
// sets l to tuple.T2[uint8, float32]{1, 1.0} and r to tuple.T1[string]{"test"}.
//
// The LeftInto, RightInto and Into forms take the same split but let the
// caller state the expected shape of the left part, the right part, or
// both, as witness arguments. A witness contributes only its type: its
// value is ignored, and a witness whose positional element types are not
// exactly the corresponding elements of the source does not compile. The
// Into form additionally checks that the two witnesses are mutually
// consistent with the source. For example:
//
//	l, r := split.LeftInto_3_2(t, tuple.T2[uint8, float32]{})
//
// is At_3_2 plus a compile-time check that t starts with a uint8 and a
// float32, while
//
//	split.LeftInto_3_2(t, tuple.T2[float32, uint8]{})
//
// fails to compile.
//
// Splitting is the inverse of the tuple package's Concat family: for every
// t and every k in [0, n],
//
//	tuple.Concat_k_j(split.At_n_k(t)) == t
//
// where j = n - k. Each split rebuilds the two results from the source's
// fields positionally; it performs no allocation and no reinterpretation of
// the source's memory.
//
// The functions in this package are generated by cmd/tuplegen up to a chosen
// maximum arity. The generated set grows quadratically with that maximum,
// which costs compile time only.
package split

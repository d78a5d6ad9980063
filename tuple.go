package tuple

// Tuple is satisfied by every tuple type in this package. Len reports the
// arity, which is a constant of each concrete tuple type rather than a
// property of the value.
type Tuple interface {
	Len() int
}

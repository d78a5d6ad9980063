package tuple_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuple"
)

var (
	_ tuple.Tuple = tuple.T0{}
	_ tuple.Tuple = tuple.T1[string]{}
	_ tuple.Tuple = tuple.T8[int, int, int, int, int, int, int, int]{}
	_ tuple.Tuple = tuple.T16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int]{}
)

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.T0{}.Len(), 0))
	qt.Assert(t, qt.Equals(tuple.T1[string]{"a"}.Len(), 1))
	qt.Assert(t, qt.Equals(tuple.T3[uint8, float32, string]{1, 1.0, "test"}.Len(), 3))
	qt.Assert(t, qt.Equals(tuple.T16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int]{}.Len(), 16))
}

func TestConcat(t *testing.T) {
	qt.Assert(t, qt.Equals(
		tuple.Concat_2_1(tuple.T2[uint8, float32]{1, 1.0}, tuple.T1[string]{"test"}),
		tuple.T3[uint8, float32, string]{1, 1.0, "test"},
	))
	qt.Assert(t, qt.Equals(
		tuple.Concat_1_2(tuple.T1[uint8]{1}, tuple.T2[float32, string]{1.0, "test"}),
		tuple.T3[uint8, float32, string]{1, 1.0, "test"},
	))
}

// TestConcatEmpty checks that T0 is the identity of concatenation on both
// sides.
func TestConcatEmpty(t *testing.T) {
	src := tuple.T2[int, string]{1, "a"}
	qt.Assert(t, qt.Equals(tuple.Concat_0_2(tuple.T0{}, src), src))
	qt.Assert(t, qt.Equals(tuple.Concat_2_0(src, tuple.T0{}), src))
	qt.Assert(t, qt.Equals(tuple.Concat_0_0(tuple.T0{}, tuple.T0{}), tuple.T0{}))
}

func TestConcatAssociates(t *testing.T) {
	a := tuple.T1[int]{1}
	b := tuple.T1[string]{"b"}
	c := tuple.T1[bool]{true}
	qt.Assert(t, qt.Equals(
		tuple.Concat_2_1(tuple.Concat_1_1(a, b), c),
		tuple.Concat_1_2(a, tuple.Concat_1_1(b, c)),
	))
}

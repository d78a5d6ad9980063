package split_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuple"
	"github.com/tuplekit/tuple/split"
)

func TestAt(t *testing.T) {
	src := tuple.T3[uint8, float32, string]{1, 1.0, "test"}

	l0, r0 := split.At_3_0(src)
	qt.Assert(t, qt.Equals(l0, tuple.T0{}))
	qt.Assert(t, qt.Equals(r0, src))

	l1, r1 := split.At_3_1(src)
	qt.Assert(t, qt.Equals(l1, tuple.T1[uint8]{1}))
	qt.Assert(t, qt.Equals(r1, tuple.T2[float32, string]{1.0, "test"}))

	l2, r2 := split.At_3_2(src)
	qt.Assert(t, qt.Equals(l2, tuple.T2[uint8, float32]{1, 1.0}))
	qt.Assert(t, qt.Equals(r2, tuple.T1[string]{"test"}))

	l3, r3 := split.At_3_3(src)
	qt.Assert(t, qt.Equals(l3, src))
	qt.Assert(t, qt.Equals(r3, tuple.T0{}))
}

func TestAtEmpty(t *testing.T) {
	l, r := split.At_0_0(tuple.T0{})
	qt.Assert(t, qt.Equals(l, tuple.T0{}))
	qt.Assert(t, qt.Equals(r, tuple.T0{}))
}

func TestRoundTrip(t *testing.T) {
	src := tuple.T3[uint8, float32, string]{1, 1.0, "test"}
	qt.Assert(t, qt.Equals(tuple.Concat_0_3(split.At_3_0(src)), src))
	qt.Assert(t, qt.Equals(tuple.Concat_1_2(split.At_3_1(src)), src))
	qt.Assert(t, qt.Equals(tuple.Concat_2_1(split.At_3_2(src)), src))
	qt.Assert(t, qt.Equals(tuple.Concat_3_0(split.At_3_3(src)), src))
}

func TestRoundTripHighArity(t *testing.T) {
	src := tuple.T8[int, string, bool, float64, uint8, rune, int64, byte]{
		1, "two", true, 4.0, 5, '6', 7, 8,
	}
	qt.Assert(t, qt.Equals(tuple.Concat_0_8(split.At_8_0(src)), src))
	qt.Assert(t, qt.Equals(tuple.Concat_3_5(split.At_8_3(src)), src))
	qt.Assert(t, qt.Equals(tuple.Concat_8_0(split.At_8_8(src)), src))

	max := tuple.T16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, string]{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, "last",
	}
	qt.Assert(t, qt.Equals(tuple.Concat_7_9(split.At_16_7(max)), max))
}

func TestLeftIntoMatchesAt(t *testing.T) {
	src := tuple.T3[uint8, float32, string]{1, 1.0, "test"}

	wantL, wantR := split.At_3_2(src)
	l, r := split.LeftInto_3_2(src, tuple.T2[uint8, float32]{})
	qt.Assert(t, qt.Equals(l, wantL))
	qt.Assert(t, qt.Equals(r, wantR))
}

func TestRightIntoMatchesAt(t *testing.T) {
	src := tuple.T3[uint8, float32, string]{1, 1.0, "test"}

	wantL, wantR := split.At_3_2(src)
	l, r := split.RightInto_3_2(src, tuple.T1[string]{})
	qt.Assert(t, qt.Equals(l, wantL))
	qt.Assert(t, qt.Equals(r, wantR))
}

// TestCrossConsistency checks that the by-left-shape and by-right-shape
// forms agree with each other, and with the both-shapes form, when given
// complementary shapes of the same source.
func TestCrossConsistency(t *testing.T) {
	src := tuple.T4[uint8, float32, string, bool]{1, 1.0, "test", true}

	ll, lr := split.LeftInto_4_3(src, tuple.T3[uint8, float32, string]{})
	rl, rr := split.RightInto_4_3(src, tuple.T1[bool]{})
	qt.Assert(t, qt.Equals(ll, rl))
	qt.Assert(t, qt.Equals(lr, rr))

	bl, br := split.Into_4_3(src, tuple.T3[uint8, float32, string]{}, tuple.T1[bool]{})
	qt.Assert(t, qt.Equals(bl, ll))
	qt.Assert(t, qt.Equals(br, lr))
}

// TestWitnessValueIgnored checks that only the type of a witness matters.
func TestWitnessValueIgnored(t *testing.T) {
	src := tuple.T2[int, string]{42, "x"}

	l, r := split.LeftInto_2_1(src, tuple.T1[int]{-1})
	qt.Assert(t, qt.Equals(l, tuple.T1[int]{42}))
	qt.Assert(t, qt.Equals(r, tuple.T1[string]{"x"}))
}

// TestNonComparableElements splits a tuple whose elements are not
// comparable; the split moves the slice headers without copying the
// underlying arrays.
func TestNonComparableElements(t *testing.T) {
	bs := []byte("payload")
	src := tuple.T2[[]byte, []int]{bs, []int{1, 2}}

	l, r := split.At_2_1(src)
	qt.Assert(t, qt.DeepEquals(l, tuple.T1[[]byte]{bs}))
	qt.Assert(t, qt.DeepEquals(r, tuple.T1[[]int]{[]int{1, 2}}))
	qt.Assert(t, qt.Equals(&l.V0[0], &bs[0]))
}

func TestNestedTuples(t *testing.T) {
	src := tuple.T2[tuple.T1[int], tuple.T0]{tuple.T1[int]{7}, tuple.T0{}}

	l, r := split.At_2_1(src)
	qt.Assert(t, qt.Equals(l, tuple.T1[tuple.T1[int]]{tuple.T1[int]{7}}))
	qt.Assert(t, qt.Equals(r, tuple.T1[tuple.T0]{tuple.T0{}}))
}

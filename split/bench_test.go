package split_test

import (
	"testing"

	"github.com/tuplekit/tuple"
	"github.com/tuplekit/tuple/split"
)

var (
	sinkL tuple.T3[int, string, bool]
	sinkR tuple.T5[float64, uint8, rune, int64, byte]
)

// BenchmarkAt checks that a split is a plain regrouping of the source's
// fields: no allocation, no dispatch.
func BenchmarkAt(b *testing.B) {
	src := tuple.T8[int, string, bool, float64, uint8, rune, int64, byte]{
		1, "two", true, 4.0, 5, '6', 7, 8,
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkL, sinkR = split.At_8_3(src)
	}
}

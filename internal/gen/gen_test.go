package gen_test

import (
	"fmt"
	"go/parser"
	"go/token"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuplekit/tuple/internal/gen"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		title string
		c     gen.Config
		ok    bool
	}{
		{
			title: "smallest tier",
			c:     gen.Config{MaxArity: 4},
			ok:    true,
		},
		{
			title: "default tier",
			c:     gen.Config{MaxArity: 16},
			ok:    true,
		},
		{
			title: "largest unconfirmed tier",
			c:     gen.Config{MaxArity: 64},
			ok:    true,
		},
		{
			title: "zero",
			c:     gen.Config{},
		},
		{
			title: "negative",
			c:     gen.Config{MaxArity: -1},
		},
		{
			title: "not a tier",
			c:     gen.Config{MaxArity: 5},
		},
		{
			title: "beyond the largest tier",
			c:     gen.Config{MaxArity: 512, AllowLarge: true},
		},
		{
			title: "large tier unconfirmed",
			c:     gen.Config{MaxArity: 96},
		},
		{
			title: "large tier confirmed",
			c:     gen.Config{MaxArity: 96, AllowLarge: true},
			ok:    true,
		},
		{
			title: "largest tier confirmed",
			c:     gen.Config{MaxArity: 256, AllowLarge: true},
			ok:    true,
		},
	} {
		t.Run(tc.title, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, gen.ErrConfig)
			}
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 15, gen.Count(4))
	assert.Equal(t, 153, gen.Count(16))
	for _, tier := range gen.Tiers {
		assert.Len(t, gen.Enumerate(tier), gen.Count(tier))
	}
}

func TestEnumerate(t *testing.T) {
	var got []string
	for _, s := range gen.Enumerate(2) {
		got = append(got, fmt.Sprintf("%d/%d %v|%v", s.N, s.K, s.Left, s.Right))
	}
	assert.Equal(t, []string{
		"2/2 [A0 A1]|[]",
		"2/1 [A0]|[A1]",
		"2/0 []|[A0 A1]",
		"1/1 [A0]|[]",
		"1/0 []|[A0]",
		"0/0 []|[]",
	}, got)
}

// TestEnumerateMovesOneSlot checks the boundary invariant on a larger tier:
// every partition is the label list A0..A{n-1} cut at k, and within an
// arity each step moves exactly one label from the end of the left part to
// the front of the right part.
func TestEnumerateMovesOneSlot(t *testing.T) {
	splits := gen.Enumerate(8)
	for i, s := range splits {
		assert.Len(t, s.Left, s.K)
		assert.Len(t, s.Right, s.N-s.K)
		labels := s.Labels()
		for j, l := range labels {
			assert.Equal(t, fmt.Sprintf("A%d", j), l)
		}
		if i > 0 && splits[i-1].N == s.N {
			prev := splits[i-1]
			assert.Equal(t, prev.K-1, s.K)
			assert.Equal(t, prev.Left[:s.K], s.Left)
			assert.Equal(t, prev.Left[s.K], s.Right[0])
		}
	}
}

func TestTuplesGolden(t *testing.T) {
	src, err := gen.Tuples(gen.Config{MaxArity: 4})
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "tuples_4", src)
}

func TestSplitsGolden(t *testing.T) {
	src, err := gen.Splits(gen.Config{MaxArity: 4})
	require.NoError(t, err)
	g := goldie.New(t)
	g.Assert(t, "splits_4", src)
}

func TestRenderRejectsBadConfig(t *testing.T) {
	_, err := gen.Tuples(gen.Config{MaxArity: 7})
	assert.ErrorIs(t, err, gen.ErrConfig)
	_, err = gen.Splits(gen.Config{MaxArity: 128})
	assert.ErrorIs(t, err, gen.ErrConfig)
}

func TestRenderedOutputParses(t *testing.T) {
	for _, tier := range []int{4, 8, 16} {
		t.Run(fmt.Sprintf("tier_%d", tier), func(t *testing.T) {
			c := gen.Config{MaxArity: tier}
			for name, render := range map[string]func(gen.Config) ([]byte, error){
				"tuples": gen.Tuples,
				"splits": gen.Splits,
			} {
				src, err := render(c)
				require.NoError(t, err, name)
				_, err = parser.ParseFile(token.NewFileSet(), name+".go", src, 0)
				require.NoError(t, err, name)
			}
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := gen.Config{MaxArity: 8}
	a, err := gen.Splits(c)
	require.NoError(t, err)
	b, err := gen.Splits(c)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// Package gen enumerates and renders the tuple and split specializations.
//
// Splitting a heterogeneous fixed-arity tuple cannot be written as one
// recursive definition: every arity is a structurally distinct type, so one
// concrete function per (arity, split point) pair has to exist in the
// generated packages. The enumeration derives each partition from the
// previous one by moving a single labelled slot across the left/right
// boundary, so building the model stays linear in the number of emitted
// specializations even though that number is quadratic in the maximum arity.
//
// The quadratic growth is a compile-time cost, not a runtime one: a larger
// maximum arity means more generated code to compile, never slower splits.
// The tier set in Tiers and the AllowLarge gate exist to keep that cost an
// explicit choice.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

var ErrConfig = errors.New("Config")

// Tiers lists the selectable maximum arities.
var Tiers = []int{4, 8, 16, 32, 64, 96, 128, 160, 192, 224, 256}

// largeTier is the largest tier that may be selected without AllowLarge.
const largeTier = 64

type Config struct {
	// MaxArity is the largest tuple arity to generate. It must be one of
	// Tiers.
	MaxArity int

	// AllowLarge confirms the tiers above 64, which generate thousands of
	// specializations.
	AllowLarge bool
}

func (c Config) Validate() error {
	if !slices.Contains(Tiers, c.MaxArity) {
		return fmt.Errorf("%w: max arity %d is not one of %v", ErrConfig, c.MaxArity, Tiers)
	}
	if c.MaxArity > largeTier && !c.AllowLarge {
		return fmt.Errorf("%w: max arity %d generates %d specializations and must be confirmed with AllowLarge",
			ErrConfig, c.MaxArity, Count(c.MaxArity))
	}
	return nil
}

// Count returns the number of (arity, split point) pairs generated for the
// given maximum arity: one per k in [0, n] per n in [0, maxArity].
func Count(maxArity int) int {
	return (maxArity + 1) * (maxArity + 2) / 2
}

// A Split is one specialization: the partition of the type parameter labels
// A0..A{N-1} into a left prefix of K labels and the complementary right
// suffix.
type Split struct {
	N, K  int
	Left  []string
	Right []string
}

// Labels returns A0..A{N-1}, the left and right parts in order.
func (s Split) Labels() []string {
	return append(slices.Clone(s.Left), s.Right...)
}

// TypeParams renders the type parameter list shared by every function of the
// specialization. Arity 0 has no type parameters.
func (s Split) TypeParams() string {
	if s.N == 0 {
		return ""
	}
	return "[" + strings.Join(s.Labels(), ", ") + " any]"
}

// Enumerate lists every (n, k) pair for n from maxArity down to 0 and k from
// n down to 0. Within an arity, each partition is derived from its
// predecessor by moving the last left label to the front of the right part;
// across arities, the label list for n is a prefix of the one for n+1. The
// label lists are never rebuilt from scratch.
func Enumerate(maxArity int) []Split {
	labels := make([]string, maxArity)
	for i := range labels {
		labels[i] = "A" + strconv.Itoa(i)
	}
	splits := make([]Split, 0, Count(maxArity))
	for n := maxArity; n >= 0; n-- {
		left := slices.Clone(labels[:n])
		right := make([]string, 0, n)
		for k := n; ; k-- {
			splits = append(splits, Split{
				N:     n,
				K:     k,
				Left:  slices.Clone(left),
				Right: slices.Clone(right),
			})
			if k == 0 {
				break
			}
			right = slices.Insert(right, 0, left[k-1])
			left = left[:k-1]
		}
	}
	return splits
}

// typeRef renders the tuple type over the given labels, with an optional
// package qualifier: typeRef("tuple.", A1 A2) is "tuple.T2[A1, A2]".
func typeRef(qual string, labels []string) string {
	if len(labels) == 0 {
		return qual + "T0"
	}
	return fmt.Sprintf("%sT%d[%s]", qual, len(labels), strings.Join(labels, ", "))
}

// ctor renders a composite literal of the tuple type over labels whose
// elements are the fields V{base}..V{base+len-1} of from.
func ctor(qual string, labels []string, from string, base int) string {
	if len(labels) == 0 {
		return qual + "T0{}"
	}
	fields := make([]string, len(labels))
	for i := range labels {
		fields[i] = fmt.Sprintf("%s.V%d", from, base+i)
	}
	return typeRef(qual, labels) + "{" + strings.Join(fields, ", ") + "}"
}

func header(c Config) string {
	return fmt.Sprintf("// Code generated by %q; DO NOT EDIT.", "tuplegen --max-arity "+strconv.Itoa(c.MaxArity))
}

type field struct {
	Name, Label string
}

type typeDecl struct {
	N      int
	Doc    string
	Decl   string  // declaration form, with the any constraint
	Recv   string  // receiver form, labels only
	Fields []field
}

type concatDecl struct {
	M, J, Sum        int
	TypeParams       string
	Left, Right, Out string
	Ctor             string
}

type tuplesFile struct {
	Header  string
	Types   []typeDecl
	Concats []concatDecl
}

func tuplesData(c Config) *tuplesFile {
	labels := make([]string, c.MaxArity)
	for i := range labels {
		labels[i] = "A" + strconv.Itoa(i)
	}
	types := make([]typeDecl, 0, c.MaxArity+1)
	for n := 0; n <= c.MaxArity; n++ {
		d := typeDecl{
			N:    n,
			Decl: "T0",
			Recv: typeRef("", labels[:n]),
		}
		if n > 0 {
			d.Decl = fmt.Sprintf("T%d[%s any]", n, strings.Join(labels[:n], ", "))
		}
		switch n {
		case 0:
			d.Doc = "T0 is the empty tuple."
		case 1:
			d.Doc = "T1 holds a single value."
		default:
			d.Doc = fmt.Sprintf("T%d holds %d values.", n, n)
		}
		for i, l := range labels[:n] {
			d.Fields = append(d.Fields, field{Name: "V" + strconv.Itoa(i), Label: l})
		}
		types = append(types, d)
	}
	splits := Enumerate(c.MaxArity)
	concats := make([]concatDecl, 0, len(splits))
	for _, s := range splits {
		fields := make([]string, 0, s.N)
		for i := range s.Left {
			fields = append(fields, fmt.Sprintf("left.V%d", i))
		}
		for i := range s.Right {
			fields = append(fields, fmt.Sprintf("right.V%d", i))
		}
		out := typeRef("", s.Labels())
		ct := out + "{}"
		if s.N > 0 {
			ct = out + "{" + strings.Join(fields, ", ") + "}"
		}
		concats = append(concats, concatDecl{
			M:          s.K,
			J:          s.N - s.K,
			Sum:        s.N,
			TypeParams: s.TypeParams(),
			Left:       typeRef("", s.Left),
			Right:      typeRef("", s.Right),
			Out:        out,
			Ctor:       ct,
		})
	}
	return &tuplesFile{
		Header:  header(c),
		Types:   types,
		Concats: concats,
	}
}

type splitDecl struct {
	N, K                int
	TypeParams          string
	Src, Left, Right    string
	LeftCtor, RightCtor string
}

type splitsFile struct {
	Header string
	Splits []splitDecl
}

func splitsData(c Config) *splitsFile {
	splits := Enumerate(c.MaxArity)
	decls := make([]splitDecl, len(splits))
	for i, s := range splits {
		decls[i] = splitDecl{
			N:          s.N,
			K:          s.K,
			TypeParams: s.TypeParams(),
			Src:        typeRef("tuple.", s.Labels()),
			Left:       typeRef("tuple.", s.Left),
			Right:      typeRef("tuple.", s.Right),
			LeftCtor:   ctor("tuple.", s.Left, "t", 0),
			RightCtor:  ctor("tuple.", s.Right, "t", s.K),
		}
	}
	return &splitsFile{
		Header: header(c),
		Splits: decls,
	}
}

var tuplesTmpl = template.Must(template.New("tuples").Parse(`{{.Header}}

package tuple
{{range .Types}}
// {{.Doc}}
type {{.Decl}} struct{{if .Fields}} {
{{- range .Fields}}
	{{.Name}} {{.Label}}
{{- end}}
}{{else}}{}{{end}}

// Len returns the arity of the tuple, {{.N}}.
func ({{.Recv}}) Len() int { return {{.N}} }
{{end}}{{range .Concats}}
// Concat_{{.M}}_{{.J}} concatenates tuples of arity {{.M}} and {{.J}} into a tuple of arity {{.Sum}}.
func Concat_{{.M}}_{{.J}}{{.TypeParams}}(left {{.Left}}, right {{.Right}}) {{.Out}} {
	return {{.Ctor}}
}
{{end}}`))

var splitsTmpl = template.Must(template.New("splits").Parse(`{{.Header}}

package split

import (
	"github.com/tuplekit/tuple"
)
{{range .Splits}}
// At_{{.N}}_{{.K}} splits a tuple of arity {{.N}} at index {{.K}}.
func At_{{.N}}_{{.K}}{{.TypeParams}}(t {{.Src}}) ({{.Left}}, {{.Right}}) {
	return {{.LeftCtor}}, {{.RightCtor}}
}

// LeftInto_{{.N}}_{{.K}} is At_{{.N}}_{{.K}} with the left shape stated by a witness.
func LeftInto_{{.N}}_{{.K}}{{.TypeParams}}(t {{.Src}}, left {{.Left}}) ({{.Left}}, {{.Right}}) {
	return At_{{.N}}_{{.K}}(t)
}

// RightInto_{{.N}}_{{.K}} is At_{{.N}}_{{.K}} with the right shape stated by a witness.
func RightInto_{{.N}}_{{.K}}{{.TypeParams}}(t {{.Src}}, right {{.Right}}) ({{.Left}}, {{.Right}}) {
	return At_{{.N}}_{{.K}}(t)
}

// Into_{{.N}}_{{.K}} is At_{{.N}}_{{.K}} with both shapes stated by witnesses.
func Into_{{.N}}_{{.K}}{{.TypeParams}}(t {{.Src}}, left {{.Left}}, right {{.Right}}) ({{.Left}}, {{.Right}}) {
	return At_{{.N}}_{{.K}}(t)
}
{{end}}`))

// Tuples renders the companion tuple package: the T0..TN types, their Len
// methods and the Concat_m_j family.
func Tuples(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return render(tuplesTmpl, tuplesData(c))
}

// Splits renders the split package: the At, LeftInto, RightInto and Into
// families, one function per (arity, split point) pair.
func Splits(c Config) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return render(splitsTmpl, splitsData(c))
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: render %s", err, tmpl.Name())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: format %s", err, tmpl.Name())
	}
	return src, nil
}

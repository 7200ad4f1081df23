//go:build ignore

// This program generates tuple_gen.go. Run it with go generate.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// maxArity is the size of the largest generated tuple. It matches
// the number of letters in the alphabet, as is traditional.
const maxArity = 26

var output = flag.String("o", "tuple_gen.go", "output file")

func main() {
	flag.Parse()
	var arities []arity
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, map[string]any{
		"Max":     maxArity,
		"Arities": arities,
	})
	if err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("cannot format generated source: %v\n%s", err, buf.Bytes())
	}
	if err := os.WriteFile(*output, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

type arity struct {
	N int
	// Params holds the type parameter names A0, A1, ...
	Params []string
	// Fields holds the field names T0, T1, ...
	Fields []string
	// Args holds the constructor argument names a0, a1, ...
	Args []string
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := range n {
		a.Params = append(a.Params, fmt.Sprintf("A%d", i))
		a.Fields = append(a.Fields, fmt.Sprintf("T%d", i))
		a.Args = append(a.Args, fmt.Sprintf("a%d", i))
	}
	return a
}

// TypeParams returns the type parameter list, for example "A0, A1 any".
func (a arity) TypeParams() string {
	return strings.Join(a.Params, ", ") + " any"
}

// TypeArgs returns the type argument list, for example "A0, A1".
func (a arity) TypeArgs() string {
	return strings.Join(a.Params, ", ")
}

// Nested returns the nested list type.
func (a arity) Nested() string {
	var b strings.Builder
	for _, p := range a.Params {
		fmt.Fprintf(&b, "hlist.Cons[%s, ", p)
	}
	b.WriteString("hlist.End")
	b.WriteString(strings.Repeat("]", a.N))
	return b.String()
}

// NestExpr returns the expression building the nested list from t.
func (a arity) NestExpr() string {
	var b strings.Builder
	for _, f := range a.Fields {
		fmt.Fprintf(&b, "hlist.From(t.%s, ", f)
	}
	b.WriteString("hlist.End{}")
	b.WriteString(strings.Repeat(")", a.N))
	return b.String()
}

// Selectors returns, for each element, the expression selecting
// it from a nested list held in l.
func (a arity) Selectors() []string {
	sels := make([]string, a.N)
	for i := range sels {
		sels[i] = "l" + strings.Repeat(".Tail", i) + ".Head"
	}
	return sels
}

// ParamList returns the constructor parameter list, for example "a0 A0, a1 A1".
func (a arity) ParamList() string {
	ps := make([]string, a.N)
	for i := range ps {
		ps[i] = a.Args[i] + " " + a.Params[i]
	}
	return strings.Join(ps, ", ")
}

// FieldDecls returns the struct field declarations, for example "T0 A0".
func (a arity) FieldDecls() []string {
	decls := make([]string, a.N)
	for i := range decls {
		decls[i] = a.Fields[i] + " " + a.Params[i]
	}
	return decls
}

func (a arity) ArgList() string {
	return strings.Join(a.Args, ", ")
}

func (a arity) FieldSelectors() string {
	fs := make([]string, a.N)
	for i, f := range a.Fields {
		fs[i] = "t." + f
	}
	return strings.Join(fs, ", ")
}

func (a arity) Results() string {
	if a.N == 1 {
		return a.Params[0]
	}
	return "(" + a.TypeArgs() + ")"
}

var tmpl = template.Must(template.New("").Parse(`// Code generated by generate.go; DO NOT EDIT.

package tuple

import "github.com/rogpeppe/tuplekit/hlist"

// MaxArity is the number of values held by the largest tuple type.
const MaxArity = {{.Max}}

// T0 is the empty tuple.
type T0 struct{}

// Nested0 is the nested form of T0.
type Nested0 = hlist.End

// MkT0 returns the empty tuple.
func MkT0() T0 {
	return T0{}
}

// Len returns 0.
func (T0) Len() int {
	return 0
}

// Nest returns the nested form of the empty tuple.
func (T0) Nest() Nested0 {
	return hlist.End{}
}

// Unnest0 is the inverse of T0.Nest.
func Unnest0(hlist.End) T0 {
	return T0{}
}
{{range .Arities}}
// T{{.N}} is a tuple of arity {{.N}}.
type T{{.N}}[{{.TypeParams}}] struct {
{{- range .FieldDecls}}
	{{.}}
{{- end}}
}

// Nested{{.N}} is the nested form of T{{.N}}.
type Nested{{.N}}[{{.TypeParams}}] = {{.Nested}}

// MkT{{.N}} returns a T{{.N}} holding the given values.
func MkT{{.N}}[{{.TypeParams}}]({{.ParamList}}) T{{.N}}[{{.TypeArgs}}] {
	return T{{.N}}[{{.TypeArgs}}]{ {{- .ArgList -}} }
}

// T returns the values held in t.
func (t T{{.N}}[{{.TypeArgs}}]) T() {{.Results}} {
	return {{.FieldSelectors}}
}

// Len returns {{.N}}.
func (T{{.N}}[{{.TypeArgs}}]) Len() int {
	return {{.N}}
}

// Nest returns the nested form of t.
func (t T{{.N}}[{{.TypeArgs}}]) Nest() Nested{{.N}}[{{.TypeArgs}}] {
	return {{.NestExpr}}
}

// Unnest{{.N}} is the inverse of T{{.N}}.Nest.
func Unnest{{.N}}[{{.TypeParams}}](l Nested{{.N}}[{{.TypeArgs}}]) T{{.N}}[{{.TypeArgs}}] {
	return T{{.N}}[{{.TypeArgs}}]{
{{- range .Selectors}}
		{{.}},
{{- end}}
	}
}
{{end}}`))

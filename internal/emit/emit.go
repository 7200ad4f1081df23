// Package emit writes the Go source for resolved tuplegen
// declarations.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"text/template"

	"github.com/rogpeppe/tuplekit/internal/declgraph"
	"github.com/rogpeppe/tuplekit/internal/resolve"
	"github.com/rogpeppe/tuplekit/internal/typepat"
)

// ModulePath is the import path prefix of the runtime packages
// used by generated code.
const ModulePath = "github.com/rogpeppe/tuplekit"

// Header is the first line of every generated file.
const Header = "// Code generated by tuplegen. DO NOT EDIT."

// Source returns the formatted Go source for prog.
func Source(prog *resolve.Program) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, newFile(prog)); err != nil {
		return nil, fmt.Errorf("cannot execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code: %v\n%s", err, buf.Bytes())
	}
	return src, nil
}

type file struct {
	Package string
	Imports [][]importSpec
	Decls   []decl
}

type importSpec struct {
	Name string
	Path string
}

type decl struct {
	*resolve.Decl
	Comment       string
	Result        string
	FilterPlan    []planStep
	FoldPlan      []planStep
	CombinerDecls []combiner
}

type planStep struct {
	Name string
	Type string
}

type combiner struct {
	Name    string
	Acc     string
	Elem    string
	Combine string
}

func newFile(prog *resolve.Program) *file {
	f := &file{
		Package: prog.Package,
	}
	used := map[string]bool{"tuple": len(prog.Decls) > 0}
	for _, d := range prog.Decls {
		for _, t := range slices.Concat(d.Elems, d.Out, []typepat.Type{d.Acc}) {
			if t.IsZero() {
				continue
			}
			for _, pkg := range t.Packages() {
				used[pkg] = true
			}
		}
		f.Decls = append(f.Decls, newDecl(d))
		switch d.Kind {
		case declgraph.Filtered:
			used["filter"] = true
		case declgraph.Reduced:
			used["reduce"] = true
		}
	}
	var std, other []importSpec
	for _, pkg := range []string{"filter", "reduce", "tuple"} {
		if used[pkg] {
			other = append(other, importSpec{Path: ModulePath + "/" + pkg})
		}
	}
	for _, imp := range prog.Imports {
		if !used[imp.Name] {
			continue
		}
		spec := importSpec{Path: imp.Path}
		if imp.Explicit {
			spec.Name = imp.Name
		}
		first, _, _ := strings.Cut(imp.Path, "/")
		if strings.Contains(first, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	for _, group := range [][]importSpec{std, other} {
		if len(group) == 0 {
			continue
		}
		slices.SortFunc(group, func(a, b importSpec) int {
			return strings.Compare(a.Path, b.Path)
		})
		f.Imports = append(f.Imports, group)
	}
	return f
}

func newDecl(d *resolve.Decl) decl {
	out := decl{Decl: d}
	switch d.Kind {
	case declgraph.Tuple:
		out.Comment = fmt.Sprintf("%s is the tuple %s.", d.Name, resolve.NewList(d.Elems...))
		out.Result = tupleType(d.Elems)
	case declgraph.Mapped:
		out.Comment = fmt.Sprintf("%s is %s with its element types mapped by %s.", d.Name, d.Tuple, d.Source)
		out.Result = tupleType(d.Out)
	case declgraph.Filtered:
		out.Comment = fmt.Sprintf("%s is %s with only the element types included by %s.", d.Name, d.Tuple, d.Source)
		out.Result = tupleType(d.Out)
		out.FilterPlan = filterPlan(d)
	case declgraph.Reduced:
		out.FoldPlan, out.CombinerDecls = foldPlan(d)
	}
	return out
}

// filterPlan returns one step for each element of d's tuple and a
// final filter.Stop.
func filterPlan(d *resolve.Decl) []planStep {
	n := len(d.Elems)
	steps := make([]planStep, n+1)
	for i := range n {
		var kept []typepat.Type
		for j := i + 1; j < n; j++ {
			if d.Keep[j] {
				kept = append(kept, d.Elems[j])
			}
		}
		step := "filter.Drop"
		if d.Keep[i] {
			step = "filter.Keep"
		}
		steps[i] = planStep{
			Name: d.Plan[i],
			Type: fmt.Sprintf("%s[%s, %s, %s, %s]", step, d.Elems[i], nestedType(d.Elems[i+1:]), nestedType(kept), d.Plan[i+1]),
		}
	}
	steps[n] = planStep{Name: d.Plan[n], Type: "filter.Stop"}
	return steps
}

// foldPlan returns one step for each element of d's tuple and a
// final reduce.Done, along with a combiner for each element.
func foldPlan(d *resolve.Decl) ([]planStep, []combiner) {
	n := len(d.Elems)
	acc := d.Acc.String()
	steps := make([]planStep, n+1)
	combiners := make([]combiner, n)
	for i, e := range d.Elems {
		steps[i] = planStep{
			Name: d.Plan[i],
			Type: fmt.Sprintf("reduce.Next[%s, %s, %s, %s, %s]", acc, e, nestedType(d.Elems[i+1:]), d.Combiners[i], d.Plan[i+1]),
		}
		combiners[i] = combiner{
			Name:    d.Combiners[i],
			Acc:     acc,
			Elem:    e.String(),
			Combine: d.Combine[i],
		}
	}
	steps[n] = planStep{Name: d.Plan[n], Type: fmt.Sprintf("reduce.Done[%s]", acc)}
	return steps, combiners
}

// tupleType returns the flat tuple type holding elems.
func tupleType(elems []typepat.Type) string {
	return instance("tuple.T", elems)
}

// nestedType returns the nested form of the tuple type holding elems.
func nestedType(elems []typepat.Type) string {
	return instance("tuple.Nested", elems)
}

func instance(prefix string, elems []typepat.Type) string {
	if len(elems) == 0 {
		return prefix + "0"
	}
	args := make([]string, len(elems))
	for i, e := range elems {
		args[i] = e.String()
	}
	return fmt.Sprintf("%s%d[%s]", prefix, len(elems), strings.Join(args, ", "))
}

// fileTemplate produces unformatted source. Separate declarations
// are divided by at least one blank line; format.Source removes any
// extras.
var fileTemplate = template.Must(template.New("").Parse(Header + `

package {{.Package}}
{{if .Imports}}
import (
{{range $i, $group := .Imports}}{{if $i}}
{{end}}{{range $group}}	{{if .Name}}{{.Name}} {{end}}{{printf "%q" .Path}}
{{end}}{{end}})
{{end}}{{range .Decls}}
{{if eq .Kind.String "filtered"}}{{template "filtered" .}}{{else if eq .Kind.String "reduced"}}{{template "reduced" .}}{{else}}{{template "alias" .}}{{end}}{{end}}
{{- define "alias"}}
// {{.Comment}}
type {{.Name}} = {{.Result}}
{{end}}
{{- define "filtered"}}
// {{.Comment}}
type {{.Name}} = {{.Result}}

// {{.Func}} returns the elements of t included by {{.Source}}.
func {{.Func}}(t {{.Tuple}}) {{.Name}} {
	return tuple.Unnest{{len .Out}}({{index .Plan 0}}{}.Filter(t.Nest()))
}

{{range .FilterPlan}}type {{.Name}} = {{.Type}}
{{end}}{{end}}
{{- define "reduced"}}
// {{.Name}} folds the elements of t into seed using {{.Source}}.
func {{.Name}}(t {{.Tuple}}, seed {{.Acc}}) {{.Acc}} {
	return {{index .Plan 0}}{}.Fold(seed, t.Nest())
}

{{range .FoldPlan}}type {{.Name}} = {{.Type}}
{{end}}{{range .CombinerDecls}}
type {{.Name}} struct{}

func ({{.Name}}) Combine(acc {{.Acc}}, e {{.Elem}}) {{.Acc}} {
	return {{.Combine}}(acc, e)
}
{{end}}{{end}}
`))

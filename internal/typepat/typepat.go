// Package typepat implements matching of Go type expressions
// against type patterns.
//
// A pattern is a Go type expression, optionally preceded by a type
// parameter list that declares pattern variables:
//
//	uint8
//	[]byte
//	[T any] Option[T]
//	[K comparable, V any] map[K]V
//	[N any] [N]uint8
//
// A pattern variable matches any type; a variable used as an array
// length matches any length. A variable used more than once must
// match the same thing each time. Variables are not looked for
// inside struct and interface types, which must match exactly.
//
// Types and patterns are purely syntactic: byte and rune are
// treated as uint8 and int32, but no other identity between types
// (for instance through type aliases) is known.
package typepat

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"slices"
	"strings"
)

// SyntaxError is returned when a type or pattern cannot be parsed.
type SyntaxError struct {
	Src string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid type %q: %v", e.Src, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Type is a concrete Go type expression.
type Type struct {
	expr ast.Expr
	str  string
}

// ParseType parses a Go type expression. A type may not declare
// pattern variables.
func ParseType(src string) (Type, error) {
	params, x, err := parse(src)
	if err != nil {
		return Type{}, err
	}
	if params != nil {
		return Type{}, &SyntaxError{Src: src, Err: fmt.Errorf("unexpected type parameters")}
	}
	return newType(x), nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(src string) Type {
	t, err := ParseType(src)
	if err != nil {
		panic(err)
	}
	return t
}

func newType(x ast.Expr) Type {
	x = normalize(x)
	return Type{
		expr: x,
		str:  types.ExprString(x),
	}
}

// String returns the canonical form of the type.
func (t Type) String() string {
	return t.str
}

// IsZero reports whether t is the zero Type.
func (t Type) IsZero() bool {
	return t.expr == nil
}

// Names returns the unqualified type names mentioned in t, in order
// of first appearance. Predeclared identifiers are omitted.
func (t Type) Names() []string {
	var names []string
	ast.Inspect(t.expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			return false
		case *ast.Ident:
			if types.Universe.Lookup(n.Name) == nil && !slices.Contains(names, n.Name) {
				names = append(names, n.Name)
			}
		}
		return true
	})
	return names
}

// Packages returns the package names that qualify identifiers in t,
// in order of first appearance.
func (t Type) Packages() []string {
	var pkgs []string
	ast.Inspect(t.expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && !slices.Contains(pkgs, id.Name) {
				pkgs = append(pkgs, id.Name)
			}
			return false
		}
		return true
	})
	return pkgs
}

// Bindings holds the values of pattern variables after a match.
type Bindings map[string]Type

// Pattern is a type expression that can contain pattern variables.
type Pattern struct {
	src  string
	vars []string
	// constraints holds the constraint of each variable, as written.
	constraints map[string]string
	expr        ast.Expr
}

// Parse parses a pattern. See the package documentation for the syntax.
func Parse(src string) (*Pattern, error) {
	params, x, err := parse(src)
	if err != nil {
		return nil, err
	}
	p := &Pattern{
		src:  src,
		expr: normalize(x),
	}
	if params == nil {
		return p, nil
	}
	p.constraints = make(map[string]string)
	for _, field := range params.List {
		for _, name := range field.Names {
			if _, ok := p.constraints[name.Name]; ok {
				return nil, &SyntaxError{Src: src, Err: fmt.Errorf("pattern variable %s declared twice", name.Name)}
			}
			p.vars = append(p.vars, name.Name)
			p.constraints[name.Name] = types.ExprString(field.Type)
		}
	}
	used := make(map[string]bool)
	ast.Inspect(p.expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			// pkg.T does not refer to T.
			return false
		case *ast.Ident:
			used[n.Name] = true
		}
		return true
	})
	for _, v := range p.vars {
		if !used[v] {
			return nil, &SyntaxError{Src: src, Err: fmt.Errorf("pattern variable %s not used", v)}
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) *Pattern {
	p, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return p
}

// Vars returns the pattern variables in declaration order.
func (p *Pattern) Vars() []string {
	return p.vars
}

// String returns the pattern as written.
func (p *Pattern) String() string {
	return p.src
}

// IsGeneric reports whether the pattern declares any variables.
func (p *Pattern) IsGeneric() bool {
	return len(p.vars) > 0
}

// Match reports whether t matches the pattern and, if so, returns
// the values bound to the pattern variables.
func (p *Pattern) Match(t Type) (Bindings, bool) {
	m := &matcher{
		vars:     p.constraints,
		bindings: make(Bindings),
	}
	if !m.match(p.expr, t.expr) {
		return nil, false
	}
	return m.bindings, true
}

// Subst returns the pattern's type expression with every identifier
// bound in b replaced by its binding. Identifiers that are not bound
// are left alone, so the result of substituting into a pattern that
// declares variables is only meaningful when b binds all of them.
func (p *Pattern) Subst(b Bindings) Type {
	return newType(subst(p.expr, b))
}

// parse parses src as the right hand side of a type declaration,
// which is exactly the syntax of a pattern.
func parse(src string) (*ast.FieldList, ast.Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil, &SyntaxError{Src: src, Err: fmt.Errorf("empty type")}
	}
	const prefix = "package p; type _ "
	f, err := parser.ParseFile(token.NewFileSet(), "", prefix+src, parser.SkipObjectResolution)
	if err != nil {
		return nil, nil, &SyntaxError{Src: src, Err: trimPosition(err)}
	}
	if len(f.Decls) != 1 {
		return nil, nil, &SyntaxError{Src: src, Err: fmt.Errorf("not a single type")}
	}
	decl, ok := f.Decls[0].(*ast.GenDecl)
	if !ok || len(decl.Specs) != 1 {
		return nil, nil, &SyntaxError{Src: src, Err: fmt.Errorf("not a single type")}
	}
	spec := decl.Specs[0].(*ast.TypeSpec)
	if spec.Assign.IsValid() {
		return nil, nil, &SyntaxError{Src: src, Err: fmt.Errorf("unexpected =")}
	}
	return spec.TypeParams, spec.Type, nil
}

// trimPosition removes the position prefix from a parser error,
// which refers to the synthesized source rather than src.
func trimPosition(err error) error {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 && strings.HasPrefix(msg, "1:") {
		msg = msg[i+2:]
	}
	return fmt.Errorf("%s", msg)
}

// normalize returns x with byte and rune replaced by uint8 and int32
// and with redundant parentheses removed.
func normalize(x ast.Expr) ast.Expr {
	return subst(x, Bindings{
		"byte": {expr: ast.NewIdent("uint8"), str: "uint8"},
		"rune": {expr: ast.NewIdent("int32"), str: "int32"},
	})
}

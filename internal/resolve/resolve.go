// Package resolve performs the type-level half of tuplegen: it maps
// and filters the element types of declared tuples and finds the
// combine function for each element of a reduced tuple.
//
// Every operation walks a tuple's elements in nested form, head
// first, and applies a set of associations to each element type.
// Exactly one association must match each element: an element that
// matches none is ErrNoAssociation (ErrNoBinding for reducers) and
// one that matches more than one is ErrAmbiguous.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rogpeppe/tuplekit/internal/typepat"
)

// Rule associates element types matching From with the type To,
// which may refer to the pattern variables of From.
type Rule struct {
	From *typepat.Pattern
	To   *typepat.Pattern
}

// Mapper is a named type-level mapping.
type Mapper struct {
	Name  string
	Rules []Rule
}

// Map returns the element types of t, each mapped by the one rule
// that matches it. The result has the same length as t.
func (m *Mapper) Map(t *Tuple) (*List, error) {
	return m.mapList(t, t.Elems, 0)
}

func (m *Mapper) mapList(t *Tuple, l *List, i int) (*List, error) {
	if l == nil {
		return nil, nil
	}
	head, herr := m.mapElem(t, i, l.Head)
	tail, terr := m.mapList(t, l.Tail, i+1)
	if err := errors.Join(herr, terr); err != nil {
		return nil, err
	}
	return &List{Head: head, Tail: tail}, nil
}

func (m *Mapper) mapElem(t *Tuple, i int, x typepat.Type) (typepat.Type, error) {
	var (
		matched []string
		result  typepat.Type
	)
	for _, r := range m.Rules {
		if b, ok := r.From.Match(x); ok {
			matched = append(matched, r.From.String())
			result = r.To.Subst(b)
		}
	}
	switch len(matched) {
	case 0:
		return typepat.Type{}, m.errorf(ErrNoAssociation, t, i, x, "")
	case 1:
		return result, nil
	}
	return typepat.Type{}, m.errorf(ErrAmbiguous, t, i, x, "matched by "+quoteAll(matched))
}

func (m *Mapper) errorf(kind error, t *Tuple, i int, x typepat.Type, detail string) error {
	return &Error{
		Kind:   kind,
		Decl:   m.Name,
		Tuple:  t.Name,
		Index:  i,
		Type:   x.String(),
		Detail: detail,
	}
}

// The markers that a predicate maps each element type to.
var (
	Include = typepat.MustParseType("filter.Include")
	Exclude = typepat.MustParseType("filter.Exclude")
)

var (
	includePattern = typepat.MustParse(Include.String())
	excludePattern = typepat.MustParse(Exclude.String())
)

// Predicate is a named filter predicate.
type Predicate struct {
	Name    string
	Include []*typepat.Pattern
	Exclude []*typepat.Pattern
}

// Mapper returns the mapper that maps each element type to Include
// or Exclude according to p.
func (p *Predicate) Mapper() *Mapper {
	m := &Mapper{Name: p.Name}
	for _, pat := range p.Include {
		m.Rules = append(m.Rules, Rule{From: pat, To: includePattern})
	}
	for _, pat := range p.Exclude {
		m.Rules = append(m.Rules, Rule{From: pat, To: excludePattern})
	}
	return m
}

// Filter returns the element types of t that p includes, in their
// original order, along with the marker list for t.
func (p *Predicate) Filter(t *Tuple) (kept, markers *List, err error) {
	markers, err = p.Mapper().Map(t)
	if err != nil {
		return nil, nil, err
	}
	return sieve(t.Elems, markers), markers, nil
}

// sieve walks l and markers in lock step. The two lists always have
// the same length.
func sieve(l, markers *List) *List {
	if l == nil {
		return nil
	}
	if markers.Head.String() == Include.String() {
		return &List{Head: l.Head, Tail: sieve(l.Tail, markers.Tail)}
	}
	return sieve(l.Tail, markers.Tail)
}

// Binding names the function that combines elements matching Type
// into the accumulator.
type Binding struct {
	Type    *typepat.Pattern
	Combine string
}

// Reducer is a named set of reducer bindings.
type Reducer struct {
	Name     string
	Acc      typepat.Type
	Bindings []Binding
}

// Bind returns the combine function for each element of t, in order.
func (r *Reducer) Bind(t *Tuple) ([]string, error) {
	var (
		funcs []string
		errs  []error
	)
	i := 0
	for l := t.Elems; l != nil; l = l.Tail {
		var matched []string
		for _, b := range r.Bindings {
			if _, ok := b.Type.Match(l.Head); ok {
				matched = append(matched, b.Type.String())
				funcs = append(funcs, b.Combine)
			}
		}
		switch len(matched) {
		case 0:
			errs = append(errs, r.errorf(ErrNoBinding, t, i, l.Head, ""))
		case 1:
		default:
			errs = append(errs, r.errorf(ErrAmbiguous, t, i, l.Head, "matched by "+quoteAll(matched)))
		}
		i++
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return funcs, nil
}

func (r *Reducer) errorf(kind error, t *Tuple, i int, x typepat.Type, detail string) error {
	return &Error{
		Kind:   kind,
		Decl:   r.Name,
		Tuple:  t.Name,
		Index:  i,
		Type:   x.String(),
		Detail: detail,
	}
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(q, " and ")
}

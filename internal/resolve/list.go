package resolve

import (
	"strings"

	"github.com/rogpeppe/tuplekit/internal/typepat"
)

// List is the nested form of a list of element types, mirroring
// hlist.Cons at the type level. The nil *List is the end of the
// list.
type List struct {
	Head typepat.Type
	Tail *List
}

// NewList returns the nested form of elems.
func NewList(elems ...typepat.Type) *List {
	var l *List
	for i := len(elems) - 1; i >= 0; i-- {
		l = &List{Head: elems[i], Tail: l}
	}
	return l
}

// Len returns the number of elements in l.
func (l *List) Len() int {
	n := 0
	for ; l != nil; l = l.Tail {
		n++
	}
	return n
}

// Elems returns the elements of l in order.
func (l *List) Elems() []typepat.Type {
	var elems []typepat.Type
	for ; l != nil; l = l.Tail {
		elems = append(elems, l.Head)
	}
	return elems
}

// String formats l as a flat tuple, for example "(uint8, []uint8)".
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range l.Elems() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Tuple is a named list of element types.
type Tuple struct {
	Name  string
	Elems *List
}

// Package hlist implements heterogeneous lists built from
// right-nested pairs.
//
// The list holding values a, b and c of types A, B and C has type
//
//	Cons[A, Cons[B, Cons[C, End]]]
//
// and is built with
//
//	From(a, From(b, From(c, End{})))
//
// The tail of every Cons is constrained by [List], so a list always
// terminates in [End]. The length and the type of every element are
// known statically; recursive algorithms over a list are written
// as generic types that take one step per Cons (see the filter and
// reduce packages).
//
// See the tuple package for conversions between lists and flat tuples.
package hlist

import "fmt"

// List is implemented by End and by every Cons. It cannot be
// implemented outside this package.
type List interface {
	// Len returns the number of elements in the list.
	Len() int

	appendValues(dst []any) []any
}

// End marks the end of a list. As a zero-sized marker,
// End is both a type and its only value.
type End struct{}

// Len implements List.Len.
func (End) Len() int {
	return 0
}

// Split returns End twice: the end of a list has no head and
// its tail is itself.
func (End) Split() (End, End) {
	return End{}, End{}
}

func (End) String() string {
	return "End"
}

func (End) appendValues(dst []any) []any {
	return dst
}

// Cons holds the first element of a list and the rest of it.
type Cons[H any, T List] struct {
	Head H
	Tail T
}

// From returns the list with the given head and tail.
func From[H any, T List](head H, tail T) Cons[H, T] {
	return Cons[H, T]{
		Head: head,
		Tail: tail,
	}
}

// Split returns the head and tail of l.
func (l Cons[H, T]) Split() (H, T) {
	return l.Head, l.Tail
}

// Len implements List.Len.
func (l Cons[H, T]) Len() int {
	return 1 + l.Tail.Len()
}

// String formats the list as nested pairs, for example "(1, (2, End))".
func (l Cons[H, T]) String() string {
	return fmt.Sprintf("(%v, %v)", l.Head, l.Tail)
}

func (l Cons[H, T]) appendValues(dst []any) []any {
	return l.Tail.appendValues(append(dst, l.Head))
}

// Values returns the elements of l in order.
func Values(l List) []any {
	return l.appendValues(nil)
}

// Package filter implements value-level filtering of heterogeneous
// lists.
//
// A filter plan is a zero-sized type built from one step per
// element of its input: [Keep] retains the element, [Drop]
// discards it and [Stop] ends the list. The type arguments of each
// step name its input and output lists, so the Go compiler rejects
// a plan that does not fit the list it is applied to, and the
// output type of a plan is known statically.
//
// For example, the plan that keeps the first and third elements of
// a list of type Cons[uint8, Cons[uint16, Cons[string, End]]] is
//
//	Keep[uint8, Cons[uint16, Cons[string, End]], Cons[string, End],
//		Drop[uint16, Cons[string, End], Cons[string, End],
//			Keep[string, End, End, Stop]]]
//
// Plans are normally written by tuplegen, which works out which
// elements to keep from a predicate's Include and Exclude
// associations.
package filter

import "github.com/rogpeppe/tuplekit/hlist"

// Include marks an element type that a predicate retains.
type Include struct{}

// Exclude marks an element type that a predicate discards.
type Exclude struct{}

// Outcome is satisfied by the two filter markers.
type Outcome interface {
	Include | Exclude
}

// Step is implemented by every filter plan. A Step turns a list of
// type In into a list of type Out.
type Step[In, Out hlist.List] interface {
	Filter(In) Out
}

// Stop is the plan for the end of a list.
type Stop struct{}

// Filter implements Step.
func (Stop) Filter(hlist.End) hlist.End {
	return hlist.End{}
}

// Keep is the plan that retains the head of a list of type
// hlist.Cons[H, In] and filters its tail with Rest.
type Keep[H any, In, Out hlist.List, Rest Step[In, Out]] struct{}

// Filter implements Step.
func (Keep[H, In, Out, Rest]) Filter(l hlist.Cons[H, In]) hlist.Cons[H, Out] {
	var rest Rest
	return hlist.From(l.Head, rest.Filter(l.Tail))
}

// Drop is the plan that discards the head of a list of type
// hlist.Cons[H, In] and filters its tail with Rest.
type Drop[H any, In, Out hlist.List, Rest Step[In, Out]] struct{}

// Filter implements Step.
func (Drop[H, In, Out, Rest]) Filter(l hlist.Cons[H, In]) Out {
	var rest Rest
	return rest.Filter(l.Tail)
}

// Package reduce implements folding of heterogeneous lists into a
// single accumulator.
//
// Each element type needs its own combine function, so a fold is
// described by a plan: a zero-sized type with one [Next] step per
// element, each naming the [Combiner] for that element's type, and
// a final [Done]. The Go compiler checks that every step's combiner
// accepts the element it is given.
//
// The fold is strictly left to right: the combiner for element i is
// called with the accumulator returned by the combiner for element
// i-1, and every element is visited exactly once.
package reduce

import "github.com/rogpeppe/tuplekit/hlist"

// Combiner is a combine binding for accumulator type Acc and
// element type E. Implementations are usually zero-sized.
type Combiner[Acc, E any] interface {
	Combine(acc Acc, e E) Acc
}

// Folder is implemented by every reduce plan. A Folder folds a list
// of type L into an accumulator of type Acc.
type Folder[Acc any, L hlist.List] interface {
	Fold(acc Acc, l L) Acc
}

// Done is the plan for the end of a list: it returns the
// accumulator unchanged.
type Done[Acc any] struct{}

// Fold implements Folder.
func (Done[Acc]) Fold(acc Acc, _ hlist.End) Acc {
	return acc
}

// Next is the plan that combines the head of a list of type
// hlist.Cons[H, T] into the accumulator using C, then folds the
// tail with Rest.
type Next[Acc, H any, T hlist.List, C Combiner[Acc, H], Rest Folder[Acc, T]] struct{}

// Fold implements Folder.
func (Next[Acc, H, T, C, Rest]) Fold(acc Acc, l hlist.Cons[H, T]) Acc {
	var (
		c    C
		rest Rest
	)
	return rest.Fold(c.Combine(acc, l.Head), l.Tail)
}

package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplekit/hlist"
	"github.com/rogpeppe/tuplekit/tuple"
)

func TestRoundTripEmpty(t *testing.T) {
	l := tuple.MkT0().Nest()
	qt.Assert(t, qt.Equals(l, hlist.End{}))
	qt.Assert(t, qt.Equals(tuple.Unnest0(l), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.T0{}.Len(), 0))
}

func TestRoundTripSmall(t *testing.T) {
	t1 := tuple.MkT1("x")
	qt.Assert(t, qt.Equals(tuple.Unnest1(t1.Nest()), t1))

	t2 := tuple.MkT2(uint8(1), "two")
	qt.Assert(t, qt.Equals(tuple.Unnest2(t2.Nest()), t2))

	t3 := tuple.MkT3(uint8(1), uint16(2), struct{}{})
	var l tuple.Nested3[uint8, uint16, struct{}] = t3.Nest()
	qt.Assert(t, qt.Equals(l.Head, uint8(1)))
	qt.Assert(t, qt.Equals(l.Tail.Head, uint16(2)))
	qt.Assert(t, qt.Equals(l.Tail.Tail.Tail, hlist.End{}))
	qt.Assert(t, qt.Equals(tuple.Unnest3(l), t3))
}

func TestRoundTripNonComparable(t *testing.T) {
	t2 := tuple.MkT2([]byte("abc"), map[string]int{"a": 1})
	qt.Assert(t, qt.DeepEquals(tuple.Unnest2(t2.Nest()), t2))
}

func TestRoundTripMax(t *testing.T) {
	t26 := tuple.MkT26(
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
		20, 21, 22, 23, 24, "z",
	)
	l := t26.Nest()
	qt.Assert(t, qt.Equals(l.Len(), tuple.MaxArity))
	qt.Assert(t, qt.Equals(tuple.Unnest26(l), t26))
	vals := hlist.Values(l)
	qt.Assert(t, qt.HasLen(vals, 26))
	qt.Assert(t, qt.Equals(vals[25], any("z")))
	qt.Assert(t, qt.Equals(vals[10], any(10)))
}

func TestNestString(t *testing.T) {
	l := tuple.MkT3(1, 2, 3).Nest()
	qt.Assert(t, qt.Equals(fmt.Sprint(l), "(1, (2, (3, End)))"))
}

func TestT(t *testing.T) {
	a, b, c := tuple.MkT3(uint8(1), "b", 2.5).T()
	qt.Assert(t, qt.Equals(a, uint8(1)))
	qt.Assert(t, qt.Equals(b, "b"))
	qt.Assert(t, qt.Equals(c, 2.5))
	qt.Assert(t, qt.Equals(tuple.MkT1(7).T(), 7))
}

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MkT1(1).Len(), 1))
	qt.Assert(t, qt.Equals(tuple.MkT8(1, 2, 3, 4, 5, 6, 7, 8).Len(), 8))
	qt.Assert(t, qt.Equals(tuple.MkT8(1, 2, 3, 4, 5, 6, 7, 8).Nest().Len(), 8))
}

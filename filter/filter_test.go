package filter_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplekit/filter"
	"github.com/rogpeppe/tuplekit/hlist"
	"github.com/rogpeppe/tuplekit/tuple"
)

// option stands in for an optional value; it is only here to give
// the plans below an element type that they drop.
type option[T any] struct {
	val T
	ok  bool
}

type opt = option[struct{}]

// bytesPlan keeps the uint8 and []uint8 elements of
// (uint8, uint8, uint16, uint32, uint16, uint8, opt, []uint8).
type (
	bytesPlan  = filter.Keep[uint8, tuple.Nested7[uint8, uint16, uint32, uint16, uint8, opt, []uint8], tuple.Nested3[uint8, uint8, []uint8], bytesPlan1]
	bytesPlan1 = filter.Keep[uint8, tuple.Nested6[uint16, uint32, uint16, uint8, opt, []uint8], tuple.Nested2[uint8, []uint8], bytesPlan2]
	bytesPlan2 = filter.Drop[uint16, tuple.Nested5[uint32, uint16, uint8, opt, []uint8], tuple.Nested2[uint8, []uint8], bytesPlan3]
	bytesPlan3 = filter.Drop[uint32, tuple.Nested4[uint16, uint8, opt, []uint8], tuple.Nested2[uint8, []uint8], bytesPlan4]
	bytesPlan4 = filter.Drop[uint16, tuple.Nested3[uint8, opt, []uint8], tuple.Nested2[uint8, []uint8], bytesPlan5]
	bytesPlan5 = filter.Keep[uint8, tuple.Nested2[opt, []uint8], tuple.Nested1[[]uint8], bytesPlan6]
	bytesPlan6 = filter.Drop[opt, tuple.Nested1[[]uint8], tuple.Nested1[[]uint8], bytesPlan7]
	bytesPlan7 = filter.Keep[[]uint8, hlist.End, hlist.End, filter.Stop]
)

// keepAllPlan keeps every element of (uint8, uint8, uint8, []uint8).
type keepAllPlan = filter.Keep[uint8, tuple.Nested3[uint8, uint8, []uint8], tuple.Nested3[uint8, uint8, []uint8],
	filter.Keep[uint8, tuple.Nested2[uint8, []uint8], tuple.Nested2[uint8, []uint8],
		filter.Keep[uint8, tuple.Nested1[[]uint8], tuple.Nested1[[]uint8],
			filter.Keep[[]uint8, hlist.End, hlist.End, filter.Stop]]]]

func TestFilterMixed(t *testing.T) {
	in := tuple.MkT8(uint8(0), uint8(1), uint16(2), uint32(3), uint16(4), uint8(5), opt{}, []uint8{1})
	out := tuple.Unnest4(bytesPlan{}.Filter(in.Nest()))
	qt.Assert(t, qt.DeepEquals(out, tuple.MkT4(uint8(0), uint8(1), uint8(5), []uint8{1})))
}

func TestFilterShort(t *testing.T) {
	type plan = filter.Keep[uint8, tuple.Nested2[uint8, uint16], tuple.Nested1[uint8],
		filter.Keep[uint8, tuple.Nested1[uint16], hlist.End,
			filter.Drop[uint16, hlist.End, hlist.End, filter.Stop]]]
	out := tuple.Unnest2(plan{}.Filter(tuple.MkT3(uint8(1), uint8(2), uint16(3)).Nest()))
	qt.Assert(t, qt.Equals(out, tuple.MkT2(uint8(1), uint8(2))))
}

func TestFilterEmpty(t *testing.T) {
	out := tuple.Unnest0(filter.Stop{}.Filter(tuple.MkT0().Nest()))
	qt.Assert(t, qt.Equals(out, tuple.T0{}))
}

func TestFilterDropAll(t *testing.T) {
	type plan = filter.Drop[int, tuple.Nested2[string, bool], hlist.End,
		filter.Drop[string, tuple.Nested1[bool], hlist.End,
			filter.Drop[bool, hlist.End, hlist.End, filter.Stop]]]
	out := plan{}.Filter(tuple.MkT3(1, "a", true).Nest())
	qt.Assert(t, qt.Equals(out, hlist.End{}))
}

func TestFilterPreservesOrder(t *testing.T) {
	// Keep positions 0, 2 and 3 of four string-valued elements: the
	// output must be the subsequence in its original order.
	type plan = filter.Keep[string, tuple.Nested3[string, string, string], tuple.Nested2[string, string],
		filter.Drop[string, tuple.Nested2[string, string], tuple.Nested2[string, string],
			filter.Keep[string, tuple.Nested1[string], tuple.Nested1[string],
				filter.Keep[string, hlist.End, hlist.End, filter.Stop]]]]
	out := plan{}.Filter(tuple.MkT4("a", "b", "c", "d").Nest())
	qt.Assert(t, qt.Equals(out.Len(), 3))
	qt.Assert(t, qt.DeepEquals(hlist.Values(out), []any{"a", "c", "d"}))
}

func TestFilterIdempotentWhenKeepingAll(t *testing.T) {
	in := tuple.MkT8(uint8(0), uint8(1), uint16(2), uint32(3), uint16(4), uint8(5), opt{}, []uint8{1})
	once := bytesPlan{}.Filter(in.Nest())

	// The assignment checks statically that filtering again with a
	// predicate that includes every remaining type leaves the type
	// unchanged.
	var twice tuple.Nested4[uint8, uint8, uint8, []uint8] = keepAllPlan{}.Filter(once)
	qt.Assert(t, qt.DeepEquals(twice, once))
}

func TestStepInterface(t *testing.T) {
	var s filter.Step[tuple.Nested1[int], hlist.End] = filter.Drop[int, hlist.End, hlist.End, filter.Stop]{}
	qt.Assert(t, qt.Equals(s.Filter(tuple.MkT1(42).Nest()), hlist.End{}))
}

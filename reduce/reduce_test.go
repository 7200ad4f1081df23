package reduce_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplekit/hlist"
	"github.com/rogpeppe/tuplekit/reduce"
	"github.com/rogpeppe/tuplekit/tuple"
)

type option[T any] struct {
	val T
	ok  bool
}

func some[T any](x T) option[T] {
	return option[T]{val: x, ok: true}
}

type opt = option[struct{}]

// The sum bindings add numbers, count present options and add
// slice lengths.
type sumUint8 struct{}

func (sumUint8) Combine(acc int, e uint8) int {
	return acc + int(e)
}

type sumUint16 struct{}

func (sumUint16) Combine(acc int, e uint16) int {
	return acc + int(e)
}

type sumUint32 struct{}

func (sumUint32) Combine(acc int, e uint32) int {
	return acc + int(e)
}

type sumOption[T any] struct{}

func (sumOption[T]) Combine(acc int, e option[T]) int {
	if e.ok {
		return acc + 1
	}
	return acc
}

type sumSlice[T any] struct{}

func (sumSlice[T]) Combine(acc int, e []T) int {
	return acc + len(e)
}

type (
	sumPlan  = reduce.Next[int, uint8, tuple.Nested7[uint16, uint32, uint32, uint16, uint8, opt, []uint8], sumUint8, sumPlan1]
	sumPlan1 = reduce.Next[int, uint16, tuple.Nested6[uint32, uint32, uint16, uint8, opt, []uint8], sumUint16, sumPlan2]
	sumPlan2 = reduce.Next[int, uint32, tuple.Nested5[uint32, uint16, uint8, opt, []uint8], sumUint32, sumPlan3]
	sumPlan3 = reduce.Next[int, uint32, tuple.Nested4[uint16, uint8, opt, []uint8], sumUint32, sumPlan4]
	sumPlan4 = reduce.Next[int, uint16, tuple.Nested3[uint8, opt, []uint8], sumUint16, sumPlan5]
	sumPlan5 = reduce.Next[int, uint8, tuple.Nested2[opt, []uint8], sumUint8, sumPlan6]
	sumPlan6 = reduce.Next[int, opt, tuple.Nested1[[]uint8], sumOption[struct{}], sumPlan7]
	sumPlan7 = reduce.Next[int, []uint8, hlist.End, sumSlice[uint8], reduce.Done[int]]
)

func TestReduceSum(t *testing.T) {
	in := tuple.MkT8(uint8(1), uint16(10), uint32(100), uint32(1000), uint16(1), uint8(1), some(struct{}{}), []uint8{1})
	qt.Assert(t, qt.Equals(sumPlan{}.Fold(0, in.Nest()), 1115))
}

func TestReduceDeterministic(t *testing.T) {
	in := tuple.MkT8(uint8(1), uint16(10), uint32(100), uint32(1000), uint16(1), uint8(1), opt{}, []uint8{1, 2, 3})
	first := sumPlan{}.Fold(5, in.Nest())
	for range 10 {
		qt.Assert(t, qt.Equals(sumPlan{}.Fold(5, in.Nest()), first))
	}
	qt.Assert(t, qt.Equals(first, 5+1+10+100+1000+1+1+0+3))
}

func TestReduceEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(reduce.Done[int]{}.Fold(42, tuple.MkT0().Nest()), 42))
}

type traceInt struct{}

type traceString struct{}

func (traceInt) Combine(acc []string, e int) []string {
	return append(acc, fmt.Sprint(e))
}

func (traceString) Combine(acc []string, e string) []string {
	return append(acc, e)
}

func TestReduceLeftToRight(t *testing.T) {
	type plan = reduce.Next[[]string, int, tuple.Nested3[string, int, string], traceInt,
		reduce.Next[[]string, string, tuple.Nested2[int, string], traceString,
			reduce.Next[[]string, int, tuple.Nested1[string], traceInt,
				reduce.Next[[]string, string, hlist.End, traceString, reduce.Done[[]string]]]]]
	got := plan{}.Fold([]string{"seed"}, tuple.MkT4(1, "two", 3, "four").Nest())
	qt.Assert(t, qt.DeepEquals(got, []string{"seed", "1", "two", "3", "four"}))
}

func TestFolderInterface(t *testing.T) {
	var f reduce.Folder[int, tuple.Nested1[uint8]] = reduce.Next[int, uint8, hlist.End, sumUint8, reduce.Done[int]]{}
	qt.Assert(t, qt.Equals(f.Fold(1, tuple.MkT1(uint8(2)).Nest()), 3))
}

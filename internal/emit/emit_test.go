package emit_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/tuplekit/internal/config"
	"github.com/rogpeppe/tuplekit/internal/emit"
	"github.com/rogpeppe/tuplekit/internal/resolve"
)

var sourceTests = []struct {
	testName string
	decls    string
	want     string
}{{
	testName: "Empty",
	decls: `
goPackage: "p"
imports: ["time"]
`,
	want: `// Code generated by tuplegen. DO NOT EDIT.

package p
`,
}, {
	testName: "Imports",
	decls: `
goPackage: "p"
imports: ["time", "yaml gopkg.in/yaml.v3", "example.com/unused"]
tuples: [{name: "Pair", elems: ["time.Duration", "*yaml.Node"]}]
filters: [{
	name: "Durations"
	include: ["time.Duration"]
	exclude: ["[T any] *T"]
	apply: ["Pair"]
}]
`,
	want: `// Code generated by tuplegen. DO NOT EDIT.

package p

import (
	"time"

	"github.com/rogpeppe/tuplekit/filter"
	"github.com/rogpeppe/tuplekit/tuple"
	yaml "gopkg.in/yaml.v3"
)

// Pair is the tuple (time.Duration, *yaml.Node).
type Pair = tuple.T2[time.Duration, *yaml.Node]

// DurationsPair is Pair with only the element types included by Durations.
type DurationsPair = tuple.T1[time.Duration]

// FilterDurationsPair returns the elements of t included by Durations.
func FilterDurationsPair(t Pair) DurationsPair {
	return tuple.Unnest1(durationsPairPlan0{}.Filter(t.Nest()))
}

type durationsPairPlan0 = filter.Keep[time.Duration, tuple.Nested1[*yaml.Node], tuple.Nested0, durationsPairPlan1]
type durationsPairPlan1 = filter.Drop[*yaml.Node, tuple.Nested0, tuple.Nested0, durationsPairPlan2]
type durationsPairPlan2 = filter.Stop
`,
}, {
	testName: "RenamedRuntimeName",
	decls: `
goPackage: "p"
imports: ["xtuple example.com/x/tuple"]
tuples: [{name: "T", elems: ["xtuple.Foo"]}]
`,
	want: `// Code generated by tuplegen. DO NOT EDIT.

package p

import (
	xtuple "example.com/x/tuple"
	"github.com/rogpeppe/tuplekit/tuple"
)

// T is the tuple (xtuple.Foo).
type T = tuple.T1[xtuple.Foo]
`,
}, {
	testName: "MapAndReduce",
	decls: `
goPackage: "p"
tuples: [{name: "Ints", elems: ["int", "[]int"]}]
mappers: [{name: "slices", rules: [{from: "[T any] T", to: "[]T"}], apply: ["Ints"]}]
reducers: [{
	name: "total"
	acc: "int64"
	bindings: [{type: "int", combine: "add"}, {type: "[]int", combine: "addAll"}]
	apply: ["Ints"]
}]
`,
	want: `// Code generated by tuplegen. DO NOT EDIT.

package p

import (
	"github.com/rogpeppe/tuplekit/reduce"
	"github.com/rogpeppe/tuplekit/tuple"
)

// Ints is the tuple (int, []int).
type Ints = tuple.T2[int, []int]

// SlicesInts is Ints with its element types mapped by slices.
type SlicesInts = tuple.T2[[]int, [][]int]

// ReduceTotalInts folds the elements of t into seed using total.
func ReduceTotalInts(t Ints, seed int64) int64 {
	return totalIntsFold0{}.Fold(seed, t.Nest())
}

type totalIntsFold0 = reduce.Next[int64, int, tuple.Nested1[[]int], totalIntsCombine0, totalIntsFold1]
type totalIntsFold1 = reduce.Next[int64, []int, tuple.Nested0, totalIntsCombine1, totalIntsFold2]
type totalIntsFold2 = reduce.Done[int64]

type totalIntsCombine0 struct{}

func (totalIntsCombine0) Combine(acc int64, e int) int64 {
	return add(acc, e)
}

type totalIntsCombine1 struct{}

func (totalIntsCombine1) Combine(acc int64, e []int) int64 {
	return addAll(acc, e)
}
`,
}}

func TestSource(t *testing.T) {
	for _, test := range sourceTests {
		t.Run(test.testName, func(t *testing.T) {
			f, err := config.Parse("decls.cue", []byte(test.decls))
			qt.Assert(t, qt.IsNil(err))
			prog, err := resolve.Resolve(f, nil)
			qt.Assert(t, qt.IsNil(err))
			got, err := emit.Source(prog)
			qt.Assert(t, qt.IsNil(err))
			if diff := cmp.Diff(test.want, string(got)); diff != "" {
				t.Errorf("unexpected source (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceDeterministic(t *testing.T) {
	f, err := config.Parse("decls.cue", []byte(sourceTests[1].decls))
	qt.Assert(t, qt.IsNil(err))
	prog, err := resolve.Resolve(f, nil)
	qt.Assert(t, qt.IsNil(err))
	first, err := emit.Source(prog)
	qt.Assert(t, qt.IsNil(err))
	for range 10 {
		again, err := emit.Source(prog)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(string(again), string(first)))
	}
}

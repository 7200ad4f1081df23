package resolve_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/tuplekit/internal/resolve"
	"github.com/rogpeppe/tuplekit/internal/typepat"
)

func newTuple(name string, elems ...string) *resolve.Tuple {
	types := make([]typepat.Type, len(elems))
	for i, e := range elems {
		types[i] = typepat.MustParseType(e)
	}
	return &resolve.Tuple{Name: name, Elems: resolve.NewList(types...)}
}

func patterns(srcs ...string) []*typepat.Pattern {
	ps := make([]*typepat.Pattern, len(srcs))
	for i, src := range srcs {
		ps[i] = typepat.MustParse(src)
	}
	return ps
}

var bytesPredicate = &resolve.Predicate{
	Name:    "Bytes",
	Include: patterns("uint8", "[]uint8"),
	Exclude: patterns("uint16", "uint32", "[T any] Option[T]"),
}

var removeOption = &resolve.Mapper{
	Name: "RemoveOption",
	Rules: []resolve.Rule{{
		From: typepat.MustParse("[T any] Option[T]"),
		To:   typepat.MustParse("T"),
	}},
}

func TestList(t *testing.T) {
	l := newTuple("X", "uint8", "[]byte").Elems
	qt.Assert(t, qt.Equals(l.Len(), 2))
	qt.Assert(t, qt.Equals(l.String(), "(uint8, []uint8)"))
	qt.Assert(t, qt.Equals(l.Tail.Head.String(), "[]uint8"))
	qt.Assert(t, qt.IsNil(l.Tail.Tail))

	var empty *resolve.List
	qt.Assert(t, qt.Equals(empty.Len(), 0))
	qt.Assert(t, qt.Equals(empty.String(), "()"))
	qt.Assert(t, qt.IsNil(resolve.NewList()))
}

func TestMapRemoveOption(t *testing.T) {
	out, err := removeOption.Map(newTuple("Options", "Option[uint8]", "Option[uint16]", "Option[struct{}]"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(out.String(), "(uint8, uint16, struct{})"))
}

func TestMapEmpty(t *testing.T) {
	out, err := removeOption.Map(newTuple("Empty"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(out))
}

func TestMapNoAssociation(t *testing.T) {
	_, err := removeOption.Map(newTuple("Mixed", "Option[uint8]", "uint16", "Option[int]", "string"))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrNoAssociation))
	qt.Assert(t, qt.Equals(err.Error(), ""+
		"RemoveOption(Mixed): element 1 (uint16): no association\n"+
		"RemoveOption(Mixed): element 3 (string): no association",
	))
}

func TestMapAmbiguous(t *testing.T) {
	m := &resolve.Mapper{
		Name: "M",
		Rules: []resolve.Rule{{
			From: typepat.MustParse("[T any] Option[T]"),
			To:   typepat.MustParse("T"),
		}, {
			From: typepat.MustParse("Option[uint8]"),
			To:   typepat.MustParse("uint8"),
		}},
	}
	_, err := m.Map(newTuple("X", "Option[byte]"))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrAmbiguous))
	var rerr *resolve.Error
	qt.Assert(t, qt.IsTrue(errors.As(err, &rerr)))
	qt.Assert(t, qt.CmpEquals(*rerr, resolve.Error{
		Kind:   resolve.ErrAmbiguous,
		Decl:   "M",
		Tuple:  "X",
		Index:  0,
		Type:   "Option[uint8]",
		Detail: `matched by "[T any] Option[T]" and "Option[uint8]"`,
	}, cmpopts.EquateErrors()))
}

var filterTests = []struct {
	testName  string
	elems     []string
	want      string
	wantMarks string
}{{
	testName:  "Packet",
	elems:     []string{"uint8", "uint8", "uint16", "uint32", "uint16", "uint8", "Option[struct{}]", "[]uint8"},
	want:      "(uint8, uint8, uint8, []uint8)",
	wantMarks: "(filter.Include, filter.Include, filter.Exclude, filter.Exclude, filter.Exclude, filter.Include, filter.Exclude, filter.Include)",
}, {
	testName:  "Short",
	elems:     []string{"uint8", "uint8", "uint16"},
	want:      "(uint8, uint8)",
	wantMarks: "(filter.Include, filter.Include, filter.Exclude)",
}, {
	testName:  "Empty",
	want:      "()",
	wantMarks: "()",
}, {
	testName:  "DropAll",
	elems:     []string{"uint16", "Option[int]"},
	want:      "()",
	wantMarks: "(filter.Exclude, filter.Exclude)",
}, {
	testName:  "KeepAll",
	elems:     []string{"byte", "[]byte"},
	want:      "(uint8, []uint8)",
	wantMarks: "(filter.Include, filter.Include)",
}}

func TestFilter(t *testing.T) {
	for _, test := range filterTests {
		t.Run(test.testName, func(t *testing.T) {
			kept, marks, err := bytesPredicate.Filter(newTuple(test.testName, test.elems...))
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(kept.String(), test.want))
			qt.Assert(t, qt.Equals(marks.String(), test.wantMarks))
			qt.Assert(t, qt.Equals(marks.Len(), len(test.elems)))
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	kept, _, err := bytesPredicate.Filter(newTuple("Packet", "uint8", "uint16", "[]uint8", "Option[int]"))
	qt.Assert(t, qt.IsNil(err))
	again, _, err := bytesPredicate.Filter(&resolve.Tuple{Name: "Kept", Elems: kept})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(again.String(), kept.String()))
}

func TestFilterIncludedAndExcluded(t *testing.T) {
	p := &resolve.Predicate{
		Name:    "P",
		Include: patterns("[T any] []T"),
		Exclude: patterns("[]uint8"),
	}
	_, _, err := p.Filter(newTuple("X", "[]int", "[]byte"))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrAmbiguous))
	qt.Assert(t, qt.ErrorMatches(err, `P\(X\): element 1 \(\[\]uint8\): ambiguous association: .*`))
}

func TestFilterUnmatched(t *testing.T) {
	_, _, err := bytesPredicate.Filter(newTuple("X", "uint8", "int64"))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrNoAssociation))
	qt.Assert(t, qt.ErrorMatches(err, `Bytes\(X\): element 1 \(int64\): no association`))
}

var sumReducer = &resolve.Reducer{
	Name: "Sum",
	Acc:  typepat.MustParseType("int"),
	Bindings: []resolve.Binding{
		{Type: typepat.MustParse("uint8"), Combine: "addUint8"},
		{Type: typepat.MustParse("uint16"), Combine: "addUint16"},
		{Type: typepat.MustParse("uint32"), Combine: "addUint32"},
		{Type: typepat.MustParse("[T any] Option[T]"), Combine: "countOption"},
		{Type: typepat.MustParse("[T any] []T"), Combine: "addLen"},
	},
}

func TestBind(t *testing.T) {
	funcs, err := sumReducer.Bind(newTuple("Counts", "uint8", "uint16", "uint32", "uint32", "uint16", "uint8", "Option[struct{}]", "[]uint8"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(funcs, []string{
		"addUint8", "addUint16", "addUint32", "addUint32", "addUint16", "addUint8", "countOption", "addLen",
	}))
}

func TestBindEmpty(t *testing.T) {
	funcs, err := sumReducer.Bind(newTuple("Empty"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(funcs, 0))
}

func TestBindErrors(t *testing.T) {
	r := &resolve.Reducer{
		Name: "R",
		Acc:  typepat.MustParseType("int"),
		Bindings: []resolve.Binding{
			{Type: typepat.MustParse("[T any] []T"), Combine: "addLen"},
			{Type: typepat.MustParse("[]string"), Combine: "addStrings"},
		},
	}
	_, err := r.Bind(newTuple("X", "float64", "[]string", "[]int"))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrNoBinding))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrAmbiguous))
	qt.Assert(t, qt.Equals(err.Error(), ""+
		"R(X): element 0 (float64): no reducer binding\n"+
		`R(X): element 1 ([]string): ambiguous association: matched by "[T any] []T" and "[]string"`,
	))
}

func TestErrorMessage(t *testing.T) {
	err := &resolve.Error{
		Kind:   resolve.ErrArity,
		Decl:   "Big",
		Index:  -1,
		Detail: "27 elements, maximum is 26",
	}
	qt.Assert(t, qt.Equals(err.Error(), "Big: too many elements: 27 elements, maximum is 26"))
	qt.Assert(t, qt.ErrorIs(error(err), resolve.ErrArity))
}

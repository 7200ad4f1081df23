package typepat_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplekit/internal/typepat"
)

var parseTypeTests = []struct {
	src  string
	want string
}{{
	src:  "uint8",
	want: "uint8",
}, {
	src:  "byte",
	want: "uint8",
}, {
	src:  "[]byte",
	want: "[]uint8",
}, {
	src:  "map[string]rune",
	want: "map[string]int32",
}, {
	src:  "Option[struct{}]",
	want: "Option[struct{}]",
}, {
	src:  "pkg.Pair[int,  string]",
	want: "pkg.Pair[int, string]",
}, {
	src:  "(*int)",
	want: "*int",
}, {
	src:  "[4]uint16",
	want: "[4]uint16",
}, {
	src:  "func(int, ...string) (bool, error)",
	want: "func(int, ...string) (bool, error)",
}, {
	src:  "<-chan []int",
	want: "<-chan []int",
}}

func TestParseType(t *testing.T) {
	for _, test := range parseTypeTests {
		t.Run(test.src, func(t *testing.T) {
			typ, err := typepat.ParseType(test.src)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(typ.String(), test.want))
		})
	}
}

func TestParseTypeError(t *testing.T) {
	for _, src := range []string{"", "   ", "[T any] T", "1 +", "int; type x int", "= int"} {
		t.Run(src, func(t *testing.T) {
			_, err := typepat.ParseType(src)
			var serr *typepat.SyntaxError
			qt.Assert(t, qt.IsTrue(errors.As(err, &serr)))
			qt.Assert(t, qt.Equals(serr.Src, src))
		})
	}
}

func TestParsePatternError(t *testing.T) {
	_, err := typepat.Parse("[T any] Option[int]")
	qt.Assert(t, qt.ErrorMatches(err, `invalid type "\[T any\] Option\[int\]": pattern variable T not used`))

	_, err = typepat.Parse("[T any] pkg.T")
	qt.Assert(t, qt.ErrorMatches(err, `invalid type "\[T any\] pkg.T": pattern variable T not used`))

	_, err = typepat.Parse("[T, T any] Pair[T, T]")
	qt.Assert(t, qt.ErrorMatches(err, `.*pattern variable T declared twice`))
}

var matchTests = []struct {
	pattern string
	typ     string
	want    map[string]string // nil means no match
}{{
	pattern: "uint8",
	typ:     "uint8",
	want:    map[string]string{},
}, {
	pattern: "uint8",
	typ:     "byte",
	want:    map[string]string{},
}, {
	pattern: "uint8",
	typ:     "uint16",
}, {
	pattern: "[T any] Option[T]",
	typ:     "Option[struct{}]",
	want:    map[string]string{"T": "struct{}"},
}, {
	pattern: "[T any] Option[T]",
	typ:     "Option[[]Option[int]]",
	want:    map[string]string{"T": "[]Option[int]"},
}, {
	pattern: "[T any] Option[T]",
	typ:     "pkg.Option[int]",
}, {
	pattern: "[T any] []T",
	typ:     "[]uint8",
	want:    map[string]string{"T": "uint8"},
}, {
	pattern: "[T any] []T",
	typ:     "[3]uint8",
}, {
	pattern: "[N any] [N]uint8",
	typ:     "[16]byte",
	want:    map[string]string{"N": "16"},
}, {
	pattern: "[N any] [N]uint8",
	typ:     "[16]uint16",
}, {
	pattern: "[K comparable, V any] map[K]V",
	typ:     "map[string][]int",
	want:    map[string]string{"K": "string", "V": "[]int"},
}, {
	pattern: "[T any] Pair[T, T]",
	typ:     "Pair[int, int]",
	want:    map[string]string{"T": "int"},
}, {
	pattern: "[T any] Pair[T, T]",
	typ:     "Pair[int, string]",
}, {
	pattern: "[T any] *T",
	typ:     "*time.Duration",
	want:    map[string]string{"T": "time.Duration"},
}, {
	pattern: "[A, R any] func(A) R",
	typ:     "func(x int) (err error)",
	want:    map[string]string{"A": "int", "R": "error"},
}, {
	pattern: "[A, R any] func(A) R",
	typ:     "func(int, int) error",
}, {
	pattern: "[T any] chan T",
	typ:     "<-chan int",
}, {
	pattern: "struct{}",
	typ:     "struct{}",
	want:    map[string]string{},
}, {
	pattern: "[T any] T",
	typ:     "interface{ M() }",
	want:    map[string]string{"T": "interface{M()}"},
}}

func TestMatch(t *testing.T) {
	for _, test := range matchTests {
		t.Run(test.pattern+"~"+test.typ, func(t *testing.T) {
			p, err := typepat.Parse(test.pattern)
			qt.Assert(t, qt.IsNil(err))
			b, ok := p.Match(typepat.MustParseType(test.typ))
			if test.want == nil {
				qt.Assert(t, qt.IsFalse(ok))
				return
			}
			qt.Assert(t, qt.IsTrue(ok))
			got := make(map[string]string)
			for name, typ := range b {
				got[name] = typ.String()
			}
			qt.Assert(t, qt.DeepEquals(got, test.want))
		})
	}
}

func TestSubst(t *testing.T) {
	from := typepat.MustParse("[K comparable, V any] map[K]V")
	b, ok := from.Match(typepat.MustParseType("map[string]Option[int]"))
	qt.Assert(t, qt.IsTrue(ok))

	to := typepat.MustParse("func(K) (V, bool)")
	qt.Assert(t, qt.Equals(to.Subst(b).String(), "func(string) (Option[int], bool)"))

	// Struct field names are not type positions.
	to = typepat.MustParse("struct{ K K }")
	qt.Assert(t, qt.Equals(to.Subst(b).String(), "struct{K string}"))

	// Unbound identifiers are left alone.
	to = typepat.MustParse("[]T")
	qt.Assert(t, qt.Equals(to.Subst(b).String(), "[]T"))
}

func TestNames(t *testing.T) {
	typ := typepat.MustParseType("map[Key][]pkg.Value[Inner, int]")
	qt.Assert(t, qt.DeepEquals(typ.Names(), []string{"Key", "Inner"}))
	qt.Assert(t, qt.DeepEquals(typ.Packages(), []string{"pkg"}))
}

func TestVars(t *testing.T) {
	p := typepat.MustParse("[K comparable, V any] map[K]V")
	qt.Assert(t, qt.DeepEquals(p.Vars(), []string{"K", "V"}))
	qt.Assert(t, qt.IsTrue(p.IsGeneric()))
	qt.Assert(t, qt.IsFalse(typepat.MustParse("int").IsGeneric()))
	qt.Assert(t, qt.Equals(p.String(), "[K comparable, V any] map[K]V"))
}

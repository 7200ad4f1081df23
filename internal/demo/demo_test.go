package demo

import (
	"os"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"github.com/rogpeppe/tuplekit/internal/config"
	"github.com/rogpeppe/tuplekit/internal/emit"
	"github.com/rogpeppe/tuplekit/internal/resolve"
	"github.com/rogpeppe/tuplekit/tuple"
)

var packet = tuple.MkT8(uint8(0), uint8(1), uint16(2), uint32(3), uint16(4), uint8(5), None[struct{}](), []uint8{1})

func TestFilterPacket(t *testing.T) {
	got := FilterBytesPacket(packet)
	qt.Assert(t, qt.DeepEquals(got, tuple.MkT4(uint8(0), uint8(1), uint8(5), []uint8{1})))
}

func TestFilterShort(t *testing.T) {
	got := FilterBytesShort(tuple.MkT3(uint8(1), uint8(2), uint16(3)))
	qt.Assert(t, qt.Equals(got, tuple.MkT2(uint8(1), uint8(2))))
}

func TestFilterEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(FilterBytesEmpty(tuple.MkT0()), tuple.MkT0()))
}

func TestFilterKeepsOrder(t *testing.T) {
	a, b, c, d := FilterBytesPacket(tuple.MkT8(uint8(9), uint8(8), uint16(7), uint32(6), uint16(5), uint8(4), Some(struct{}{}), []uint8{3, 2})).T()
	qt.Assert(t, qt.Equals(a, 9))
	qt.Assert(t, qt.Equals(b, 8))
	qt.Assert(t, qt.Equals(c, 4))
	qt.Assert(t, qt.DeepEquals(d, []uint8{3, 2}))
}

func TestReducePacket(t *testing.T) {
	counts := tuple.MkT8(uint8(1), uint8(10), uint16(100), uint32(1000), uint16(1), uint8(1), Some(struct{}{}), []uint8{1})
	qt.Assert(t, qt.Equals(ReduceSumPacket(counts, 0), 1115))
	// Reducing is deterministic and the seed is added once.
	qt.Assert(t, qt.Equals(ReduceSumPacket(counts, 0), 1115))
	qt.Assert(t, qt.Equals(ReduceSumPacket(counts, 5), 1120))
}

func TestReduceNone(t *testing.T) {
	qt.Assert(t, qt.Equals(ReduceSumPacket(packet, 0), 0+1+2+3+4+5+0+1))
}

func TestReduceEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(ReduceSumEmpty(tuple.MkT0(), 42), 42))
}

func TestMapOptions(t *testing.T) {
	// The mapped type can hold the unwrapped values.
	var mapped RemoveOptionOptions = tuple.MkT3(uint8(1), uint16(2), struct{}{})
	qt.Assert(t, qt.Equals(mapped.Len(), Options{}.Len()))
	var empty RemoveOptionEmpty = tuple.MkT0()
	qt.Assert(t, qt.Equals(empty.Len(), 0))
}

func TestOption(t *testing.T) {
	v, ok := Some(3).Get()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 3))
	_, ok = None[int]().Get()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestGeneratedCodeUpToDate(t *testing.T) {
	f, err := config.Load("tuples.cue")
	qt.Assert(t, qt.IsNil(err))
	prog, err := resolve.Resolve(f, zaptest.NewLogger(t))
	qt.Assert(t, qt.IsNil(err))
	got, err := emit.Source(prog)
	qt.Assert(t, qt.IsNil(err))
	want, err := os.ReadFile("tuples_tuplegen.go")
	qt.Assert(t, qt.IsNil(err))
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Fatalf("tuples_tuplegen.go is out of date; run go generate (-want +got):\n%s", diff)
	}
}

// Package demo shows the code tuplegen writes for the declarations
// in tuples.cue.
package demo

//go:generate go run github.com/rogpeppe/tuplekit/cmd/tuplegen gen tuples.cue

// Option holds an optional value.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value held in o and whether there is one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func addUint8(acc int, e uint8) int {
	return acc + int(e)
}

func addUint16(acc int, e uint16) int {
	return acc + int(e)
}

func addUint32(acc int, e uint32) int {
	return acc + int(e)
}

// countOption counts present values.
func countOption[T any](acc int, o Option[T]) int {
	if _, ok := o.Get(); ok {
		acc++
	}
	return acc
}

func addLen[T any](acc int, s []T) int {
	return acc + len(s)
}

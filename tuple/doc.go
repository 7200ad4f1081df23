// Package tuple provides a collection of generic struct types
// that hold a specific number of values, from T0 (the empty tuple)
// up to [MaxArity] values.
//
// Each tuple type TN has a nested form NestedN, the
// right-nested hlist.Cons list holding the same values
// terminated by hlist.End. TN.Nest and UnnestN convert
// between the two forms and are inverses of one another:
//
//	t := tuple.MkT3(uint8(1), "two", 3.0)
//	l := t.Nest()           // hlist.Cons[uint8, hlist.Cons[string, hlist.Cons[float64, hlist.End]]]
//	t == tuple.Unnest3(l)   // true
//
// The nested form is what the filter and reduce packages operate on.
package tuple

//go:generate go run generate.go

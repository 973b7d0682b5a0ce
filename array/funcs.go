package array

import "fmt"

// This file contains package-level generic functions for operations that
// turn an Array[T] into something of another type. Go methods cannot
// introduce type parameters, so these are stand-alone functions:
//
//	labels := array.Map(array.New(1, 2, 3), func(n int, _ array.Key) string {
//	    return strconv.Itoa(n * 2)
//	})

// Map applies fn to every occupied slot of c and returns a new Array[U]
// with the same keys: gaps stay gaps and associative entries keep their
// names and order.
func Map[T, U any](c Container[T], fn func(T, Key) U) *Array[U] {
	out := Empty[U]()
	if a, ok := c.(*Array[T]); ok {
		out = derive[U](a)
	}
	out.slots = make([]slot[U], c.Len())
	for k, v := range c.All() {
		out.Set(k, fn(v, k))
	}
	return out
}

// Reduce folds the occupied values of c, in iteration order, into a single
// value of type U.
//
//	sum := array.Reduce(array.New(1, 2, 3), func(acc, n int, _ array.Key) int {
//	    return acc + n
//	}, 0)
func Reduce[T, U any](c Container[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	for k, v := range c.All() {
		result = fn(result, v, k)
	}
	return result
}

// Combine builds an Array from parallel key and value slices. Keys are
// classified with [ParseKey], so "0" lands in the ordered region and "id"
// in the associative one. Returns [ErrInvalidArgument] if the slices have
// different lengths.
//
//	a, _ := array.Combine([]string{"0", "id"}, []int{7, 42}) // → [7, 42]
func Combine[T any](keys []string, values []T) (*Array[T], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys for %d values", ErrInvalidArgument, len(keys), len(values))
	}
	out := Empty[T]()
	for i, k := range keys {
		out.Set(ParseKey(k), values[i])
	}
	return out, nil
}

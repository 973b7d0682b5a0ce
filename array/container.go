package array

import "iter"

// Container is the read-only surface shared by every [Array][T].
//
// Accept Container in your own functions when they only need to inspect a
// hybrid array, so that callers can pass any instantiation or a wrapper of
// their own. No method returns an *Array, so a type backed by something
// else can implement it directly.
type Container[T any] interface {
	// All iterates over occupied slots: ordered ones by ascending index,
	// then associative ones in insertion order.
	All() iter.Seq2[Key, T]

	// Get returns the value under k and whether the slot is occupied.
	Get(k Key) (T, bool)

	// Has reports whether k addresses an occupied slot.
	Has(k Key) bool

	// Len returns the length of the ordered region, gaps included.
	Len() int

	// Size returns the number of occupied slots.
	Size() int
}

var _ Container[any] = (*Array[any])(nil)

package array

import (
	"fmt"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────────────────────────────────────

// Append pushes each value as a new ordered slot at Len() and returns a.
//
//	array.New(1, 2).Append(3, 4) // → [1, 2, 3, 4]
func (a *Array[T]) Append(values ...T) *Array[T] {
	for _, v := range values {
		a.slots = append(a.slots, slot[T]{value: v, set: true})
	}
	return a
}

// Prepend inserts each value at index 0 in argument order, shifting every
// ordered slot (gaps included) up by one per value. The last value given
// therefore ends up first.
//
//	array.New(1, 2).Prepend(3, 4) // → [4, 3, 1, 2]
func (a *Array[T]) Prepend(values ...T) *Array[T] {
	for _, v := range values {
		a.slots = slices.Insert(a.slots, 0, slot[T]{value: v, set: true})
	}
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Trim
// ─────────────────────────────────────────────────────────────────────────────

// TrimRight removes the last n ordered slots, gaps included. n is clamped
// to Len(); a negative n returns [ErrInvalidArgument] and leaves a as is.
//
//	array.New(1, 2, 3, 4).TrimRight(2) // → [1, 2]
func (a *Array[T]) TrimRight(n int) (*Array[T], error) {
	if err := checkCount("TrimRight", n); err != nil {
		return a, err
	}
	n = min(n, len(a.slots))
	clear(a.slots[len(a.slots)-n:])
	a.slots = a.slots[:len(a.slots)-n]
	return a, nil
}

// TrimLeft removes the first n ordered slots, shifting the remaining ones
// down by n. Gaps keep their relative position. A negative n returns
// [ErrInvalidArgument] and leaves a as is.
//
//	array.New(1, 2, 3, 4).TrimLeft(2) // → [3, 4]
func (a *Array[T]) TrimLeft(n int) (*Array[T], error) {
	if err := checkCount("TrimLeft", n); err != nil {
		return a, err
	}
	if n < len(a.slots) {
		copy(a.slots, a.slots[n:])
	}
	return a.TrimRight(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Head returns a new Array holding the occupied values found in the first
// n ordered indices. Gaps are skipped, so fewer than n values may be
// returned. A negative n returns [ErrInvalidArgument].
//
//	array.New(1, 2, 3, 4).Head(2) // → [1, 2]
func (a *Array[T]) Head(n int) (*Array[T], error) {
	if err := checkCount("Head", n); err != nil {
		return nil, err
	}
	return a.window(0, min(n, len(a.slots))), nil
}

// Tail returns a new Array holding the occupied values found in the last
// n ordered indices. Gaps are skipped, so fewer than n values may be
// returned. A negative n returns [ErrInvalidArgument].
//
//	array.New(1, 2, 3, 4).Tail(2) // → [3, 4]
func (a *Array[T]) Tail(n int) (*Array[T], error) {
	if err := checkCount("Tail", n); err != nil {
		return nil, err
	}
	return a.window(max(len(a.slots)-n, 0), len(a.slots)), nil
}

// window collects the occupied ordered values in [from, to).
func (a *Array[T]) window(from, to int) *Array[T] {
	out := derive[T](a)
	for _, s := range a.slots[from:to] {
		if s.set {
			out.Append(s.value)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────────────────────────────────────

// Out removes the given keys and returns a. Named keys are deleted.
// Ordered keys are spliced out, shifting every later slot down by one; they
// are processed from the highest index to the lowest so that each index
// refers to the slot it addressed when Out was called. Duplicate keys count
// once and indices at or beyond Len() are ignored.
//
// With no keys, Out removes the last ordered slot.
//
//	array.New(1, 2, 3, 4).Out(array.Index(0), array.Index(3), array.Index(1)) // → [3]
func (a *Array[T]) Out(keys ...Key) *Array[T] {
	if len(keys) == 0 {
		if len(a.slots) > 0 {
			a.splice(len(a.slots) - 1)
		}
		return a
	}
	indices := make([]int, 0, len(keys))
	for _, k := range keys {
		if name, ok := k.Name(); ok {
			a.deleteName(name)
			continue
		}
		i, _ := k.Int()
		indices = append(indices, i)
	}
	slices.Sort(indices)
	indices = slices.Compact(indices)
	for j := len(indices) - 1; j >= 0; j-- {
		if i := indices[j]; i >= 0 && i < len(a.slots) {
			a.splice(i)
		}
	}
	return a
}

// OutAll flattens every key container in sets into one key set and removes
// it with [Array.Out]. Passing no set, or only empty sets, removes nothing.
//
//	if keys, ok := a.IndexOf(1); ok {
//	    a.OutAll(keys) // every 1 is gone
//	}
func (a *Array[T]) OutAll(sets ...*Array[Key]) *Array[T] {
	var keys []Key
	for _, set := range sets {
		if set != nil {
			keys = append(keys, set.ToSlice()...)
		}
	}
	return a.outSome(keys)
}

// splice removes the ordered slot at i and shifts later slots down.
func (a *Array[T]) splice(i int) {
	a.slots = slices.Delete(a.slots, i, i+1)
}

// Compact removes every gap from the ordered region, re-indexing the
// occupied ordered values contiguously from 0. Associative entries are
// untouched.
//
//	[1, , 2, , , 3].Compact() // → [1, 2, 3] with Len() == 3
func (a *Array[T]) Compact() *Array[T] {
	a.slots = slices.DeleteFunc(a.slots, func(s slot[T]) bool { return !s.set })
	return a
}

func checkCount(op string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s count must be ≥ 0, got %d", ErrInvalidArgument, op, n)
	}
	return nil
}

package array

import (
	"fmt"
	"iter"
	"slices"
)

// Array is a generic hybrid container: an ordered region of slots indexed
// 0 … Len()-1, where each slot is either occupied or a gap, plus an
// associative region of named entries kept in insertion order.
//
// Editing methods change the receiver in place and return it so they can
// be chained. Arrays are not safe for concurrent use, and callbacks passed
// to [Array.Each] must not add or remove slots of the array being iterated.
//
// # Creating an array
//
//	a := array.New(1, 2, 3)
//	a := array.From([]string{"a", "b"})
//	a := array.Empty[float64]()
//	a := array.NewWithOptions([]any{1, "1"}, array.WithEquality(array.Strict))
type Array[T any] struct {
	slots []slot[T]
	names []string
	assoc map[string]T
	opts  options
}

// slot is one position of the ordered region. A slot with set == false is
// a gap, which is distinct from an occupied slot holding the zero value.
type slot[T any] struct {
	value T
	set   bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array whose ordered region holds values (copied).
func New[T any](values ...T) *Array[T] {
	return NewWithOptions(values)
}

// From creates an Array from a slice (the slice is copied).
func From[T any](values []T) *Array[T] {
	return NewWithOptions(values)
}

// Empty creates an empty Array of type T.
func Empty[T any]() *Array[T] {
	return NewWithOptions[T](nil)
}

// NewWithOptions creates an Array holding values and applies opts.
func NewWithOptions[T any](values []T, opts ...Option) *Array[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	a := &Array[T]{
		slots: make([]slot[T], len(values)),
		assoc: make(map[string]T),
		opts:  o,
	}
	for i, v := range values {
		a.slots[i] = slot[T]{value: v, set: true}
	}
	return a
}

// derive returns an empty Array of any element type sharing a's options.
func derive[U, T any](a *Array[T]) *Array[U] {
	return &Array[U]{assoc: make(map[string]U), opts: a.opts}
}

// Clone returns an independent copy of a, gaps and configuration included.
func (a *Array[T]) Clone() *Array[T] {
	out := derive[T](a)
	out.slots = slices.Clone(a.slots)
	out.names = slices.Clone(a.names)
	for name, v := range a.assoc {
		out.assoc[name] = v
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length of the ordered region: highest index + 1, gaps
// included. Associative entries are not counted.
func (a *Array[T]) Len() int { return len(a.slots) }

// Size returns the number of occupied slots, ordered and associative.
func (a *Array[T]) Size() int {
	n := len(a.assoc)
	for _, s := range a.slots {
		if s.set {
			n++
		}
	}
	return n
}

// IsEmpty reports whether a has no occupied slot.
func (a *Array[T]) IsEmpty() bool { return a.Size() == 0 }

// Get returns the value stored under k together with a presence flag.
// Gaps and unknown keys report false.
func (a *Array[T]) Get(k Key) (T, bool) {
	var zero T
	if name, ok := k.Name(); ok {
		v, found := a.assoc[name]
		return v, found
	}
	i, _ := k.Int()
	if i < 0 || i >= len(a.slots) || !a.slots[i].set {
		return zero, false
	}
	return a.slots[i].value, true
}

// Has reports whether k addresses an occupied slot.
func (a *Array[T]) Has(k Key) bool {
	_, ok := a.Get(k)
	return ok
}

// Set stores v under k and returns a. Setting an index at or beyond Len()
// grows the ordered region, leaving gaps between the old end and k.
// Negative indices are ignored.
func (a *Array[T]) Set(k Key, v T) *Array[T] {
	if name, ok := k.Name(); ok {
		if _, exists := a.assoc[name]; !exists {
			a.names = append(a.names, name)
		}
		a.assoc[name] = v
		return a
	}
	i, _ := k.Int()
	if i < 0 {
		return a
	}
	if i >= len(a.slots) {
		a.slots = append(a.slots, make([]slot[T], i+1-len(a.slots))...)
	}
	a.slots[i] = slot[T]{value: v, set: true}
	return a
}

// Delete empties the slot under k and returns a. An ordered slot becomes a
// gap and Len() is unchanged; use [Array.Out] to remove it with shifting.
func (a *Array[T]) Delete(k Key) *Array[T] {
	if name, ok := k.Name(); ok {
		a.deleteName(name)
		return a
	}
	if i, _ := k.Int(); i >= 0 && i < len(a.slots) {
		a.slots[i] = slot[T]{}
	}
	return a
}

func (a *Array[T]) deleteName(name string) {
	if _, ok := a.assoc[name]; !ok {
		return
	}
	delete(a.assoc, name)
	if i := slices.Index(a.names, name); i >= 0 {
		a.names = slices.Delete(a.names, i, i+1)
	}
}

// Entries returns every occupied slot as an [Entry], in iteration order.
func (a *Array[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, a.Size())
	a.Each(func(v T, k Key) bool {
		out = append(out, Entry[T]{Key: k, Value: v})
		return true
	})
	return out
}

// Keys returns a new Array of the keys of occupied slots, in iteration
// order. When onlyOrdered is true associative keys are left out.
//
//	array.New(1, 3, 5, 7).Keys(false) // → [0, 1, 2, 3]
func (a *Array[T]) Keys(onlyOrdered bool) *Array[Key] {
	out := derive[Key](a)
	a.Each(func(_ T, k Key) bool {
		if !onlyOrdered || k.IsOrdered() {
			out.Append(k)
		}
		return true
	})
	return out
}

// Values returns a new dense Array of the occupied values, in iteration
// order. When onlyOrdered is true associative values are left out.
//
//	[1, , 2, , , 3].Values(false) // → [1, 2, 3]
func (a *Array[T]) Values(onlyOrdered bool) *Array[T] {
	out := derive[T](a)
	a.Each(func(v T, k Key) bool {
		if !onlyOrdered || k.IsOrdered() {
			out.Append(v)
		}
		return true
	})
	return out
}

// ToSlice returns the occupied values as a plain Go slice, in iteration
// order.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.Size())
	for _, v := range a.All() {
		out = append(out, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every occupied slot: ordered slots by
// ascending index, then associative entries in insertion order. Gaps are
// skipped. Iteration stops as soon as fn returns false. Returns a.
//
//	array.New(1, 2, 3).Each(func(v int, _ array.Key) bool {
//	    fmt.Println(v)
//	    return v != 2 // prints 1 and 2
//	})
func (a *Array[T]) Each(fn func(v T, k Key) bool) *Array[T] {
	for i := 0; i < len(a.slots); i++ {
		if !a.slots[i].set {
			continue
		}
		if !fn(a.slots[i].value, Index(i)) {
			return a
		}
	}
	for i := 0; i < len(a.names); i++ {
		name := a.names[i]
		if !fn(a.assoc[name], Name(name)) {
			return a
		}
	}
	return a
}

// All returns an iterator over the occupied slots in the order used by
// [Array.Each].
//
//	for k, v := range a.All() { … }
func (a *Array[T]) All() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		a.Each(func(v T, k Key) bool { return yield(k, v) })
	}
}

// Tap calls fn(a) for side-effects and returns a for further chaining.
func (a *Array[T]) Tap(fn func(*Array[T])) *Array[T] {
	fn(a)
	return a
}

// Dump prints the string form of a to stdout and returns a for chaining.
func (a *Array[T]) Dump() *Array[T] {
	fmt.Println(a.String())
	return a
}

package array

import "fmt"

// Merge folds every container in others into a, in argument order, and
// returns a. Associative entries overwrite same-named entries of a (the
// last argument wins); ordered values are appended. Gaps are not carried
// over. nil arguments are skipped; plain values are added with
// [Array.Append].
//
//	a := array.New(1, 2).Set(array.Name("x"), 0)
//	b := array.New(3).Set(array.Name("x"), 9)
//	a.Merge(b) // → [1, 2, 3] with x == 9
func (a *Array[T]) Merge(others ...*Array[T]) *Array[T] {
	for _, other := range others {
		if other == nil {
			continue
		}
		// A snapshot keeps a.Merge(a) from iterating over its own appends.
		for _, e := range other.Entries() {
			if e.Key.IsOrdered() {
				a.Append(e.Value)
			} else {
				a.Set(e.Key, e.Value)
			}
		}
	}
	return a
}

// Intersect keeps only the values of a that other contains under a's
// equality strategy, and returns a. Every slot holding a value missing from
// other is removed with [Array.Out]. A nil other returns
// [ErrInvalidArgument] and leaves a as is.
//
//	array.New(0, 1, 2).Intersect(array.New(1, 2, 3)) // → [1, 2]
func (a *Array[T]) Intersect(other *Array[T]) (*Array[T], error) {
	if other == nil {
		return a, fmt.Errorf("%w: Intersect requires a container", ErrInvalidArgument)
	}
	var drop []Key
	a.Each(func(v T, k Key) bool {
		if other.count(func(w T) bool { return a.opts.equal(v, w) }, false) == 0 {
			drop = append(drop, k)
		}
		return true
	})
	return a.outSome(drop), nil
}

// IntersectKeys keeps only the entries of a whose key is occupied in other,
// regardless of value, and returns a. A nil other returns
// [ErrInvalidArgument] and leaves a as is.
//
//	[1, 2, , , 5].IntersectKeys([, 1, 1]) // → [2] (Len() == 3)
func (a *Array[T]) IntersectKeys(other *Array[T]) (*Array[T], error) {
	if other == nil {
		return a, fmt.Errorf("%w: IntersectKeys requires a container", ErrInvalidArgument)
	}
	var drop []Key
	a.Each(func(_ T, k Key) bool {
		if !other.Has(k) {
			drop = append(drop, k)
		}
		return true
	})
	return a.outSome(drop), nil
}

// Dedupe removes every occupied value equal to an earlier one and returns
// a. The first occurrence of each distinct value survives, survivors keep
// their relative order. eq decides duplicates on its own, with no fallback
// to a's equality strategy; nil selects that strategy instead.
//
//	array.New(1, 2, 1, 3, 1).Dedupe(nil) // → [1, 2, 3]
func (a *Array[T]) Dedupe(eq func(x, y T) bool) *Array[T] {
	if eq == nil {
		eq = func(x, y T) bool { return a.opts.equal(x, y) }
	}
	var (
		kept []T
		drop []Key
	)
	a.Each(func(v T, k Key) bool {
		for _, seen := range kept {
			if eq(v, seen) {
				drop = append(drop, k)
				return true
			}
		}
		kept = append(kept, v)
		return true
	})
	return a.outSome(drop)
}

// outSome removes keys when there is at least one. Unlike Out it never
// falls back to dropping the last slot.
func (a *Array[T]) outSome(keys []Key) *Array[T] {
	if len(keys) == 0 {
		return a
	}
	return a.Out(keys...)
}

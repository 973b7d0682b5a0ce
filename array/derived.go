package array

import (
	"fmt"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest occupied value, ordered and associative alike.
//
// better(candidate, current) reports whether candidate should replace the
// current minimum; nil selects numeric comparison, where values without a
// numeric reading never win over numeric ones. An array without occupied
// slots returns [ErrEmptyCollection].
//
//	array.New(2, 3, 1).Min(nil) // → 1
func (a *Array[T]) Min(better func(candidate, current T) bool) (T, error) {
	if better == nil {
		better = func(c, cur T) bool { return numericBetter(c, cur, -1) }
	}
	return a.extreme("Min", better)
}

// Max returns the largest occupied value; see [Array.Min] for the meaning
// of better.
//
//	array.New(2, 3, 1).Max(nil) // → 3
func (a *Array[T]) Max(better func(candidate, current T) bool) (T, error) {
	if better == nil {
		better = func(c, cur T) bool { return numericBetter(c, cur, 1) }
	}
	return a.extreme("Max", better)
}

func (a *Array[T]) extreme(op string, better func(candidate, current T) bool) (T, error) {
	var (
		best  T
		found bool
	)
	a.Each(func(v T, _ Key) bool {
		if !found || better(v, best) {
			best, found = v, true
		}
		return true
	})
	if !found {
		return best, fmt.Errorf("%w: %s", ErrEmptyCollection, op)
	}
	return best, nil
}

// numericBetter reports whether candidate beats current in direction dir
// (-1 for smaller, 1 for larger).
func numericBetter(candidate, current any, dir int) bool {
	c, ok := toNumber(candidate)
	if !ok {
		return false
	}
	cur, ok := toNumber(current)
	if !ok {
		return true
	}
	if dir < 0 {
		return c < cur
	}
	return c > cur
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle randomly permutes the occupied ordered values in place
// (Fisher–Yates) and returns a. Gap positions and associative entries are
// left where they are.
func (a *Array[T]) Shuffle() *Array[T] {
	pos := make([]int, 0, len(a.slots))
	for i, s := range a.slots {
		if s.set {
			pos = append(pos, i)
		}
	}
	for i := len(pos) - 1; i > 0; i-- {
		j := a.opts.intn(i + 1)
		a.slots[pos[i]], a.slots[pos[j]] = a.slots[pos[j]], a.slots[pos[i]]
	}
	return a
}

// Random returns one occupied value picked uniformly among ordered and
// associative slots. Returns the zero value and false if a is empty.
func (a *Array[T]) Random() (T, bool) {
	values := a.ToSlice()
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[a.opts.intn(len(values))], true
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins the occupied values, rendered with fmt (%v), using glue.
// Nested arrays render through their String method.
//
//	array.New(1, 2, 3).Implode("-") // → "1-2-3"
func (a *Array[T]) Implode(glue string) string {
	var b strings.Builder
	first := true
	a.Each(func(v T, _ Key) bool {
		if !first {
			b.WriteString(glue)
		}
		first = false
		fmt.Fprint(&b, v)
		return true
	})
	return b.String()
}

// String returns "[" + Implode(", ") + "]". It implements [fmt.Stringer].
//
//	array.New(1, 2, 3).String() // → "[1, 2, 3]"
func (a *Array[T]) String() string {
	return "[" + a.Implode(", ") + "]"
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equals reports whether a and other have the same Size and every entry of
// other has an occupied entry under the same key in a that is equal to it.
// Values implementing [Equaler], nested arrays included, decide for
// themselves; anything else compares with [Strict]. A nil other returns
// [ErrInvalidArgument]; a nil receiver equals nothing.
//
//	array.New(1, 2, 3).Equals(array.New(1, 2, 3)) // → true
func (a *Array[T]) Equals(other *Array[T]) (bool, error) {
	if other == nil {
		return false, fmt.Errorf("%w: Equals requires a container", ErrInvalidArgument)
	}
	if a == nil {
		return false, nil
	}
	if a.Size() != other.Size() {
		return false, nil
	}
	same := true
	other.Each(func(v T, k Key) bool {
		mine, ok := a.Get(k)
		same = ok && valuesEqual(mine, v)
		return same
	})
	return same, nil
}

// EqualTo implements [Equaler]: it reports whether other is an *Array[T]
// for which [Array.Equals] holds. Two nil arrays are equal.
func (a *Array[T]) EqualTo(other any) bool {
	o, ok := other.(*Array[T])
	if !ok {
		return false
	}
	if a == nil || o == nil {
		return a == nil && o == nil
	}
	same, _ := a.Equals(o)
	return same
}

package array

import (
	"reflect"
	"strconv"
	"strings"
)

// Equality decides whether two values are the same for searching,
// deduplication and intersection.
//
// Containers carry one strategy, set with [WithEquality]. [Loose] is the
// default.
type Equality func(a, b any) bool

// Equaler is implemented by values that define their own equality.
// [Array.Equals] defers to it for nested values; *Array[T] implements it.
type Equaler interface {
	EqualTo(other any) bool
}

// Strict reports whether a and b have the same dynamic type and compare
// equal with ==. Values of non-comparable types (slices, maps, funcs) are
// never strictly equal, even to themselves; pointers compare by identity.
func Strict(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Loose extends [Strict] with numeric coercion across types: integers,
// unsigned integers, floats, booleans (1 and 0) and strings holding a
// decimal number are equal when they denote the same number. Two strings
// are never coerced; they compare as text.
//
//	Loose(1, "1")     // true
//	Loose(1, 1.0)     // true
//	Loose(true, 1)    // true
//	Loose("1", "01")  // false
//	Loose("a", "a ")  // false
func Loose(a, b any) bool {
	if Strict(a, b) {
		return true
	}
	_, strA := a.(string)
	_, strB := b.(string)
	if strA && strB {
		return false
	}
	x, okA := toNumber(a)
	y, okB := toNumber(b)
	return okA && okB && x == y
}

// valuesEqual is the equality used by Equals: Equaler first, Strict otherwise.
func valuesEqual(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.EqualTo(b)
	}
	return Strict(a, b)
}

// toNumber coerces v to a float64 when it has a numeric reading.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

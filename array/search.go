package array

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// ─────────────────────────────────────────────────────────────────────────────
// Needles
// ─────────────────────────────────────────────────────────────────────────────

// Needle selects values (or keys) for [Array.Contains], [Array.ContainsKey],
// [Array.Filter] and [Array.FilterKeys].
//
// Match receives the equality strategy in effect for the search; needles
// that do not compare values may ignore it.
type Needle[V any] interface {
	Match(v V, eq Equality) bool
}

// Matcher tests the string form of a value. *regexp.Regexp satisfies it.
type Matcher interface {
	MatchString(s string) bool
}

// Value returns a Needle matching values equal to v under the search's
// equality strategy.
func Value[V any](v V) Needle[V] { return valueNeedle[V]{want: v} }

// Where returns a Needle matching values for which fn returns true.
// A nil fn yields a nil Needle.
func Where[V any](fn func(V) bool) Needle[V] {
	if fn == nil {
		return nil
	}
	return funcNeedle[V](fn)
}

// Matching returns a Needle matching values whose fmt rendering (%v)
// satisfies m. Keys are rendered with [Key.String]. A nil m yields a nil
// Needle.
//
//	array.New("a", 1, "a", 2).Filter(array.Matching[any](regexp.MustCompile(`[1-9]`))) // → [1, 2]
func Matching[V any](m Matcher) Needle[V] {
	if m == nil {
		return nil
	}
	return matcherNeedle[V]{m: m}
}

// Pattern compiles expr with ECMAScript regular-expression semantics and
// returns a Needle like [Matching]. Compilation failures wrap
// [ErrInvalidPattern].
func Pattern[V any](expr string) (Needle[V], error) {
	re, err := regexp2.Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return matcherNeedle[V]{m: ecmaMatcher{re: re}}, nil
}

// MustPattern is like [Pattern] but panics if expr cannot be compiled.
func MustPattern[V any](expr string) Needle[V] {
	n, err := Pattern[V](expr)
	if err != nil {
		panic(err)
	}
	return n
}

type valueNeedle[V any] struct{ want V }

func (n valueNeedle[V]) Match(v V, eq Equality) bool { return eq(n.want, v) }

type funcNeedle[V any] func(V) bool

func (n funcNeedle[V]) Match(v V, _ Equality) bool { return n(v) }

type matcherNeedle[V any] struct{ m Matcher }

func (n matcherNeedle[V]) Match(v V, _ Equality) bool {
	return n.m.MatchString(fmt.Sprint(v))
}

// ecmaMatcher adapts a regexp2 expression to [Matcher]. Evaluation errors
// (match timeouts) count as no match.
type ecmaMatcher struct{ re *regexp2.Regexp }

func (m ecmaMatcher) MatchString(s string) bool {
	ok, err := m.re.MatchString(s)
	return err == nil && ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Search options
// ─────────────────────────────────────────────────────────────────────────────

// SearchOption tunes a single search.
type SearchOption func(*searchOptions)

type searchOptions struct {
	strict bool
	quick  bool
}

// StrictMatch compares literal needles with [Strict] instead of the
// container's equality strategy.
func StrictMatch() SearchOption {
	return func(o *searchOptions) { o.strict = true }
}

// Quick stops the search at the first match. The count returned by
// Contains and ContainsKey is then at most 1.
func Quick() SearchOption {
	return func(o *searchOptions) { o.quick = true }
}

func (a *Array[T]) search(opts []SearchOption) (Equality, bool) {
	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.strict {
		return Strict, o.quick
	}
	return a.opts.equal, o.quick
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Contains returns the number of occupied slots whose value matches needle,
// 0 meaning not found. With [Quick] the search stops at the first match and
// the count only reflects the slots visited until then, so it is 0 or 1.
//
//	array.New(1, 1, 2, 1, 3).Contains(array.Value(1)) // → 3
func (a *Array[T]) Contains(needle Needle[T], opts ...SearchOption) int {
	if needle == nil {
		return 0
	}
	eq, quick := a.search(opts)
	return a.count(func(v T) bool { return needle.Match(v, eq) }, quick)
}

// ContainsKey returns the number of keys of occupied slots matching needle,
// 0 meaning not found. Literal keys always compare strictly: Index(2) never
// matches Name("2"). [Quick] behaves as in [Array.Contains].
//
//	array.New(1, 2, 3).ContainsKey(array.Value(array.Index(2))) // → 1
func (a *Array[T]) ContainsKey(needle Needle[Key], opts ...SearchOption) int {
	if needle == nil {
		return 0
	}
	_, quick := a.search(opts)
	return a.Keys(false).count(func(k Key) bool { return needle.Match(k, Strict) }, quick)
}

// count returns how many occupied values satisfy match, stopping at the
// first one when quick is set.
func (a *Array[T]) count(match func(T) bool, quick bool) int {
	found := 0
	a.Each(func(v T, _ Key) bool {
		if match(v) {
			found++
			return !quick
		}
		return true
	})
	return found
}

// IndexOf returns a new Array holding the keys of every occupied slot whose
// value equals value, and true; or nil and false when there is none.
//
//	keys, _ := array.New(1, 2, 1, 3, 1).IndexOf(1) // → [0, 2, 4]
func (a *Array[T]) IndexOf(value T, opts ...SearchOption) (*Array[Key], bool) {
	eq, _ := a.search(opts)
	keys := derive[Key](a)
	a.Each(func(v T, k Key) bool {
		if eq(value, v) {
			keys.Append(k)
		}
		return true
	})
	if keys.Len() == 0 {
		return nil, false
	}
	return keys, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter removes, via [Array.Out], every entry whose value does not match
// test, and returns a. A nil test returns [ErrInvalidArgument] and leaves
// a as is.
//
//	array.New(1, 2, 3, 4).Filter(array.Where(func(n int) bool { return n%2 == 0 })) // → [2, 4]
func (a *Array[T]) Filter(test Needle[T]) (*Array[T], error) {
	if test == nil {
		return a, fmt.Errorf("%w: Filter requires a needle", ErrInvalidArgument)
	}
	eq := a.opts.equal
	var drop []Key
	a.Each(func(v T, k Key) bool {
		if !test.Match(v, eq) {
			drop = append(drop, k)
		}
		return true
	})
	return a.outSome(drop), nil
}

// FilterKeys removes, via [Array.Out], every entry whose key does not match
// test, and returns a. A nil test returns [ErrInvalidArgument] and leaves
// a as is.
//
//	array.New(1, 2, 3, 4).FilterKeys(array.MustPattern[array.Key](`[1-2]`)) // → [2, 3]
func (a *Array[T]) FilterKeys(test Needle[Key]) (*Array[T], error) {
	if test == nil {
		return a, fmt.Errorf("%w: FilterKeys requires a needle", ErrInvalidArgument)
	}
	var drop []Key
	a.Each(func(_ T, k Key) bool {
		if !test.Match(k, Strict) {
			drop = append(drop, k)
		}
		return true
	})
	return a.outSome(drop), nil
}

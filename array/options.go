package array

import "math/rand"

// Option is a functional option for configuring an [Array]. Options are
// applied at construction time via [NewWithOptions]; containers derived
// from a receiver (Head, Tail, Keys, Values, …) inherit its configuration.
type Option func(*options)

// options holds the per-container configuration.
type options struct {
	// equal compares values in Contains, IndexOf, Intersect and Dedupe.
	equal Equality

	// rng drives Shuffle and Random. nil selects the process-wide source.
	rng *rand.Rand
}

func defaultOptions() options {
	return options{equal: Loose}
}

// WithEquality selects the value-comparison strategy. A nil eq keeps the
// default, [Loose].
//
//	a := array.NewWithOptions([]any{1, "1"}, array.WithEquality(array.Strict))
//	a.Contains(array.Value[any](1)) // → 1
func WithEquality(eq Equality) Option {
	return func(o *options) {
		if eq != nil {
			o.equal = eq
		}
	}
}

// WithRand makes Shuffle and Random draw from r instead of the process-wide
// source. Useful for reproducible tests.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

func (o options) intn(n int) int {
	if o.rng != nil {
		return o.rng.Intn(n)
	}
	return rand.Intn(n)
}

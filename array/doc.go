// Package array provides a generic hybrid sequence/mapping container and a
// chainable operation set built on top of it.
//
// # Overview
//
// The central type is [Array][T]. It holds two regions:
//
//   - an ordered region addressed by non-negative integer indices, where any
//     index below [Array.Len] is either occupied or a gap;
//   - an associative region addressed by arbitrary names, kept in insertion
//     order.
//
//	a := array.New(1, 2, 3).
//	    Set(array.Name("answer"), 42).
//	    Set(array.Index(6), 7)
//
//	a.Len()    // → 7 (indices 3, 4 and 5 are gaps)
//	a.Size()   // → 5
//	a.String() // → "[1, 2, 3, 7, 42]"
//
// # Iteration
//
// Every operation visits slots in the same order: occupied ordered slots by
// ascending index, then associative entries in insertion order. Gaps are
// never visited. [Array.Each] stops as soon as its callback returns false:
//
//	a.Each(func(v int, k array.Key) bool {
//	    fmt.Println(k, v)
//	    return v < 3
//	})
//
// # In-place editing
//
// Unlike the copy-on-write Collection this package grew out of, editors
// ([Array.Append], [Array.Prepend], [Array.TrimLeft], [Array.Out],
// [Array.Compact], [Array.Merge], [Array.Filter], …) mutate the receiver and
// return it. Queries that produce a new shape ([Array.Head], [Array.Tail],
// [Array.Keys], [Array.Values], [Array.IndexOf]) return a new container.
//
// # Equality
//
// Value comparison is an explicit strategy. [Loose] (the default) treats
// numbers, booleans and numeric strings as equal when they denote the same
// number; [Strict] requires the same dynamic type. Pick one per container
// with [WithEquality], or per search with the [StrictMatch] option:
//
//	a := array.NewWithOptions([]any{1, "1"}, array.WithEquality(array.Strict))
//
// # Needles
//
// Searches and filters accept a [Needle]: a literal ([Value]), a predicate
// ([Where]), any [Matcher] such as a *regexp.Regexp ([Matching]) or an
// ECMAScript pattern ([Pattern], [MustPattern]).
//
//	words := array.New("apple", "pear", "plum")
//	words.Contains(array.MustPattern[string](`^p`)) // → 2
//
// # Encoding
//
// Arrays implement [encoding/json.Marshaler] and yaml.Marshaler: dense arrays encode
// as lists, sparse or associative ones as ordered objects. [Array.Fingerprint]
// returns a BLAKE2b digest of the contents.
package array

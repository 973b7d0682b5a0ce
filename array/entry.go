package array

import "fmt"

// Entry is one occupied slot of an [Array]: its key and its value.
// It is the element type produced by [Array.Entries].
type Entry[T any] struct {
	Key   Key
	Value T
}

// String returns a human-readable representation: "key: value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Value)
}

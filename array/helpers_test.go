package array_test

import "github.com/hasbyte1/go-array-utils/array"

func ints(ns ...int) *array.Array[int] { return array.New(ns...) }

// sparse builds [1, , 2, , , 3]: Len 6, Size 3.
func sparse() *array.Array[int] {
	return array.Empty[int]().
		Set(array.Index(0), 1).
		Set(array.Index(2), 2).
		Set(array.Index(5), 3)
}

func keys(ks ...int) []array.Key {
	out := make([]array.Key, len(ks))
	for i, k := range ks {
		out[i] = array.Index(k)
	}
	return out
}

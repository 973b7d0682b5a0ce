package array

import (
	"fmt"
	"hash"
	"maps"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of a's occupied entries:
// ordered slots by index, then associative entries sorted by name. Arrays
// for which [Array.Equals] holds under strict value equality share a
// fingerprint, so it can key caches or pre-screen comparisons of large
// nested arrays. Gaps, and so Len(), are not hashed.
//
// Values are hashed through their dynamic type and %v rendering; nested
// arrays contribute their own fingerprint.
func (a *Array[T]) Fingerprint() [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only reachable with an oversized key; nil never is.
		panic(err)
	}
	a.writeFingerprint(h)
	var sum [blake2b.Size256]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// fingerprinter is implemented by every *Array[T] instantiation so that
// nested arrays of another element type still hash structurally.
type fingerprinter interface {
	writeFingerprint(h hash.Hash)
}

func (a *Array[T]) writeFingerprint(h hash.Hash) {
	if a == nil {
		h.Write([]byte("nil"))
		return
	}
	for i, s := range a.slots {
		if s.set {
			fmt.Fprintf(h, "i%d\x00", i)
			hashValue(h, s.value)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(a.assoc)) {
		fmt.Fprintf(h, "n%d:%s\x00", len(name), name)
		hashValue(h, a.assoc[name])
	}
}

func hashValue(h hash.Hash, v any) {
	if f, ok := v.(fingerprinter); ok {
		h.Write([]byte{'['})
		f.writeFingerprint(h)
		h.Write([]byte{']'})
		return
	}
	// -0 == 0 under Strict, so both hash as 0.
	switch f := v.(type) {
	case float64:
		if f == 0 {
			v = float64(0)
		}
	case float32:
		if f == 0 {
			v = float32(0)
		}
	}
	fmt.Fprintf(h, "%T\x00%v\x00", v, v)
}

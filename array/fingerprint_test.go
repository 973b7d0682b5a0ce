package array_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-array-utils/array"
)

func TestFingerprintMatchesEquals(t *testing.T) {
	a := array.New[any](1, "two", array.New[any](3)).Set(array.Name("x"), 4).Set(array.Name("y"), 5)
	b := array.New[any](1, "two", array.New[any](3)).Set(array.Name("y"), 5).Set(array.Name("x"), 4)

	same, err := a.Equals(b)
	assert.NoError(t, err)
	assert.True(t, same)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintDiffers(t *testing.T) {
	base := ints(1, 2, 3).Fingerprint()
	assert.NotEqual(t, base, ints(1, 2, 4).Fingerprint())
	assert.NotEqual(t, base, ints(3, 2, 1).Fingerprint())
	assert.NotEqual(t, base, ints(1, 2).Set(array.Name("2"), 3).Fingerprint())
	assert.NotEqual(t,
		array.New[any](1).Fingerprint(),
		array.New[any]("1").Fingerprint())
	assert.NotEqual(t,
		array.New[any](array.New[any](1, 2)).Fingerprint(),
		array.New[any](array.New[any](1), 2).Fingerprint())
}

func TestFingerprintIgnoresTrailingGaps(t *testing.T) {
	a := ints(1, 2)
	b := ints(1, 2).Set(array.Index(5), 0).Delete(array.Index(5))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprintSignedZero(t *testing.T) {
	pos := array.New(0.0)
	neg := array.New(math.Copysign(0, -1))

	same, err := pos.Equals(neg)
	assert.NoError(t, err)
	assert.True(t, same)
	assert.Equal(t, pos.Fingerprint(), neg.Fingerprint())

	assert.Equal(t,
		array.New[any](float32(0)).Fingerprint(),
		array.New[any](float32(math.Copysign(0, -1))).Fingerprint())
}

package array_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-utils/array"
)

// ─── Append / Prepend ────────────────────────────────────────────────────────

func TestAppend(t *testing.T) {
	a := ints(1, 2)
	assert.Same(t, a, a.Append(3, 4))
	assert.Equal(t, "[1, 2, 3, 4]", a.String())
}

func TestAppendAfterTrailingGap(t *testing.T) {
	a := ints(1).Set(array.Index(3), 4).Delete(array.Index(3))
	a.Append(5)
	assert.Equal(t, 5, a.Len())
	v, _ := a.Get(array.Index(4))
	assert.Equal(t, 5, v)
}

func TestAppendThenTail(t *testing.T) {
	for _, a := range []*array.Array[int]{ints(), ints(1, 2), sparse()} {
		tail, err := a.Append(42).Tail(1)
		require.NoError(t, err)
		assert.Equal(t, []int{42}, tail.ToSlice())
	}
}

func TestPrepend(t *testing.T) {
	a := ints(1, 2)
	assert.Same(t, a, a.Prepend(3, 4))
	assert.Equal(t, "[4, 3, 1, 2]", a.String())
}

func TestPrependShiftsGaps(t *testing.T) {
	a := array.Empty[int]().Set(array.Index(1), 9)
	a.Prepend(7, 8)

	assert.Equal(t, 4, a.Len())
	assert.False(t, a.Has(array.Index(2)))
	v, _ := a.Get(array.Index(3))
	assert.Equal(t, 9, v)
	assert.Equal(t, []int{8, 7, 9}, a.ToSlice())
}

func TestPrependLeavesNamesAlone(t *testing.T) {
	a := ints(1).Set(array.Name("x"), 2).Prepend(0)
	v, _ := a.Get(array.Name("x"))
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{0, 1, 2}, a.ToSlice())
}

// ─── TrimRight / TrimLeft ────────────────────────────────────────────────────

func TestTrimRight(t *testing.T) {
	a, err := ints(1, 2, 3, 4).TrimRight(2)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]", a.String())

	a, err = ints(1, 2).TrimRight(10)
	require.NoError(t, err)
	assert.Zero(t, a.Len())

	a, err = ints(1, 2).TrimRight(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, a.ToSlice())
}

func TestTrimRightCountsGaps(t *testing.T) {
	a, err := sparse().TrimRight(1)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, []int{1, 2}, a.ToSlice())
}

func TestTrimLeft(t *testing.T) {
	a, err := ints(1, 2, 3, 4).TrimLeft(2)
	require.NoError(t, err)
	assert.Equal(t, "[3, 4]", a.String())

	a, err = ints(1, 2).TrimLeft(5)
	require.NoError(t, err)
	assert.Zero(t, a.Len())
}

func TestTrimLeftKeepsGaps(t *testing.T) {
	a := ints(1).Set(array.Index(2), 3).Set(array.Index(3), 4) // [1, , 3, 4]
	_, err := a.TrimLeft(1)
	require.NoError(t, err)

	assert.Equal(t, 3, a.Len())
	assert.False(t, a.Has(array.Index(0)))
	assert.Equal(t, []int{3, 4}, a.ToSlice())
}

func TestTrimRejectsNegativeCount(t *testing.T) {
	a := ints(1, 2, 3)

	_, err := a.TrimRight(-1)
	assert.True(t, errors.Is(err, array.ErrInvalidArgument))
	_, err = a.TrimLeft(-2)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)

	assert.Equal(t, []int{1, 2, 3}, a.ToSlice(), "failed validation must not mutate")
}

// ─── Head / Tail ─────────────────────────────────────────────────────────────

func TestHead(t *testing.T) {
	a := ints(1, 2, 3, 4)
	h, err := a.Head(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, h.ToSlice())
	assert.Equal(t, 4, a.Len(), "receiver untouched")

	h, err = a.Head(10)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, h.ToSlice())

	h, err = a.Head(0)
	require.NoError(t, err)
	assert.True(t, h.IsEmpty())
}

func TestHeadSkipsGaps(t *testing.T) {
	h, err := sparse().Head(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, h.ToSlice())
}

func TestTail(t *testing.T) {
	tl, err := ints(1, 2, 3, 4).Tail(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, tl.ToSlice())

	tl, err = sparse().Tail(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, tl.ToSlice())

	tl, err = sparse().Tail(4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, tl.ToSlice())

	tl, err = sparse().Tail(100)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, tl.ToSlice())
}

func TestHeadTailIgnoreNames(t *testing.T) {
	a := ints(1).Set(array.Name("x"), 2)
	h, _ := a.Head(5)
	tl, _ := a.Tail(5)
	assert.Equal(t, []int{1}, h.ToSlice())
	assert.Equal(t, []int{1}, tl.ToSlice())
}

func TestHeadTailRejectNegativeCount(t *testing.T) {
	_, err := ints(1).Head(-1)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
	_, err = ints(1).Tail(-1)
	assert.ErrorIs(t, err, array.ErrInvalidArgument)
}

// ─── Out ─────────────────────────────────────────────────────────────────────

func TestOut(t *testing.T) {
	a := ints(1, 2, 3, 4)
	assert.Same(t, a, a.Out(array.Index(0), array.Index(3), array.Index(1)))
	assert.Equal(t, "[3]", a.String())
	assert.Equal(t, 1, a.Len())
}

func TestOutNumericOrder(t *testing.T) {
	a := ints(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	a.Out(array.Index(2), array.Index(10))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6, 7, 8, 9, 11}, a.ToSlice())
}

func TestOutWithoutKeysDropsLast(t *testing.T) {
	a := ints(1, 2, 3).Out()
	assert.Equal(t, []int{1, 2}, a.ToSlice())

	e := array.Empty[int]().Out()
	assert.Zero(t, e.Len())
}

func TestOutDuplicatesAndOutOfRange(t *testing.T) {
	a := ints(1, 2, 3).Out(array.Index(1), array.Index(1), array.Index(10), array.Index(-1))
	assert.Equal(t, []int{1, 3}, a.ToSlice())
}

func TestOutNames(t *testing.T) {
	a := ints(1, 2).Set(array.Name("x"), 3).Set(array.Name("y"), 4)
	a.Out(array.Name("x"), array.Index(0))

	assert.Equal(t, []int{2, 4}, a.ToSlice())
	assert.Equal(t, 1, a.Len())
	assert.False(t, a.Has(array.Name("x")))
}

func TestOutSplicesGaps(t *testing.T) {
	a := sparse().Out(array.Index(1))
	assert.Equal(t, 5, a.Len())
	v, _ := a.Get(array.Index(1))
	assert.Equal(t, 2, v)
}

func TestOutAll(t *testing.T) {
	a := ints(1, 2, 1, 3, 1)
	idx, ok := a.IndexOf(1)
	require.True(t, ok)

	a.OutAll(idx)
	assert.Equal(t, []int{2, 3}, a.ToSlice())
	assert.Zero(t, a.Contains(array.Value(1)))
}

func TestOutAllFlattensSets(t *testing.T) {
	a := ints(1, 2, 3, 4)
	a.OutAll(array.From(keys(0, 3)), nil, array.New(array.Index(1)))
	assert.Equal(t, []int{3}, a.ToSlice())

	a.OutAll(array.Empty[array.Key]())
	assert.Equal(t, []int{3}, a.ToSlice(), "empty sets remove nothing")
}

// ─── Compact ─────────────────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	a := sparse()
	before := a.Size()
	a.Compact()

	assert.Equal(t, "[1, 2, 3]", a.String())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, before, a.Size())
	for i := 0; i < a.Len(); i++ {
		assert.True(t, a.Has(array.Index(i)))
	}
}

func TestCompactKeepsNames(t *testing.T) {
	a := sparse().Set(array.Name("x"), 9).Compact()
	v, ok := a.Get(array.Name("x"))
	require.True(t, ok)
	assert.Equal(t, 9, v)
	assert.Equal(t, 4, a.Size())
}

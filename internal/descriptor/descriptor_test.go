package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesRank(t *testing.T) {
	_, err := New(TypeCode{Category: Integer, Kind: 4}, 4, MaxRank+1, make([]int64, MaxRank+1), AttrOther)
	require.Error(t, err)

	_, err = New(TypeCode{Category: Integer, Kind: 4}, 4, -1, nil, AttrOther)
	require.Error(t, err)

	_, err = New(TypeCode{Category: Integer, Kind: 4}, 4, 2, []int64{3}, AttrOther)
	require.Error(t, err, "fewer extents than rank")

	_, err = New(TypeCode{Category: Integer, Kind: 4}, 4, 1, []int64{-2}, AttrOther)
	require.Error(t, err, "negative extent")
}

func TestElementsEmptyProduct(t *testing.T) {
	scalar, err := NewAllocated(TypeCode{Category: Real, Kind: 8}, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, int64(1), scalar.Elements())

	empty, err := NewAllocated(TypeCode{Category: Real, Kind: 8}, 8, []int64{3, 0, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.Elements())
	assert.True(t, empty.IsAllocated())
}

func TestAllocateColumnMajorStrides(t *testing.T) {
	d, err := New(TypeCode{Category: Integer, Kind: 4}, 4, 3, []int64{2, 3, 4}, AttrAllocatable)
	require.NoError(t, err)
	require.False(t, d.IsAllocated())

	status := d.Allocate([]int64{1, 1, 1}, []int64{2, 3, 4}, 4)
	require.Equal(t, StatusOK, status)
	require.True(t, d.IsAllocated())

	// Dimension 0 is fastest-varying: strides 4, 8, 24 bytes.
	assert.Equal(t, int64(4), d.Dim(0).ByteStride)
	assert.Equal(t, int64(8), d.Dim(1).ByteStride)
	assert.Equal(t, int64(24), d.Dim(2).ByteStride)
	assert.Equal(t, int64(24*4), d.ByteSize())
}

func TestAllocateStatusCodes(t *testing.T) {
	d, err := New(TypeCode{Category: Integer, Kind: 4}, 4, 1, []int64{5}, AttrAllocatable)
	require.NoError(t, err)

	assert.Equal(t, StatusInvalidElementBytes, d.Allocate([]int64{1}, []int64{5}, 0))
	assert.Equal(t, StatusInvalidExtent, d.Allocate([]int64{1}, []int64{-5}, 4))
	assert.Equal(t, StatusInvalidRank, d.Allocate(nil, nil, 4))

	require.Equal(t, StatusOK, d.Allocate([]int64{1}, []int64{5}, 4))
	assert.Equal(t, StatusAlreadyAllocated, d.Allocate([]int64{1}, []int64{5}, 4))
}

func TestElementAddressingWithLowerBounds(t *testing.T) {
	d, err := New(TypeCode{Category: Integer, Kind: 8}, 8, 2, []int64{2, 3}, AttrAllocatable)
	require.NoError(t, err)
	require.Equal(t, StatusOK, d.Allocate([]int64{0, -1}, []int64{2, 3}, 8))

	data := d.AsInt64()
	for i := range data {
		data[i] = int64(i)
	}

	// Element (0,-1) is the first, (1,-1) the second, (0,0) the third.
	assert.Equal(t, int64(0), d.AsInt64()[0])
	first := d.Element([]int64{0, -1})
	second := d.Element([]int64{1, -1})
	third := d.Element([]int64{0, 0})
	assert.Equal(t, int64(0), DecodeInt64(first, 8))
	assert.Equal(t, int64(1), DecodeInt64(second, 8))
	assert.Equal(t, int64(2), DecodeInt64(third, 8))
}

func TestIncrementSubscriptsNaturalOrder(t *testing.T) {
	d, err := NewAllocated(TypeCode{Category: Integer, Kind: 4}, 4, []int64{2, 2})
	require.NoError(t, err)

	sub := make([]int64, 2)
	d.GetLowerBounds(sub)
	assert.Equal(t, []int64{1, 1}, sub)

	var visited [][]int64
	for i := 0; i < 4; i++ {
		visited = append(visited, append([]int64(nil), sub...))
		d.IncrementSubscripts(sub, nil)
	}
	assert.Equal(t, [][]int64{{1, 1}, {2, 1}, {1, 2}, {2, 2}}, visited)

	// A cursor that passes the last element wraps to the first.
	assert.Equal(t, []int64{1, 1}, sub)
}

func TestIncrementSubscriptsDimOrder(t *testing.T) {
	d, err := NewAllocated(TypeCode{Category: Integer, Kind: 4}, 4, []int64{2, 3})
	require.NoError(t, err)

	// Advance dimension 1 first: it varies fastest.
	dimOrder := []int{1, 0}
	sub := make([]int64, 2)
	d.GetLowerBounds(sub)

	var visited [][]int64
	for i := 0; i < 6; i++ {
		visited = append(visited, append([]int64(nil), sub...))
		d.IncrementSubscripts(sub, dimOrder)
	}
	assert.Equal(t, [][]int64{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}}, visited)
}

func TestRankZeroIncrementIsNoOp(t *testing.T) {
	d, err := NewAllocated(TypeCode{Category: Integer, Kind: 4}, 4, nil)
	require.NoError(t, err)

	sub := []int64{}
	d.IncrementSubscripts(sub, nil)
	assert.Len(t, d.Element(sub), 4)
}

func TestTypedViewsMismatchPanics(t *testing.T) {
	d, err := NewAllocated(TypeCode{Category: Integer, Kind: 4}, 4, []int64{2})
	require.NoError(t, err)

	assert.NotPanics(t, func() { d.AsInt32() })
	assert.Panics(t, func() { d.AsFloat32() })
	assert.Panics(t, func() { d.AsInt64() })
}

func TestNewIntegerVectorKinds(t *testing.T) {
	values := []int64{3, -1, 127}
	for _, kind := range []int{1, 2, 4, 8} {
		d, err := NewIntegerVector(kind, values)
		require.NoError(t, err, "kind %d", kind)
		assert.Equal(t, 1, d.Rank())
		assert.Equal(t, int64(len(values)), d.Dim(0).Extent)
		assert.Equal(t, int64(kind), d.ElementBytes())

		sub := []int64{d.Dim(0).LowerBound}
		for i, want := range values {
			got := DecodeInt64(d.Element(sub), d.ElementBytes())
			assert.Equal(t, want, got, "kind %d element %d", kind, i)
			d.IncrementSubscripts(sub, nil)
		}
	}
}

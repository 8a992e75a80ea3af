package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandyRDavila/GraphCalc/bitset"
)

func TestSetClearTest(t *testing.T) {
	s := bitset.New(10)
	require.False(t, s.Test(3))
	s.Set(3)
	assert.True(t, s.Test(3))
	s.Clear(3)
	assert.False(t, s.Test(3))
}

func TestUnionIntersectSubtract(t *testing.T) {
	a := bitset.FromSlice(8, []int{0, 1, 2})
	b := bitset.FromSlice(8, []int{1, 2, 3})

	u := a.Clone()
	u.Union(b)
	assert.Equal(t, []int{0, 1, 2, 3}, u.Slice())

	i := a.Clone()
	i.Intersect(b)
	assert.Equal(t, []int{1, 2}, i.Slice())

	d := a.Clone()
	d.Subtract(b)
	assert.Equal(t, []int{0}, d.Slice())
}

func TestCountAndEmpty(t *testing.T) {
	s := bitset.New(5)
	assert.True(t, s.IsEmpty())
	s.Set(0)
	s.Set(4)
	assert.Equal(t, 2, s.Count())
	assert.False(t, s.IsEmpty())
}

func TestGosperEnumeration(t *testing.T) {
	// All 3-combinations of a 5-element universe: C(5,3) = 10.
	n := 5
	k := 3
	mask := bitset.FirstSubset(k)
	count := 0
	seen := map[uint64]bool{}
	for {
		seen[mask] = true
		count++
		next, ok := bitset.NextSubset(mask, n)
		if !ok {
			break
		}
		mask = next
	}
	assert.Equal(t, 10, count)
	assert.Len(t, seen, 10)
}

func TestFromMaskRoundTrip(t *testing.T) {
	s := bitset.FromMask(6, 0b010110)
	assert.Equal(t, []int{1, 2, 4}, s.Slice())
}

func TestWidthMismatchPanics(t *testing.T) {
	a := bitset.New(4)
	b := bitset.New(5)
	assert.Panics(t, func() { a.Union(b) })
}

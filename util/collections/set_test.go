package collections

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(2))

	set.Add(2)
	assert.Equal(t, 3, set.Len())

	set.Remove(2)
	set.Remove(42)
	assert.False(t, set.Contains(2))

	values := set.Slice()
	sort.Ints(values)
	assert.Equal(t, []int{1, 3}, values)
}

func TestSetOperations(t *testing.T) {
	small := NewSet("a", "b")
	large := NewSet("a", "b", "c")

	assert.True(t, large.Difference(small).Equal(NewSet("c")))
	assert.Zero(t, small.Difference(large).Len())

	intersection, isSubset := small.IntersectionEx(large)
	assert.True(t, isSubset)
	assert.True(t, intersection.Equal(small))

	_, isSubset = large.IntersectionEx(small)
	assert.False(t, isSubset)

	assert.True(t, NewSet("b", "z").Intersection(large).Equal(NewSet("b")))
	assert.False(t, small.Equal(large))
	assert.False(t, NewSet("a", "z").Equal(small))
	assert.True(t, NewSet[string]().Equal(Set[string]{}))
}

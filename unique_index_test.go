package multiindex

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newUnique(t *testing.T) (*Container[*employee], *UniqueIndex[int, *employee]) {
	c := New[*employee]()
	byId, err := CreateUniqueIndex(c, employeeID)
	assert.NoError(t, err)
	assert.NotNil(t, byId)
	return c, byId
}

func TestUniqueIndex_Empty(t *testing.T) {
	_, byId := newUnique(t)
	assert.True(t, byId.IsEmpty())
	assert.Equal(t, 0, byId.Size())

	byId.Clear()
	assert.True(t, byId.IsEmpty())

	byId.Add(data1)
	byId.Clear()
	assert.True(t, byId.IsEmpty())
	assert.Equal(t, 0, byId.Size())
}

func TestUniqueIndex_Add(t *testing.T) {
	_, byId := newUnique(t)
	assert.True(t, byId.Add(data1))
	assert.Equal(t, 1, byId.Size())
	assert.True(t, byId.Add(data2))
	assert.True(t, byId.Add(data3))
	assert.Equal(t, 3, byId.Size())

	// first writer wins
	impostor := &employee{id: 2, name: "Not Ivan"}
	assert.False(t, byId.Add(impostor))
	got, ok := byId.Get(2)
	assert.True(t, ok)
	assert.Same(t, data2, got)

	assert.False(t, byId.Add(nil))
	assert.Equal(t, 3, byId.Size())
}

func TestUniqueIndex_AddAll(t *testing.T) {
	_, byId := newUnique(t)
	assert.True(t, byId.AddAll(data1, data2))
	assert.Equal(t, 2, byId.Size())

	assert.False(t, byId.AddAll(data1, data2))
	assert.Equal(t, 2, byId.Size())

	assert.True(t, byId.AddAll(data1, data2, data3))
	assert.Equal(t, 3, byId.Size())
}

func TestUniqueIndex_ContainsKey(t *testing.T) {
	_, byId := newUnique(t)
	byId.AddAll(data1, data2, data3)

	assert.True(t, byId.ContainsKey(1))
	assert.True(t, byId.ContainsKey(2))
	assert.True(t, byId.ContainsKey(3))
	assert.False(t, byId.ContainsKey(4))
	assert.False(t, byId.ContainsKey(0))
	assert.False(t, byId.ContainsKey("1"))
	assert.False(t, byId.ContainsKey(nil))
	assert.False(t, byId.ContainsKey(int64(1)))
}

func TestUniqueIndex_ContainsValue(t *testing.T) {
	_, byId := newUnique(t)
	byId.AddAll(data1, data2)

	assert.True(t, byId.ContainsValue(data1))
	assert.True(t, byId.ContainsValue(data2))
	assert.False(t, byId.ContainsValue(data3))
	assert.False(t, byId.ContainsValue(nil))
	assert.False(t, byId.ContainsValue(*data1))
}

func TestUniqueIndex_Remove(t *testing.T) {
	_, byId := newUnique(t)
	byId.AddAll(data1, data2, data3)

	removed, ok := byId.Remove(2)
	assert.True(t, ok)
	assert.Same(t, data2, removed)
	assert.True(t, byId.ContainsKey(1))
	assert.False(t, byId.ContainsKey(2))
	assert.True(t, byId.ContainsKey(3))

	removed, ok = byId.Remove(2)
	assert.False(t, ok)
	assert.Nil(t, removed)

	removed, ok = byId.Remove("3")
	assert.False(t, ok)
	assert.Nil(t, removed)
	assert.Equal(t, 2, byId.Size())
}

func TestUniqueIndex_Get(t *testing.T) {
	_, byId := newUnique(t)
	byId.AddAll(data1, data2)

	for _, key := range []int{1, 2} {
		_, ok := byId.Get(key)
		assert.True(t, ok)
	}
	for _, key := range []int{0, 3, 4} {
		v, ok := byId.Get(key)
		assert.False(t, ok)
		assert.Nil(t, v)
	}
}

func TestUniqueIndex_Keys(t *testing.T) {
	_, byId := newUnique(t)
	byId.AddAll(data3, data1, data2)

	assert.Equal(t, []int{1, 2, 3}, slices.Sorted(byId.Keys()))
}

func TestUniqueIndex_Equal(t *testing.T) {
	c, byId := newUnique(t)
	assert.True(t, byId.Equal(byId))
	assert.False(t, byId.Equal(42))

	sameExtractor, err := CreateUniqueIndex(c, employeeID)
	assert.NoError(t, err)
	assert.True(t, byId.Equal(sameExtractor))
	assert.Equal(t, byId.Hash(), sameExtractor.Hash())

	// structurally equal, but a different closure
	offset := 0
	lookalike, err := CreateUniqueIndex(c, func(e *employee) int { return e.id + offset })
	assert.NoError(t, err)
	assert.False(t, byId.Equal(lookalike))

	other, err := CreateUniqueIndex(c, employeeName)
	assert.NoError(t, err)
	assert.False(t, byId.Equal(other))

	byId.AddAll(data1, data2)
	assert.True(t, byId.Equal(sameExtractor))
	assert.Equal(t, byId.Hash(), sameExtractor.Hash())

	_, foreign := newUnique(t)
	foreign.AddAll(data1, data2)
	assert.False(t, byId.Equal(foreign))
}

func TestUniqueIndex_String(t *testing.T) {
	_, byId := newUnique(t)
	assert.Regexp(t, "^UniqueIndex", byId.String())
}

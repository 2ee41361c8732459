package forwardlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIteratorTraversal(t *testing.T) {
	l := Of("a", "b", "c")

	var got []string
	for it := l.Begin(); it != l.End(); it = it.Next() {
		got = append(got, it.Value())
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)

	t.Run("read-only kind", func(t *testing.T) {
		var got []string
		for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
			got = append(got, it.Value())
		}

		assert.Equal(t, []string{"a", "b", "c"}, got)
	})
}

func TestIteratorEquality(t *testing.T) {
	l := Of(1, 2)

	t.Run("same node compares equal", func(t *testing.T) {
		assert.True(t, l.Begin() == l.Begin())
	})

	t.Run("distinct nodes compare unequal", func(t *testing.T) {
		assert.True(t, l.Begin() != l.Begin().Next())
	})

	t.Run("between kinds", func(t *testing.T) {
		assert.True(t, l.Begin().Const() == l.CBegin())
		assert.True(t, l.CBegin() == l.Begin().Const())
		assert.True(t, l.BeforeBegin().Const() == l.CBeforeBegin())
		assert.True(t, l.End().Const() == l.CEnd())
	})

	t.Run("empty list begin equals end", func(t *testing.T) {
		e := New[int]()
		assert.True(t, e.Begin() == e.End())
		assert.True(t, e.CBegin() == e.CEnd())
	})

	t.Run("before-begin advances to begin", func(t *testing.T) {
		assert.True(t, l.BeforeBegin().Next() == l.Begin())
	})

	t.Run("before-begin differs from begin", func(t *testing.T) {
		assert.True(t, l.BeforeBegin() != l.Begin())
	})
}

func TestIteratorMutation(t *testing.T) {
	l := Of(1, 2, 3)

	l.Begin().Next().Set(20)
	assert.Equal(t, []int{1, 20, 3}, l.ToSlice())

	*l.Begin().Ptr() = 10
	assert.Equal(t, []int{10, 20, 3}, l.ToSlice())
}

func TestIteratorPanics(t *testing.T) {
	l := Of(1)

	assert.Panics(t, func() { l.End().Value() })
	assert.Panics(t, func() { l.End().Next() })
	assert.Panics(t, func() { l.End().Set(5) })
	assert.Panics(t, func() { _ = l.End().Ptr() })
	assert.Panics(t, func() { l.BeforeBegin().Value() })
	assert.Panics(t, func() { l.BeforeBegin().Set(5) })
	assert.Panics(t, func() { _ = l.BeforeBegin().Ptr() })
	assert.Panics(t, func() { l.CBeforeBegin().Value() })
	assert.Panics(t, func() { l.CEnd().Next() })
}

func TestEraseDetachesRemovedNode(t *testing.T) {
	l := Of(1, 2, 3)
	victim := l.Begin().Next()

	l.EraseAfter(l.Begin())

	assert.Equal(t, 2, victim.Value())
	assert.Equal(t, l.End(), victim.Next())
}

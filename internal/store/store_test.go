package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PushFront(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	assert.Equal(t, 1, s.PushFront(ctx, "jobs", "b"))
	assert.Equal(t, 2, s.PushFront(ctx, "jobs", "a"))

	values, rev, err := s.Snapshot(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, values)
	assert.Equal(t, uint64(2), rev)
}

func TestStore_PopFront(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "jobs", []string{"a", "b"})

	v, err := s.PopFront(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	t.Run("empty list", func(t *testing.T) {
		s.Replace(ctx, "jobs", nil)

		_, err := s.PopFront(ctx, "jobs")
		assert.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := s.PopFront(ctx, "nope")
		assert.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestStore_InsertAfter(t *testing.T) {
	ctx := context.Background()

	t.Run("front anchor creates the list", func(t *testing.T) {
		s := NewStore()

		length, err := s.InsertAfter(ctx, "jobs", FrontAnchor, "a")
		require.NoError(t, err)
		assert.Equal(t, 1, length)
	})

	t.Run("after an element", func(t *testing.T) {
		s := NewStore()
		s.Replace(ctx, "jobs", []string{"a", "c"})

		length, err := s.InsertAfter(ctx, "jobs", 0, "b")
		require.NoError(t, err)
		assert.Equal(t, 3, length)

		values, _, err := s.Snapshot(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, values)
	})

	t.Run("after the last element", func(t *testing.T) {
		s := NewStore()
		s.Replace(ctx, "jobs", []string{"a"})

		_, err := s.InsertAfter(ctx, "jobs", 0, "b")
		require.NoError(t, err)

		values, _, err := s.Snapshot(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("out of range", func(t *testing.T) {
		s := NewStore()
		s.Replace(ctx, "jobs", []string{"a"})

		_, err := s.InsertAfter(ctx, "jobs", 1, "b")
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		_, err = s.InsertAfter(ctx, "jobs", -2, "b")
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("missing list with element anchor", func(t *testing.T) {
		s := NewStore()

		_, err := s.InsertAfter(ctx, "nope", 0, "b")
		assert.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestStore_EraseAfter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "jobs", []string{"a", "b", "c"})

	t.Run("front anchor removes the first element", func(t *testing.T) {
		v, err := s.EraseAfter(ctx, "jobs", FrontAnchor)
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("after an element", func(t *testing.T) {
		v, err := s.EraseAfter(ctx, "jobs", 0)
		require.NoError(t, err)
		assert.Equal(t, "c", v)
	})

	t.Run("no element after the anchor", func(t *testing.T) {
		_, err := s.EraseAfter(ctx, "jobs", 0)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("empty list", func(t *testing.T) {
		s.Replace(ctx, "empty", nil)

		_, err := s.EraseAfter(ctx, "empty", FrontAnchor)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestStore_ReplaceBumpsRevision(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	assert.Equal(t, uint64(1), s.Replace(ctx, "jobs", []string{"a"}))
	assert.Equal(t, uint64(2), s.Replace(ctx, "jobs", []string{"b"}))

	values, rev, err := s.Snapshot(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, values)
	assert.Equal(t, uint64(2), rev)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "jobs", []string{"a"})

	require.NoError(t, s.Delete(ctx, "jobs"))
	assert.Zero(t, s.ListCount())

	assert.ErrorIs(t, s.Delete(ctx, "jobs"), ErrListNotFound)
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "jobs", []string{"a", "b"})

	require.NoError(t, s.Clear(ctx, "jobs"))

	values, rev, err := s.Snapshot(ctx, "jobs")
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.Equal(t, uint64(2), rev)

	assert.ErrorIs(t, s.Clear(ctx, "nope"), ErrListNotFound)
}

func TestStore_Keys(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.PushFront(ctx, "b", "1")
	s.PushFront(ctx, "a", "1")

	assert.Equal(t, []string{"a", "b"}, s.Keys(ctx))
	assert.Equal(t, 2, s.ListCount())
}

func TestStore_Swap(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "a", []string{"1", "2"})
	s.Replace(ctx, "b", []string{"9"})

	require.NoError(t, s.Swap(ctx, "a", "b"))

	va, _, err := s.Snapshot(ctx, "a")
	require.NoError(t, err)
	vb, _, err := s.Snapshot(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, va)
	assert.Equal(t, []string{"1", "2"}, vb)

	assert.ErrorIs(t, s.Swap(ctx, "a", "a"), ErrSameList)
	assert.ErrorIs(t, s.Swap(ctx, "a", "nope"), ErrListNotFound)
}

func TestStore_Copy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "src", []string{"1", "2"})

	require.NoError(t, s.Copy(ctx, "dst", "src"))

	values, _, err := s.Snapshot(ctx, "dst")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, values)

	t.Run("copies are independent", func(t *testing.T) {
		s.PushFront(ctx, "dst", "0")

		values, _, err := s.Snapshot(ctx, "src")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, values)
	})

	assert.ErrorIs(t, s.Copy(ctx, "src", "src"), ErrSameList)
	assert.ErrorIs(t, s.Copy(ctx, "dst", "nope"), ErrListNotFound)
}

func TestStore_EqualAndCompare(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "a", []string{"1", "2"})
	s.Replace(ctx, "b", []string{"1", "2", "3"})
	s.Replace(ctx, "c", []string{"1", "2"})

	eq, err := s.Equal(ctx, "a", "c")
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = s.Equal(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, eq)

	res, err := s.Compare(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, -1, res)

	res, err = s.Compare(ctx, "b", "a")
	require.NoError(t, err)
	assert.Equal(t, 1, res)

	_, err = s.Equal(ctx, "a", "nope")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestStore_ExportRestore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	s.Replace(ctx, "a", []string{"1"})
	s.Replace(ctx, "b", []string{"2", "3"})

	data := s.Export(ctx)
	assert.Equal(t, map[string][]string{"a": {"1"}, "b": {"2", "3"}}, data)

	restored := NewStore()
	restored.Restore(ctx, data)

	values, rev, err := restored.Snapshot(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, values)
	assert.Positive(t, rev)
	assert.Equal(t, []string{"a", "b"}, restored.Keys(ctx))
}

func TestStore_RevisionsNeverReused(t *testing.T) {
	ctx := context.Background()

	t.Run("across delete and recreate", func(t *testing.T) {
		s := NewStore()

		first := s.Replace(ctx, "jobs", []string{"old"})
		require.NoError(t, s.Delete(ctx, "jobs"))

		second := s.Replace(ctx, "jobs", []string{"new"})
		assert.Greater(t, second, first)

		values, rev, err := s.Snapshot(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, values)
		assert.Equal(t, second, rev)
	})

	t.Run("across restore", func(t *testing.T) {
		s := NewStore()

		before := s.Replace(ctx, "jobs", []string{"old"})
		s.Restore(ctx, map[string][]string{"jobs": {"new"}})

		values, rev, err := s.Snapshot(ctx, "jobs")
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, values)
		assert.Greater(t, rev, before)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	ctx := context.Background()
	s := NewMetricsMiddleware(NewStore())

	assert.Equal(t, 1, s.PushFront(ctx, "jobs", "a"))

	values, rev, err := s.Snapshot(ctx, "jobs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, values)
	assert.Equal(t, uint64(1), rev)

	_, err = s.PopFront(ctx, "nope")
	assert.ErrorIs(t, err, ErrListNotFound)

	assert.Equal(t, 1, s.ListCount())
}

// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dlist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ava-labs/dlist/dlist/dlistmock"
)

func requireIndex[T any](t *testing.T, c *Cursor[T], expected int) {
	t.Helper()
	i, ok := c.Index()
	require.True(t, ok)
	require.Equal(t, expected, i)
}

func requireGhost[T any](t *testing.T, c *Cursor[T]) {
	t.Helper()
	_, ok := c.Index()
	require.False(t, ok)
	_, ok = c.Current()
	require.False(t, ok)
	require.Nil(t, c.CurrentMut())
}

func TestCursorMove(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})

	c, err := l.Cursor()
	require.NoError(err)
	defer c.Close()

	requireGhost(t, c)

	for i := 0; i < 6; i++ {
		c.MoveNext()
		requireIndex(t, c, i)
		v, ok := c.Current()
		require.True(ok)
		require.Equal(i+1, v)
	}
	c.MoveNext()
	requireGhost(t, c)

	c.MoveNext()
	requireIndex(t, c, 0)
	c.MovePrev()
	requireGhost(t, c)

	for i := 5; i >= 0; i-- {
		c.MovePrev()
		requireIndex(t, c, i)
		v, ok := c.Current()
		require.True(ok)
		require.Equal(i+1, v)
	}
	c.MovePrev()
	requireGhost(t, c)
}

func TestCursorOnEmptyList(t *testing.T) {
	require := require.New(t)
	l := New[int]()

	c, err := l.Cursor()
	require.NoError(err)
	defer c.Close()

	c.MoveNext()
	requireGhost(t, c)
	c.MovePrev()
	requireGhost(t, c)

	_, ok := c.PeekNext()
	require.False(ok)
	_, ok = c.PeekPrev()
	require.False(ok)
	_, ok = c.RemoveCurrent()
	require.False(ok)

	require.Zero(c.SplitBefore().Len())
	require.Zero(c.SplitAfter().Len())
	require.NoError(l.Validate())
}

func TestCursorPeekAndWrite(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{1, 2, 3})

	c, err := l.Cursor()
	require.NoError(err)

	// the ghost sits between tail and head
	v, ok := c.PeekNext()
	require.True(ok)
	require.Equal(1, v)
	v, ok = c.PeekPrev()
	require.True(ok)
	require.Equal(3, v)

	c.MoveNext()
	_, ok = c.PeekPrev()
	require.False(ok)
	v, ok = c.PeekNext()
	require.True(ok)
	require.Equal(2, v)

	*c.CurrentMut() = 10
	*c.PeekNextMut() = 20
	require.Nil(c.PeekPrevMut())

	c.MovePrev()
	c.MovePrev()
	requireIndex(t, c, 2)
	_, ok = c.PeekNext()
	require.False(ok)
	require.Nil(c.PeekNextMut())
	*c.PeekPrevMut() += 1
	*c.CurrentMut() = 30

	c.Close()
	require.Equal([]int{10, 21, 30}, l.Values())
}

func TestCursorScenario(t *testing.T) {
	require := require.New(t)
	l := New[int]()
	l.PushHead(1)
	l.PushHead(2)
	l.PushHead(3)
	require.Equal([]int{3, 2, 1}, l.Values())
	require.Equal(3, l.Len())

	v, ok := l.PopHead()
	require.True(ok)
	require.Equal(3, v)
	require.Equal([]int{2, 1}, l.Values())

	c, err := l.Cursor()
	require.NoError(err)
	c.MoveNext()
	requireIndex(t, c, 0)
	v, ok = c.Current()
	require.True(ok)
	require.Equal(2, v)

	before := c.SplitBefore()
	require.Zero(before.Len())
	require.NoError(before.Validate())
	require.NoError(l.Validate())
	requireIndex(t, c, 0)

	after := c.SplitAfter()
	require.Equal([]int{1}, after.Values())
	requireIndex(t, c, 0)
	c.Close()

	require.Equal([]int{2}, l.Values())
	require.NoError(l.Validate())
	require.NoError(after.Validate())
}

func TestSplitBefore(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})

	c, err := l.Cursor()
	require.NoError(err)
	defer c.Close()

	for i := 0; i < 4; i++ {
		c.MoveNext()
	}
	requireIndex(t, c, 3)

	prefix := c.SplitBefore()
	require.Equal([]int{1, 2, 3}, prefix.Values())
	require.NoError(prefix.Validate())
	require.NoError(l.Validate())
	require.Equal(3, l.Len())
	requireIndex(t, c, 0)

	v, ok := c.Current()
	require.True(ok)
	require.Equal(4, v)
	_, ok = c.PeekPrev()
	require.False(ok)

	c.MovePrev()
	requireGhost(t, c)
	all := c.SplitBefore()
	require.Equal([]int{4, 5, 6}, all.Values())
	require.Zero(l.Len())
	require.NoError(l.Validate())
}

func TestSplitAfter(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})

	c, err := l.Cursor()
	require.NoError(err)
	defer c.Close()

	c.MoveNext()
	c.MoveNext()
	suffix := c.SplitAfter()
	require.Equal([]int{3, 4, 5, 6}, suffix.Values())
	require.NoError(suffix.Validate())
	require.NoError(l.Validate())
	requireIndex(t, c, 1)

	// already the tail
	empty := c.SplitAfter()
	require.Zero(empty.Len())
	require.NoError(empty.Validate())
	require.Equal(2, l.Len())

	c.MoveNext()
	requireGhost(t, c)
	all := c.SplitAfter()
	require.Equal([]int{1, 2}, all.Values())
	require.Zero(l.Len())
}

func TestSplitBeforeThenSpliceBeforeRoundTrips(t *testing.T) {
	original := []int{1, 2, 3, 4, 5, 6, 7}
	for i := -1; i < len(original); i++ {
		require := require.New(t)
		l := FromSlice(original)

		c, err := l.Cursor()
		require.NoError(err)
		// i == -1 leaves the cursor on the ghost
		for j := 0; j <= i; j++ {
			c.MoveNext()
		}

		prefix := c.SplitBefore()
		c.SpliceBefore(prefix)
		require.Zero(prefix.Len())
		if i >= 0 {
			requireIndex(t, c, i)
		}
		c.Close()

		require.Equal(original, l.Values())
		require.Equal(len(original), l.Len())
		require.NoError(l.Validate())
	}
}

func TestSpliceBefore(t *testing.T) {
	tests := []struct {
		name          string
		moves         int
		other         []int
		expected      []int
		expectedIndex int
		ghost         bool
	}{
		{
			name:          "interior",
			moves:         3,
			other:         []int{7, 8},
			expected:      []int{1, 2, 7, 8, 3, 4},
			expectedIndex: 4,
		},
		{
			name:          "head",
			moves:         1,
			other:         []int{7, 8},
			expected:      []int{7, 8, 1, 2, 3, 4},
			expectedIndex: 2,
		},
		{
			name:          "tail",
			moves:         4,
			other:         []int{7},
			expected:      []int{1, 2, 3, 7, 4},
			expectedIndex: 4,
		},
		{
			name:     "ghost appends",
			moves:    0,
			other:    []int{7, 8},
			expected: []int{1, 2, 3, 4, 7, 8},
			ghost:    true,
		},
		{
			name:          "empty other",
			moves:         2,
			other:         nil,
			expected:      []int{1, 2, 3, 4},
			expectedIndex: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			l := FromSlice([]int{1, 2, 3, 4})
			other := FromSlice(tt.other)

			c, err := l.Cursor()
			require.NoError(err)
			for i := 0; i < tt.moves; i++ {
				c.MoveNext()
			}
			current, _ := c.Current()

			c.SpliceBefore(other)
			require.Zero(other.Len())
			require.NoError(other.Validate())
			if tt.ghost {
				requireGhost(t, c)
			} else {
				requireIndex(t, c, tt.expectedIndex)
				v, ok := c.Current()
				require.True(ok)
				require.Equal(current, v)
			}
			c.Close()

			require.Equal(tt.expected, l.Values())
			require.NoError(l.Validate())
		})
	}
}

func TestSpliceAfter(t *testing.T) {
	tests := []struct {
		name     string
		moves    int
		expected []int
	}{
		{name: "ghost prepends", moves: 0, expected: []int{7, 8, 1, 2, 3}},
		{name: "head", moves: 1, expected: []int{1, 7, 8, 2, 3}},
		{name: "tail", moves: 3, expected: []int{1, 2, 3, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			l := FromSlice([]int{1, 2, 3})
			other := FromSlice([]int{7, 8})

			c, err := l.Cursor()
			require.NoError(err)
			for i := 0; i < tt.moves; i++ {
				c.MoveNext()
			}
			before, hadIndex := c.Index()
			c.SpliceAfter(other)
			after, hasIndex := c.Index()
			require.Equal(hadIndex, hasIndex)
			require.Equal(before, after)
			c.Close()

			require.Zero(other.Len())
			require.Equal(tt.expected, l.Values())
			require.NoError(l.Validate())
		})
	}
}

func TestSpliceIntoEmptyList(t *testing.T) {
	require := require.New(t)
	l := New[int]()
	other := FromSlice([]int{1, 2, 3})

	c, err := l.Cursor()
	require.NoError(err)
	c.SpliceBefore(other)
	requireGhost(t, c)
	c.MoveNext()
	requireIndex(t, c, 0)
	c.Close()

	require.Equal([]int{1, 2, 3}, l.Values())
	require.NoError(l.Validate())
}

func TestSpliceMisuse(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{1, 2})
	other := FromSlice([]int{3})

	c, err := l.Cursor()
	require.NoError(err)
	require.PanicsWithValue(ErrSelfSplice, func() { c.SpliceBefore(l) })

	oc, err := other.Cursor()
	require.NoError(err)
	require.PanicsWithValue(ErrBorrowed, func() { c.SpliceAfter(other) })
	oc.Close()

	c.SpliceAfter(other)
	c.Close()
	require.Equal([]int{3, 1, 2}, l.Values())

	require.PanicsWithValue(ErrCursorClosed, func() { c.MoveNext() })
	require.PanicsWithValue(ErrCursorClosed, func() { c.SplitBefore() })
}

func TestInsertAndRemove(t *testing.T) {
	require := require.New(t)
	l := FromSlice([]int{2, 4})

	c, err := l.Cursor()
	require.NoError(err)

	c.InsertBefore(5) // ghost: append
	c.InsertAfter(1)  // ghost: prepend
	requireGhost(t, c)

	c.MoveNext()
	c.MoveNext()
	requireIndex(t, c, 1)
	c.InsertAfter(3)
	requireIndex(t, c, 1)
	c.InsertBefore(0)
	requireIndex(t, c, 2)
	require.NoError(l.Validate())

	v, ok := c.RemoveCurrent()
	require.True(ok)
	require.Equal(2, v)
	requireIndex(t, c, 2)
	v, ok = c.Current()
	require.True(ok)
	require.Equal(3, v)

	c.MovePrev()
	c.MovePrev()
	requireIndex(t, c, 0)
	v, ok = c.RemoveCurrent()
	require.True(ok)
	require.Equal(1, v)
	requireIndex(t, c, 0)

	c.MovePrev()
	c.MovePrev()
	requireIndex(t, c, 3)
	v, ok = c.RemoveCurrent()
	require.True(ok)
	require.Equal(5, v)
	requireGhost(t, c)
	c.Close()

	require.Equal([]int{0, 3, 4}, l.Values())
	require.NoError(l.Validate())
}

func TestCursorObserverEvents(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	obs := dlistmock.NewObserver(ctrl)
	obs.EXPECT().Allocated().Times(5)
	gomock.InOrder(
		obs.EXPECT().Split(2),
		obs.EXPECT().Spliced(2),
		obs.EXPECT().Split(1),
	)
	obs.EXPECT().Freed().Times(1)

	l := FromSlice([]int{1, 2, 3, 4, 5}, WithObserver(obs))
	c, err := l.Cursor()
	require.NoError(err)
	for i := 0; i < 3; i++ {
		c.MoveNext()
	}
	prefix := c.SplitBefore()
	c.SpliceBefore(prefix)
	_, ok := c.RemoveCurrent()
	require.True(ok)
	tail := c.SplitAfter()
	require.Equal([]int{5}, tail.Values())
	c.Close()

	require.Equal([]int{1, 2, 4}, l.Values())
}

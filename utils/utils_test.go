// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)
	root := t.TempDir()

	p, err := InitSubDirectory(root, "logs")
	require.NoError(err)
	require.Equal(filepath.Join(root, "logs"), p)
	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())

	// existing directories are fine
	_, err = InitSubDirectory(root, "logs")
	require.NoError(err)
}

func TestMap(t *testing.T) {
	require := require.New(t)
	require.Equal([]string{"1", "2", "3"}, Map(strconv.Itoa, []int{1, 2, 3}))
	require.Empty(Map(strconv.Itoa, nil))
}

func TestBoundedBuffer(t *testing.T) {
	require := require.New(t)

	_, err := NewBoundedBuffer[int](0, nil)
	require.ErrorIs(err, errInvalidMaxSize)

	var evicted []int
	b, err := NewBoundedBuffer(3, func(i int) { evicted = append(evicted, i) })
	require.NoError(err)

	_, ok := b.Last()
	require.False(ok)
	require.Empty(b.Items())

	for i := 1; i <= 5; i++ {
		b.Insert(i)
	}
	last, ok := b.Last()
	require.True(ok)
	require.Equal(5, last)
	require.Equal([]int{3, 4, 5}, b.Items())
	require.Equal([]int{1, 2}, evicted)
}

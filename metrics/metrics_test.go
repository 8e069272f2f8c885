// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/dlist/dlist"
)

func TestMetricsTrackLists(t *testing.T) {
	require := require.New(t)
	r := prometheus.NewRegistry()
	m, err := New("dlist", r)
	require.NoError(err)

	l := dlist.FromSlice([]int{1, 2, 3, 4, 5}, dlist.WithObserver(m))
	require.Equal(float64(5), testutil.ToFloat64(m.allocated))
	require.Equal(float64(5), testutil.ToFloat64(m.live))

	c, err := l.Cursor()
	require.NoError(err)
	c.MoveNext()
	c.MoveNext()
	suffix := c.SplitAfter()
	c.SpliceBefore(suffix)
	c.Close()
	require.Equal([]int{1, 3, 4, 5, 2}, l.Values())

	require.Equal(float64(1), testutil.ToFloat64(m.splits))
	require.Equal(float64(3), testutil.ToFloat64(m.splitNodes))
	require.Equal(float64(1), testutil.ToFloat64(m.splices))
	require.Equal(float64(3), testutil.ToFloat64(m.splicedNodes))

	_, ok := l.PopTail()
	require.True(ok)
	l.Clear()
	require.Equal(float64(5), testutil.ToFloat64(m.freed))
	require.Zero(testutil.ToFloat64(m.live))

	families, err := r.Gather()
	require.NoError(err)
	require.Len(families, 7)
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)
	r := prometheus.NewRegistry()
	_, err := New("dlist", r)
	require.NoError(err)
	_, err = New("dlist", r)
	require.Error(err)
}

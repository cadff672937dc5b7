// SPDX-License-Identifier: MIT
package infonet_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/infonet"
)

// chain builds a→b→c→d plus an isolated e, with a back edge c→a.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"c", "a"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func TestReach_FollowsDirection(t *testing.T) {
	g := chain(t)

	r, err := infonet.Reach(context.Background(), g, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, r.Order)
	assert.Equal(t, 4, r.Reached())
	assert.InDelta(t, 0.8, r.Fraction(), 1e-12)
	assert.Equal(t, 3, r.MaxDepth())
	assert.InDelta(t, 2.0, r.MeanDepth(), 1e-12)

	path, err := r.PathTo("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	_, err = r.PathTo("e")
	require.Error(t, err)

	// d has no outgoing edges.
	r, err = infonet.Reach(context.Background(), g, "d", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, r.Order)
	assert.True(t, math.IsNaN(r.MeanDepth()))
}

func TestReach_MaxDepth(t *testing.T) {
	r, err := infonet.Reach(context.Background(), chain(t), "a", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, r.Order)
}

func TestReach_Errors(t *testing.T) {
	ctx := context.Background()
	g := chain(t)

	_, err := infonet.Reach(ctx, nil, "a", 0)
	require.ErrorIs(t, err, infonet.ErrGraphNil)
	_, err = infonet.Reach(ctx, g, "zz", 0)
	require.ErrorIs(t, err, infonet.ErrUnknownVertex)
	_, err = infonet.Reach(ctx, g, "a", -1)
	require.ErrorIs(t, err, infonet.ErrParameterOutOfRange)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	r, err := infonet.Reach(canceled, g, "a", 0)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.Order)
}

func TestReach_OnComposedNetwork(t *testing.T) {
	phys, virt := layers(t)
	info, err := infonet.Compose(phys, virt, 0, infonet.WithSeed(1))
	require.NoError(t, err)

	// q=0 keeps the whole physical path in both directions.
	r, err := infonet.Reach(context.Background(), info, "a", 0)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Reached())
	assert.Equal(t, 5, r.MaxDepth())
}

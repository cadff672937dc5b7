// SPDX-License-Identifier: MIT
package sweep_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/epidemic"
	"github.com/katalvlaran/epinet/sweep"
)

func grid(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Grid(8, 8))
	require.NoError(t, err)
	return g
}

var base = epidemic.Params{Tau: 0.4, Gamma: 0.1, Iterations: 30, InitialInfected: 4}

func TestGridPoints(t *testing.T) {
	pts := sweep.Grid{H: []float64{0, 1}, J: []float64{2, 3, 4}}.Points()
	require.Len(t, pts, 6)
	assert.Equal(t, sweep.Point{H: 0, J: 2}, pts[0])
	assert.Equal(t, sweep.Point{H: 0, J: 4}, pts[2])
	assert.Equal(t, sweep.Point{H: 1, J: 2}, pts[3])
}

func TestRun_ShapeAndInvariants(t *testing.T) {
	g := grid(t)
	var calls atomic.Int32
	res, err := sweep.Run(context.Background(), g, base,
		sweep.Grid{H: []float64{0, 2}, J: []float64{0, 5}, Replicates: 3},
		sweep.WithWorkers(2), sweep.WithSeed(5),
		sweep.WithOnPoint(func(sweep.Result) { calls.Add(1) }),
	)
	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, int32(4), calls.Load())

	for i, r := range res {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, 3, r.Replicates)
		require.Len(t, r.MeanSeries, base.Iterations)
		// Every replicate starts from the same initial fraction.
		assert.InDelta(t, 4.0/64.0, r.MeanSeries[0], 1e-12)
		assert.GreaterOrEqual(t, r.MeanPeak, r.MeanFinal)
		for _, v := range r.MeanSeries {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestRun_WorkerCountDoesNotChangeResults(t *testing.T) {
	g := grid(t)
	gr := sweep.Grid{H: []float64{0, 0.5, 1}, J: []float64{1, 3}, Replicates: 4}

	one, err := sweep.Run(context.Background(), g, base, gr, sweep.WithWorkers(1), sweep.WithSeed(11))
	require.NoError(t, err)
	many, err := sweep.Run(context.Background(), g, base, gr, sweep.WithWorkers(6), sweep.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestRun_FrozenDynamics(t *testing.T) {
	g := grid(t)
	p := epidemic.Params{Iterations: 5, InitialInfected: 16}
	res, err := sweep.Run(context.Background(), g, p, sweep.Grid{H: []float64{0}, J: []float64{0, 9}, Replicates: 2})
	require.NoError(t, err)
	for _, r := range res {
		for _, v := range r.MeanSeries {
			assert.Equal(t, 0.25, v)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	g := grid(t)
	ctx := context.Background()

	_, err := sweep.Run(ctx, g, base, sweep.Grid{J: []float64{1}, Replicates: 1})
	require.ErrorIs(t, err, sweep.ErrEmptyGrid)

	_, err = sweep.Run(ctx, g, base, sweep.Grid{H: []float64{0}, J: []float64{1}})
	require.ErrorIs(t, err, sweep.ErrInvalidReplicates)

	_, err = sweep.Run(ctx, g, base, sweep.Grid{H: []float64{-1}, J: []float64{1}, Replicates: 1})
	require.ErrorIs(t, err, epidemic.ErrParameterOutOfRange)

	bad := base
	bad.InitialInfected = 1000
	_, err = sweep.Run(ctx, g, bad, sweep.Grid{H: []float64{0}, J: []float64{1}, Replicates: 1})
	require.ErrorIs(t, err, epidemic.ErrInvalidSampleSize)

	_, err = sweep.Run(ctx, nil, base, sweep.Grid{H: []float64{0}, J: []float64{1}, Replicates: 1})
	require.ErrorIs(t, err, epidemic.ErrGraphNil)

	assert.Panics(t, func() { sweep.WithOnPoint(nil) })
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sweep.Run(ctx, grid(t), base, sweep.Grid{H: []float64{0, 1}, J: []float64{1}, Replicates: 2})
	require.ErrorIs(t, err, context.Canceled)
}

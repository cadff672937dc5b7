// SPDX-License-Identifier: MIT
// Package: epinet/sweep
//
// sweep.go: replicated simulations over an (H, J) grid.
//
// Scheduling:
//   - One task per grid point; tasks run on an errgroup bounded by Workers.
//   - A task owns one Simulator and runs its replicates sequentially, each
//     reseeded with DeriveSeed(seed, stream(point, replicate)).
//
// Determinism:
//   - Results are indexed by point, and every replicate's stream depends only
//     on (seed, point, replicate), so output is identical for any Workers.

package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/epinet/epidemic"
)

const methodRun = "Run"

var (
	// ErrEmptyGrid is returned when H or J lists no values.
	ErrEmptyGrid = errors.New("sweep: empty parameter grid")

	// ErrInvalidReplicates is returned when Replicates < 1.
	ErrInvalidReplicates = errors.New("sweep: replicates must be at least 1")
)

// Grid lists the H and J values to cross and the replicates per point.
type Grid struct {
	H          []float64 `json:"h"`
	J          []float64 `json:"j"`
	Replicates int       `json:"replicates"`
}

// Point is one (H, J) pair.
type Point struct {
	H float64 `json:"h"`
	J float64 `json:"j"`
}

// Result aggregates the replicates of one point.
type Result struct {
	Point      Point     `json:"point"`
	Index      int       `json:"index"`       // position in row-major (H outer, J inner) order
	MeanSeries []float64 `json:"mean_series"` // element-wise mean over replicates
	MeanPeak   float64   `json:"mean_peak"`
	MeanFinal  float64   `json:"mean_final"`
	MeanLevel  float64   `json:"mean_level"` // mean of each replicate's series mean
	Replicates int       `json:"replicates"`
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	seed    int64
	onPoint func(Result)
}

// WithWorkers bounds concurrent points; n ≤ 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithSeed sets the parent seed of every replicate stream.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithOnPoint registers a callback invoked once per finished point. Calls are
// serialized but arrive in completion order.
func WithOnPoint(fn func(Result)) Option {
	if fn == nil {
		panic("sweep: WithOnPoint(nil)")
	}
	return func(o *options) { o.onPoint = fn }
}

// Points returns the grid in row-major order (H outer, J inner).
func (g Grid) Points() []Point {
	out := make([]Point, 0, len(g.H)*len(g.J))
	for _, h := range g.H {
		for _, j := range g.J {
			out = append(out, Point{H: h, J: j})
		}
	}
	return out
}

// Run simulates every grid point on graph with base parameters (base.H and
// base.J are replaced per point) and returns one Result per point in
// Points() order.
//
// Errors:
//   - ErrEmptyGrid, ErrInvalidReplicates.
//   - Parameter and construction errors from package epidemic, wrapped.
//   - ctx.Err() when the context is done; in-flight runs stop at the next
//     step boundary.
func Run(ctx context.Context, graph epidemic.Graph, base epidemic.Params, grid Grid, opts ...Option) ([]Result, error) {
	if len(grid.H) == 0 || len(grid.J) == 0 {
		return nil, fmt.Errorf("%s: %d H × %d J: %w", methodRun, len(grid.H), len(grid.J), ErrEmptyGrid)
	}
	if grid.Replicates < 1 {
		return nil, fmt.Errorf("%s: replicates=%d: %w", methodRun, grid.Replicates, ErrInvalidReplicates)
	}

	o := options{seed: 1, onPoint: func(Result) {}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	points := grid.Points()
	for _, pt := range points {
		p := base
		p.H, p.J = pt.H, pt.J
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: point (H=%v, J=%v): %w", methodRun, pt.H, pt.J, err)
		}
	}

	results := make([]Result, len(points))
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for idx, pt := range points {
		eg.Go(func() error {
			res, err := runPoint(egCtx, graph, base, pt, idx, grid.Replicates, o.seed)
			if err != nil {
				return err
			}
			results[idx] = res

			mu.Lock()
			o.onPoint(res)
			mu.Unlock()

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runPoint(ctx context.Context, graph epidemic.Graph, base epidemic.Params, pt Point, idx, reps int, seed int64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sim, err := epidemic.New(graph, epidemic.WithContext(ctx))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, err)
	}

	p := base
	p.H, p.J = pt.H, pt.J

	res := Result{Point: pt, Index: idx, Replicates: reps, MeanSeries: make([]float64, p.Iterations)}
	for r := 0; r < reps; r++ {
		sim.Reseed(epidemic.DeriveSeed(seed, stream(idx, r)))
		series, serr := sim.Simulate(p)
		if serr != nil {
			return Result{}, fmt.Errorf("%s: point (H=%v, J=%v) replicate %d: %w", methodRun, pt.H, pt.J, r, serr)
		}
		for i, v := range series {
			res.MeanSeries[i] += v
		}
		sum := epidemic.Summarize(series)
		res.MeanPeak += sum.Peak
		res.MeanFinal += sum.Final
		res.MeanLevel += sum.Mean
	}

	n := float64(reps)
	for i := range res.MeanSeries {
		res.MeanSeries[i] /= n
	}
	res.MeanPeak /= n
	res.MeanFinal /= n
	res.MeanLevel /= n

	return res, nil
}

// stream packs (point, replicate) into one DeriveSeed stream identifier.
func stream(point, replicate int) uint64 {
	return uint64(point)<<32 | uint64(uint32(replicate))
}

// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// options.go: functional options for New.
//
// Contract:
//   • Option constructors panic on nil arguments (programmer error).
//   • Without WithSeed/WithSource the simulator uses the fixed default seed,
//     so runs are reproducible unless the caller opts into other randomness.

package epidemic

import (
	"context"
	"math/rand"
)

// Option configures a Simulator.
type Option func(*options)

func defaultOptions() options {
	return options{
		ctx:      context.Background(),
		src:      nil,
		progress: func(int, int) {},
		onStep:   func(StepStats) {},
	}
}

// WithContext sets the context checked between steps. A done context stops
// Simulate after the step in progress completes.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("epidemic: WithContext(nil)")
	}
	return func(o *options) { o.ctx = ctx }
}

// WithSeed seeds a fresh math/rand source. seed==0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.src = rngFromSeed(seed) }
}

// WithSource installs a caller-owned random source.
func WithSource(src Source) Option {
	if src == nil {
		panic("epidemic: WithSource(nil)")
	}
	return func(o *options) { o.src = src }
}

// WithRand installs a *rand.Rand; equivalent to WithSource(r).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("epidemic: WithRand(nil)")
	}
	return func(o *options) { o.src = r }
}

// WithProgress registers the progress channel. fn receives (completed steps,
// total steps) after every step and must not touch the simulator.
func WithProgress(fn func(current, total int)) Option {
	if fn == nil {
		panic("epidemic: WithProgress(nil)")
	}
	return func(o *options) { o.progress = fn }
}

// WithOnStep registers an observer receiving per-step statistics.
func WithOnStep(fn func(StepStats)) Option {
	if fn == nil {
		panic("epidemic: WithOnStep(nil)")
	}
	return func(o *options) { o.onStep = fn }
}

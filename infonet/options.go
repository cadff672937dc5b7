// SPDX-License-Identifier: MIT
// Package: epinet/infonet
//
// options.go: functional options for Compose. Constructors panic on nil.

package infonet

import "math/rand"

const defaultSeed int64 = 1

// Option configures Compose.
type Option func(*options)

type options struct {
	src    Source
	onEdge func(from, to string, layer Layer)
	stats  *Stats
}

func defaultOptions() options {
	return options{onEdge: func(string, string, Layer) {}}
}

// WithSeed draws from a fresh math/rand source. seed==0 selects the default.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(o *options) { o.src = rand.New(rand.NewSource(seed)) }
}

// WithSource installs a caller-owned source.
func WithSource(src Source) Option {
	if src == nil {
		panic("infonet: WithSource(nil)")
	}
	return func(o *options) { o.src = src }
}

// WithRand installs a *rand.Rand; equivalent to WithSource(r).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("infonet: WithRand(nil)")
	}
	return func(o *options) { o.src = r }
}

// WithOnEdge registers a callback for every directed edge added to the result,
// tagged with the layer it was drawn from.
func WithOnEdge(fn func(from, to string, layer Layer)) Option {
	if fn == nil {
		panic("infonet: WithOnEdge(nil)")
	}
	return func(o *options) { o.onEdge = fn }
}

// WithStats fills *st with per-layer counters when Compose succeeds.
func WithStats(st *Stats) Option {
	if st == nil {
		panic("infonet: WithStats(nil)")
	}
	return func(o *options) { o.stats = st }
}

// SPDX-License-Identifier: MIT
package infonet_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/infonet"
)

// TestComposeProvenance checks that every composed edge comes from a layer
// and that the extremes of q select exactly one layer.
func TestComposeProvenance(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	parameters.Rng.Seed(99)

	properties := gopter.NewProperties(parameters)

	build := func(n int, seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(n, 0.25))
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		return g
	}

	properties.Property("every edge is a direction of a physical or virtual contact", prop.ForAll(
		func(n int, s1, s2, s3 int64, q float64) bool {
			phys, virt := build(n, s1), build(n, s2)
			info, err := infonet.Compose(phys, virt, q, infonet.WithSeed(s3))
			if err != nil {
				return false
			}
			for _, e := range info.Edges() {
				if !phys.HasEdge(e.From, e.To) && !virt.HasEdge(e.From, e.To) {
					return false
				}
			}
			return info.VertexCount() == n
		},
		gen.IntRange(1, 30),
		gen.Int64(),
		gen.Int64(),
		gen.Int64(),
		gen.Float64Range(0, 1),
	))

	properties.Property("q=0 reproduces physical, q=1 reproduces virtual", prop.ForAll(
		func(n int, s1, s2, s3 int64) bool {
			phys, virt := build(n, s1), build(n, s2)
			for _, tc := range []struct {
				q    float64
				want *core.Graph
			}{{0, phys}, {1, virt}} {
				info, err := infonet.Compose(phys, virt, tc.q, infonet.WithSeed(s3))
				if err != nil || info.EdgeCount() != 2*tc.want.EdgeCount() {
					return false
				}
				for _, e := range info.Edges() {
					if !tc.want.HasEdge(e.From, e.To) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 30),
		gen.Int64(),
		gen.Int64(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

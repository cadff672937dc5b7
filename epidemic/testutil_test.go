// SPDX-License-Identifier: MIT
package epidemic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
)

// scriptedSource replays fixed Float64 values and counts draws. Intn always
// returns 0 so that sampling picks the lowest remaining index.
type scriptedSource struct {
	floats []float64
	pos    int
	draws  int
}

func (s *scriptedSource) Float64() float64 {
	s.draws++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[s.pos%len(s.floats)]
	s.pos++
	return v
}

func (s *scriptedSource) Intn(int) int {
	s.draws++
	return 0
}

// mustBuild builds an undirected graph from one constructor or fails the test.
func mustBuild(t testing.TB, ctor builder.Constructor, bopts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, ctor)
	require.NoError(t, err)
	return g
}

// mustGraph builds an undirected graph from explicit vertices and edges.
func mustGraph(t testing.TB, vertices []string, edges [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

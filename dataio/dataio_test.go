// SPDX-License-Identifier: MIT
package dataio_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/core"
	"github.com/katalvlaran/epinet/dataio"
	"github.com/katalvlaran/epinet/epidemic"
	"github.com/katalvlaran/epinet/sweep"
)

func TestReadEdgeList(t *testing.T) {
	in := strings.Join([]string{
		"from,to",
		"# contacts of the first household",
		"A,B",
		" B , C",
		"B,A", // mirror of A,B on an undirected graph
		"D",
		"",
	}, "\n")

	g, err := dataio.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge("C", "B"))

	deg, err := g.Degree("D")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestReadEdgeList_Directed(t *testing.T) {
	g, err := dataio.ReadEdgeList(strings.NewReader("A,B\nB,A\n"), core.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadEdgeList_Malformed(t *testing.T) {
	for _, in := range []string{"A,B,C\n", "A,\n", ",\n"} {
		_, err := dataio.ReadEdgeList(strings.NewReader(in))
		require.ErrorIs(t, err, dataio.ErrMalformedRecord, "%q", in)
	}

	_, err := dataio.ReadEdgeList(strings.NewReader("A,A\n"))
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestEdgeList_RoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(25, 0.1))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("lonely"))

	var buf bytes.Buffer
	require.NoError(t, dataio.WriteEdgeList(&buf, g))
	assert.True(t, strings.HasPrefix(buf.String(), "from,to\n"))

	back, err := dataio.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	ea, eb := g.Edges(), back.Edges()
	require.Len(t, eb, len(ea))
	for i := range ea {
		assert.Equal(t, ea[i].From, eb[i].From)
		assert.Equal(t, ea[i].To, eb[i].To)
	}
}

func TestEdgeListFile_Snappy(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(4, 5))
	require.NoError(t, err)

	dir := t.TempDir()
	plain := filepath.Join(dir, "grid.csv")
	packed := filepath.Join(dir, "nested", "grid.csv.sz")
	require.NoError(t, dataio.WriteEdgeListFile(plain, g))
	require.NoError(t, dataio.WriteEdgeListFile(packed, g))

	raw, err := os.ReadFile(packed)
	require.NoError(t, err)
	assert.False(t, bytes.HasPrefix(raw, []byte("from,to")), "payload is snappy framed")

	for _, p := range []string{plain, packed} {
		back, err := dataio.ReadEdgeListFile(p)
		require.NoError(t, err, p)
		assert.Equal(t, g.EdgeCount(), back.EdgeCount(), p)
	}

	_, err = dataio.ReadEdgeListFile(filepath.Join(dir, "absent.csv"))
	require.Error(t, err)
}

func TestIsCompressed(t *testing.T) {
	assert.True(t, dataio.IsCompressed("a/b.json.sz"))
	assert.True(t, dataio.IsCompressed("B.SZ"))
	assert.False(t, dataio.IsCompressed("b.csv"))
}

func TestWriteRun(t *testing.T) {
	series := []float64{0.1, 0.25, 0.2}
	p := epidemic.Params{J: 1, Tau: 0.3, Gamma: 0.1, Iterations: 3, InitialInfected: 1}
	run := dataio.NewRun(42, 10, p, epidemic.PhaseCompleted, series)

	_, err := uuid.Parse(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.25, run.Summary.Peak)

	var csvBuf bytes.Buffer
	require.NoError(t, dataio.WriteRun(&csvBuf, run, dataio.FormatCSV))
	assert.Equal(t, "step,infected_fraction\n0,0.1\n1,0.25\n2,0.2\n", csvBuf.String())

	back, err := dataio.ReadSeriesCSV(&csvBuf)
	require.NoError(t, err)
	assert.Equal(t, series, back)

	var jsonBuf bytes.Buffer
	require.NoError(t, dataio.WriteRun(&jsonBuf, run, dataio.FormatJSON))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &decoded))
	assert.Equal(t, "completed", decoded["phase"])
	assert.Equal(t, 0.3, decoded["params"].(map[string]any)["tau"])
	assert.Len(t, decoded["series"], 3)

	require.ErrorIs(t, dataio.WriteRun(&jsonBuf, run, "xml"), dataio.ErrUnknownFormat)
}

func TestReadSeriesCSV_Errors(t *testing.T) {
	_, err := dataio.ReadSeriesCSV(strings.NewReader("step,infected_fraction\n0,abc\n"))
	require.Error(t, err)

	out, err := dataio.ReadSeriesCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestWriteSweep(t *testing.T) {
	results := []sweep.Result{
		{Point: sweep.Point{H: 0, J: 1}, Replicates: 2, MeanPeak: 0.5, MeanFinal: 0.25, MeanLevel: 0.3, MeanSeries: []float64{0.1, 0.5}},
		{Point: sweep.Point{H: 1, J: 1}, Index: 1, Replicates: 2, MeanPeak: 0.2, MeanFinal: 0.1, MeanLevel: 0.15, MeanSeries: []float64{0.1, 0.2}},
	}
	base := epidemic.Params{Tau: 0.3, Gamma: 0.1, Iterations: 2, InitialInfected: 1}

	var csvBuf bytes.Buffer
	require.NoError(t, dataio.WriteSweep(&csvBuf, 7, base, results, dataio.FormatCSV))
	assert.Equal(t,
		"h,j,replicates,mean_peak,mean_final,mean_level\n0,1,2,0.5,0.25,0.3\n1,1,2,0.2,0.1,0.15\n",
		csvBuf.String())

	var jsonBuf bytes.Buffer
	require.NoError(t, dataio.WriteSweep(&jsonBuf, 7, base, results, dataio.FormatJSON))
	var rep dataio.SweepReport
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &rep))
	assert.Equal(t, int64(7), rep.Seed)
	assert.Equal(t, results, rep.Points)

	require.ErrorIs(t, dataio.WriteSweep(&jsonBuf, 7, base, results, ""), dataio.ErrUnknownFormat)
}

var errDiskFull = errors.New("disk full")

// failAfter accepts n bytes and then fails every write.
type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	if len(p) > f.n {
		written := f.n
		f.n = 0
		return written, errDiskFull
	}
	f.n -= len(p)
	return len(p), nil
}

func TestWriters_PropagateWriteErrors(t *testing.T) {
	series := make([]float64, 5000)
	for i := range series {
		series[i] = float64(i) / 5000
	}
	results := make([]sweep.Result, 500)
	for i := range results {
		results[i] = sweep.Result{Point: sweep.Point{H: float64(i), J: 1}, Replicates: 3, MeanPeak: 0.5}
	}

	for _, limit := range []int{0, 10, 4096} {
		err := dataio.WriteSeriesCSV(&failAfter{n: limit}, series)
		require.ErrorIs(t, err, errDiskFull, "series, limit %d", limit)

		err = dataio.WriteSweep(&failAfter{n: limit}, 1, epidemic.Params{}, results, dataio.FormatCSV)
		require.ErrorIs(t, err, errDiskFull, "sweep, limit %d", limit)
	}
}

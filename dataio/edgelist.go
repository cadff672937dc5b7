// SPDX-License-Identifier: MIT
// Package: epinet/dataio
//
// edgelist.go: CSV edge lists.
//
// Format:
//
//	from,to        optional header
//	A,B            one edge per row
//	C              a row with one field declares an isolated vertex
//	# comment      ignored
//
// Rows are applied in order, so a graph written by WriteEdgeList is read
// back with the same edge creation order.

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/epinet/core"
)

// ErrMalformedRecord is returned for rows with zero or more than two fields
// or empty IDs.
var ErrMalformedRecord = errors.New("dataio: malformed record")

var edgeListHeader = []string{"from", "to"}

// ReadEdgeList parses an edge list into a new core.Graph built with opts.
// Duplicate edges are skipped unless opts allow multi-edges.
func ReadEdgeList(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	g := core.NewGraph(opts...)
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: edge list: %w", err)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if line == 1 && len(rec) == 2 && strings.EqualFold(rec[0], edgeListHeader[0]) && strings.EqualFold(rec[1], edgeListHeader[1]) {
			continue
		}

		switch {
		case len(rec) == 1 && rec[0] != "":
			if err = g.AddVertex(rec[0]); err != nil {
				return nil, fmt.Errorf("dataio: edge list record %d: %w", line, err)
			}
		case len(rec) == 2 && rec[0] != "" && rec[1] != "":
			if g.HasEdge(rec[0], rec[1]) && !g.Multigraph() {
				continue
			}
			if _, err = g.AddEdge(rec[0], rec[1]); err != nil {
				return nil, fmt.Errorf("dataio: edge list record %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("dataio: edge list record %d %q: %w", line, rec, ErrMalformedRecord)
		}
	}

	return g, nil
}

// WriteEdgeList writes a header, every edge in creation order, then every
// vertex without incident edges as a one-field row.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(edgeListHeader); err != nil {
		return fmt.Errorf("dataio: write edge list: %w", err)
	}

	touched := make(map[string]struct{}, g.VertexCount())
	for _, e := range g.Edges() {
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
		if err := cw.Write([]string{e.From, e.To}); err != nil {
			return fmt.Errorf("dataio: write edge list: %w", err)
		}
	}
	for _, id := range g.Vertices() {
		if _, ok := touched[id]; ok {
			continue
		}
		if err := cw.Write([]string{id}); err != nil {
			return fmt.Errorf("dataio: write edge list: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("dataio: write edge list: %w", err)
	}
	return nil
}

// ReadEdgeListFile is ReadEdgeList on OpenReader(path).
func ReadEdgeListFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	rc, err := OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return ReadEdgeList(rc, opts...)
}

// WriteEdgeListFile is WriteEdgeList on OpenWriter(path).
func WriteEdgeListFile(path string, g *core.Graph) (err error) {
	wc, err := OpenWriter(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, wc.Close()) }()

	return WriteEdgeList(wc, g)
}

// SPDX-License-Identifier: MIT
// Package: epinet/dataio
//
// files.go: path-based readers and writers. "" and "-" select stdin/stdout;
// a ".sz" suffix selects the snappy framing format on top of the file.

package dataio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
)

// CompressedExt marks snappy-framed files.
const CompressedExt = ".sz"

// OpenWriter creates path (and its parent directory) for writing. Closing the
// returned writer flushes the snappy stream and closes the file; for stdout it
// only flushes.
func OpenWriter(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("dataio: create directory for %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: create %s: %w", path, err)
	}
	if !IsCompressed(path) {
		return f, nil
	}
	return &snappyWriteCloser{w: snappy.NewBufferedWriter(f), f: f}, nil
}

// OpenReader opens path for reading, decoding snappy framing for ".sz" files.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: open %s: %w", path, err)
	}
	if !IsCompressed(path) {
		return f, nil
	}
	return struct {
		io.Reader
		io.Closer
	}{snappy.NewReader(f), f}, nil
}

// IsCompressed reports whether path names a snappy-framed file.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

type snappyWriteCloser struct {
	w *snappy.Writer
	f *os.File
}

func (s *snappyWriteCloser) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *snappyWriteCloser) Close() error {
	return errors.Join(s.w.Close(), s.f.Close())
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

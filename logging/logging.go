// SPDX-License-Identifier: MIT
// Package logging builds the zerolog logger used by the epinet CLI from a
// config.LoggingConfig. Library packages never log; they return errors and
// expose observation hooks instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/epinet/config"
)

// New returns a logger for cfg and a closer for any file it opened. The
// closer is never nil.
func New(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
	}

	var (
		out    io.Writer
		closer io.Closer = nopCloser{}
	)
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		out = os.Stdout
	case "file":
		if dir := filepath.Dir(cfg.FilePath); dir != "." {
			if err = os.MkdirAll(dir, 0o755); err != nil {
				return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: create log directory: %w", err)
			}
		}
		f, ferr := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("logging: open %q: %w", cfg.FilePath, ferr)
		}
		out, closer = f, f
	default:
		out = os.Stderr
	}

	return build(out, level, cfg.Format, cfg.TimeFormat), closer, nil
}

// NewWriter is New for an explicit writer; tests and embedders use it.
func NewWriter(w io.Writer, cfg config.LoggingConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
	}
	return build(w, level, cfg.Format, cfg.TimeFormat), nil
}

func build(out io.Writer, level zerolog.Level, format, timeFormat string) zerolog.Logger {
	tf := time.RFC3339
	switch strings.ToLower(timeFormat) {
	case "unix":
		tf = zerolog.TimeFormatUnix
	case "iso8601":
		tf = "2006-01-02T15:04:05.000Z07:00"
	}

	if strings.ToLower(format) == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	// TimeFieldFormat is package-global in zerolog; the CLI builds one logger.
	zerolog.TimeFieldFormat = tf

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SPDX-License-Identifier: MIT
// Package: epinet/config
//
// load.go: layered loading.
//
// Precedence, lowest first:
//  1. Default()
//  2. YAML file (unknown keys are rejected)
//  3. Environment (EPINET_*), after loading optional .env files
//
// The result is validated before it is returned.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load builds a Config from path (may be empty) and the environment.
// dotenv files that do not exist are skipped; existing variables are never
// overwritten by them.
func Load(path string, dotenv ...string) (Config, error) {
	if err := loadDotenv(dotenv...); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decodeYAML(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeYAML overlays raw onto cfg. An empty document leaves cfg untouched.
func decodeYAML(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func loadDotenv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: dotenv %s: %w", f, err)
		}
	}
	return nil
}

// Marshal renders cfg as YAML (used by "epinet config" to print the
// effective configuration).
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

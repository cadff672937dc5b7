// SPDX-License-Identifier: MIT
// Package: epinet/config
//
// types.go: configuration tree. Every field carries its YAML key and its
// validation rules. Environment keys are derived by envconfig from the field
// path: EPINET_<SECTION>_<FIELD>, e.g. EPINET_EPIDEMIC_INITIAL_INFECTED.

package config

import "errors"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EPINET"

// ErrInvalidConfig wraps every loading and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Graph kinds understood by GraphConfig.Kind.
const (
	KindCycle    = "cycle"
	KindPath     = "path"
	KindStar     = "star"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindRandom   = "random"
	KindFile     = "file"
)

// Config is the complete configuration of the epinet CLI.
type Config struct {
	Graph    GraphConfig    `yaml:"graph"`
	Epidemic EpidemicConfig `yaml:"epidemic"`
	Infonet  InfonetConfig  `yaml:"infonet"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphConfig selects a contact graph: a generated family or an edge-list file.
type GraphConfig struct {
	Kind string  `yaml:"kind" validate:"oneof=cycle path star complete grid random file"`
	N    int     `yaml:"n" validate:"gte=0"`
	Rows int     `yaml:"rows" validate:"required_if=Kind grid,gte=0"`
	Cols int     `yaml:"cols" validate:"required_if=Kind grid,gte=0"`
	P    float64 `yaml:"p" validate:"gte=0,lte=1"`
	Seed int64   `yaml:"seed"`
	Path string  `yaml:"path" validate:"required_if=Kind file"`
}

// EpidemicConfig holds the parameters of one SIS run.
type EpidemicConfig struct {
	H               float64 `yaml:"h" validate:"gte=0"`
	J               float64 `yaml:"j" validate:"gte=0"`
	Tau             float64 `yaml:"tau" validate:"gte=0,lte=1"`
	Gamma           float64 `yaml:"gamma" validate:"gte=0,lte=1"`
	Iterations      int     `yaml:"iterations" validate:"gte=0"`
	InitialInfected int     `yaml:"initial_infected" split_words:"true" validate:"gte=0"`
	Seed            int64   `yaml:"seed"`
}

// InfonetConfig configures the information-network composer. The physical
// layer is Config.Graph; Virtual describes the second layer.
type InfonetConfig struct {
	Q       float64     `yaml:"q" validate:"gte=0,lte=1"`
	Seed    int64       `yaml:"seed"`
	Virtual GraphConfig `yaml:"virtual"`
}

// SweepConfig describes an (H, J) grid explored with replicated runs.
type SweepConfig struct {
	H          []float64 `yaml:"h" validate:"dive,gte=0"`
	J          []float64 `yaml:"j" validate:"dive,gte=0"`
	Replicates int       `yaml:"replicates" validate:"min=1"`
	Workers    int       `yaml:"workers" validate:"gte=0"`
	Seed       int64     `yaml:"seed"`
}

// OutputConfig selects where results go. Empty paths mean stdout (series)
// or disabled (metrics).
type OutputConfig struct {
	Series   string `yaml:"series"`
	Format   string `yaml:"format" validate:"oneof=csv json"`
	Metrics  string `yaml:"metrics"`
	Progress string `yaml:"progress" validate:"oneof=none text bar"`
}

// LoggingConfig configures the zerolog logger built by package logging.
type LoggingConfig struct {
	Level      string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	Output     string `yaml:"output" validate:"oneof=stdout stderr file"`
	FilePath   string `yaml:"file_path" split_words:"true" validate:"required_if=Output file"`
	TimeFormat string `yaml:"time_format" split_words:"true" validate:"oneof=rfc3339 unix iso8601"`
}

// SPDX-License-Identifier: MIT
// Package: epinet/metrics
//
// metrics_types.go: Registry declaration and construction.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcome label values for RunsTotal.
const (
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
	StatusFailed    = "failed"
)

// Registry holds every collector of an epinet process on a private
// prometheus.Registry, so that independent runs and tests never collide.
type Registry struct {
	// Simulation metrics
	InfectedFraction      prometheus.Gauge
	MeanRiskPerception    prometheus.Gauge
	NewInfectionsTotal    prometheus.Counter
	RecoveriesTotal       prometheus.Counter
	StepsTotal            prometheus.Counter
	StepDuration          prometheus.Histogram
	RunsTotal             *prometheus.CounterVec
	RunDuration           prometheus.Histogram
	PeakInfectedFraction  prometheus.Gauge
	FinalInfectedFraction prometheus.Gauge

	// Composer metrics
	ComposeCandidatesTotal *prometheus.CounterVec
	ComposeEdgesTotal      *prometheus.CounterVec

	// Sweep metrics
	SweepPointsTotal     prometheus.Counter
	SweepReplicatesTotal prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initSimulationMetrics()
	r.initComposeMetrics()
	r.initSweepMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

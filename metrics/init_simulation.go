// SPDX-License-Identifier: MIT
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSimulationMetrics() {
	r.InfectedFraction = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "epinet_infected_fraction",
			Help: "Fraction of infected nodes entering the most recent step",
		},
	)

	r.MeanRiskPerception = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "epinet_mean_risk_perception",
			Help: "Mean risk perception evaluated in the most recent step",
		},
	)

	r.NewInfectionsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "epinet_new_infections_total",
			Help: "Total number of susceptible to infected transitions",
		},
	)

	r.RecoveriesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "epinet_recoveries_total",
			Help: "Total number of infected to susceptible transitions",
		},
	)

	r.StepsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "epinet_steps_total",
			Help: "Total number of simulation steps executed",
		},
	)

	r.StepDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "epinet_step_duration_seconds",
			Help:    "Wall time of one simulation step in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		},
	)

	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "epinet_runs_total",
			Help: "Total number of simulation runs by outcome",
		},
		[]string{"status"}, // completed, canceled, failed
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "epinet_run_duration_seconds",
			Help:    "Wall time of one simulation run in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
	)

	r.PeakInfectedFraction = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "epinet_peak_infected_fraction",
			Help: "Peak infected fraction of the most recent run",
		},
	)

	r.FinalInfectedFraction = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "epinet_final_infected_fraction",
			Help: "Last recorded infected fraction of the most recent run",
		},
	)
}

func (r *Registry) initComposeMetrics() {
	r.ComposeCandidatesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "epinet_compose_candidates_total",
			Help: "Directed contact candidates drawn by the information-network composer",
		},
		[]string{"layer"}, // physical, virtual
	)

	r.ComposeEdgesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "epinet_compose_edges_total",
			Help: "Directed edges kept by the information-network composer",
		},
		[]string{"layer"},
	)
}

func (r *Registry) initSweepMetrics() {
	r.SweepPointsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "epinet_sweep_points_total",
			Help: "Total number of (H,J) sweep points completed",
		},
	)

	r.SweepReplicatesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "epinet_sweep_replicates_total",
			Help: "Total number of sweep replicates completed",
		},
	)
}

// SPDX-License-Identifier: MIT
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/epinet/epidemic"
	"github.com/katalvlaran/epinet/infonet"
)

// ObserveStep records one simulation step. It matches the signature of
// epidemic.WithOnStep.
func (r *Registry) ObserveStep(st epidemic.StepStats) {
	r.InfectedFraction.Set(st.InfectedFraction)
	r.MeanRiskPerception.Set(st.MeanRisk)
	r.NewInfectionsTotal.Add(float64(st.NewInfections))
	r.RecoveriesTotal.Add(float64(st.Recoveries))
	r.StepsTotal.Inc()
	r.StepDuration.Observe(st.Duration.Seconds())
}

// RecordRun records the outcome of one Simulate call.
func (r *Registry) RecordRun(series []float64, err error, duration time.Duration) {
	r.RunsTotal.WithLabelValues(RunStatus(err)).Inc()
	r.RunDuration.Observe(duration.Seconds())

	if len(series) > 0 {
		sum := epidemic.Summarize(series)
		r.PeakInfectedFraction.Set(sum.Peak)
		r.FinalInfectedFraction.Set(sum.Final)
	}
}

// RecordCompose records the per-layer counters of one Compose call.
func (r *Registry) RecordCompose(st infonet.Stats) {
	phys, virt := infonet.Physical.String(), infonet.Virtual.String()
	r.ComposeCandidatesTotal.WithLabelValues(phys).Add(float64(st.PhysicalCandidates))
	r.ComposeCandidatesTotal.WithLabelValues(virt).Add(float64(st.VirtualCandidates))
	r.ComposeEdgesTotal.WithLabelValues(phys).Add(float64(st.PhysicalKept))
	r.ComposeEdgesTotal.WithLabelValues(virt).Add(float64(st.VirtualKept))
}

// RecordSweepPoint records one finished sweep point and its replicates.
func (r *Registry) RecordSweepPoint(replicates int) {
	r.SweepPointsTotal.Inc()
	r.SweepReplicatesTotal.Add(float64(replicates))
}

// WriteTextfile writes the current values in the Prometheus text format, for
// pickup by a node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}

// RunStatus maps a Simulate error to a RunsTotal label value.
func RunStatus(err error) string {
	switch {
	case err == nil:
		return StatusCompleted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return StatusCanceled
	default:
		return StatusFailed
	}
}

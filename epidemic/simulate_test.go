// SPDX-License-Identifier: MIT
package epidemic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/epidemic"
)

// SimulateSuite exercises the driver end to end.
type SimulateSuite struct {
	suite.Suite
}

// TestCycleSaturation: on a 4-cycle with risk fixed at 1 and tau=1 every
// exposed node is infected, so one seed saturates the ring in two steps.
func (s *SimulateSuite) TestCycleSaturation() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Cycle(4)), epidemic.WithSeed(11))
	require.NoError(s.T(), err)

	series, err := sim.Simulate(epidemic.Params{
		H: 0, J: 0, Tau: 1, Gamma: 0, Iterations: 3, InitialInfected: 1,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0.25, 0.75, 1.0}, series)
	require.Equal(s.T(), epidemic.PhaseCompleted, sim.Phase())
}

// TestFirstElementIsInitialFraction holds for every initial count.
func (s *SimulateSuite) TestFirstElementIsInitialFraction() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Cycle(8)), epidemic.WithSeed(5))
	require.NoError(s.T(), err)

	for n := 0; n <= 8; n++ {
		series, err := sim.Simulate(epidemic.Params{
			J: 1, Tau: 0.5, Gamma: 0.5, Iterations: 4, InitialInfected: n,
		})
		require.NoError(s.T(), err)
		require.Len(s.T(), series, 4)
		require.Equal(s.T(), float64(n)/8, series[0])
	}
}

// TestNoTransmissionIsNonIncreasing: tau=0 leaves only recovery.
func (s *SimulateSuite) TestNoTransmissionIsNonIncreasing() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Grid(5, 5)), epidemic.WithSeed(9))
	require.NoError(s.T(), err)

	series, err := sim.Simulate(epidemic.Params{
		H: 0.2, J: 1, Tau: 0, Gamma: 0.3, Iterations: 30, InitialInfected: 20,
	})
	require.NoError(s.T(), err)
	for i := 1; i < len(series); i++ {
		require.LessOrEqual(s.T(), series[i], series[i-1], "step %d", i)
	}
}

// TestFrozenDynamicsIsConstant: tau=gamma=0 never changes a state.
func (s *SimulateSuite) TestFrozenDynamicsIsConstant() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Complete(6)))
	require.NoError(s.T(), err)

	series, err := sim.Simulate(epidemic.Params{J: 3, Iterations: 10, InitialInfected: 2})
	require.NoError(s.T(), err)
	for _, v := range series {
		require.Equal(s.T(), 2.0/6.0, v)
	}
}

// TestZeroIterations returns an empty series but still initializes.
func (s *SimulateSuite) TestZeroIterations() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Path(3)))
	require.NoError(s.T(), err)

	series, err := sim.Simulate(epidemic.Params{InitialInfected: 2})
	require.NoError(s.T(), err)
	require.Empty(s.T(), series)
	require.Equal(s.T(), 2, sim.CountInfected())
	require.Equal(s.T(), epidemic.PhaseCompleted, sim.Phase())
}

// TestSeedDeterminism: equal seeds ⇒ equal series; Reseed replays a run.
func (s *SimulateSuite) TestSeedDeterminism() {
	g := mustBuild(s.T(), builder.RandomSparse(60, 0.08), builder.WithSeed(1))
	p := epidemic.Params{H: 0.1, J: 2, Tau: 0.4, Gamma: 0.2, Iterations: 50, InitialInfected: 6}

	a, err := epidemic.New(g, epidemic.WithSeed(77))
	require.NoError(s.T(), err)
	b, err := epidemic.New(g, epidemic.WithSeed(77))
	require.NoError(s.T(), err)

	sa, err := a.Simulate(p)
	require.NoError(s.T(), err)
	sb, err := b.Simulate(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), sa, sb)

	a.Reseed(77)
	replay, err := a.Simulate(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), sa, replay)
}

// TestHooksAreObservational: hooks fire once per step with consistent
// bookkeeping and the series matches a hook-free run.
func (s *SimulateSuite) TestHooksAreObservational() {
	g := mustBuild(s.T(), builder.Grid(6, 6))
	p := epidemic.Params{J: 1, Tau: 0.6, Gamma: 0.25, Iterations: 25, InitialInfected: 3}

	var (
		calls [][2]int
		stats []epidemic.StepStats
	)
	observed, err := epidemic.New(g,
		epidemic.WithSeed(4),
		epidemic.WithProgress(func(cur, total int) { calls = append(calls, [2]int{cur, total}) }),
		epidemic.WithOnStep(func(st epidemic.StepStats) { stats = append(stats, st) }),
	)
	require.NoError(s.T(), err)
	plain, err := epidemic.New(g, epidemic.WithSeed(4))
	require.NoError(s.T(), err)

	so, err := observed.Simulate(p)
	require.NoError(s.T(), err)
	sp, err := plain.Simulate(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), sp, so)

	require.Len(s.T(), calls, p.Iterations)
	require.Len(s.T(), stats, p.Iterations)
	for i := range stats {
		require.Equal(s.T(), [2]int{i + 1, p.Iterations}, calls[i])
		require.Equal(s.T(), i, stats[i].Step)
		require.Equal(s.T(), so[i], stats[i].InfectedFraction)
		require.Greater(s.T(), stats[i].MeanRisk, 0.0)
		require.LessOrEqual(s.T(), stats[i].MeanRisk, 1.0)
		if i+1 < len(stats) {
			next := stats[i].Infected + stats[i].NewInfections - stats[i].Recoveries
			require.Equal(s.T(), next, stats[i+1].Infected, "step %d", i)
		}
	}
}

// TestCancellation stops at the step boundary after the cancel.
func (s *SimulateSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sim, err := epidemic.New(mustBuild(s.T(), builder.Cycle(20)),
		epidemic.WithContext(ctx),
		epidemic.WithOnStep(func(st epidemic.StepStats) {
			if st.Step == 2 {
				cancel()
			}
		}),
	)
	require.NoError(s.T(), err)

	series, err := sim.Simulate(epidemic.Params{J: 1, Tau: 0.5, Gamma: 0.1, Iterations: 10, InitialInfected: 2})
	require.ErrorIs(s.T(), err, context.Canceled)
	require.Len(s.T(), series, 3)
	require.Equal(s.T(), epidemic.PhaseCanceled, sim.Phase())
}

// TestParameterErrors: every rejection happens before mutation.
func (s *SimulateSuite) TestParameterErrors() {
	sim, err := epidemic.New(mustBuild(s.T(), builder.Path(4)))
	require.NoError(s.T(), err)
	require.NoError(s.T(), sim.Infect("2"))

	tests := []struct {
		name string
		p    epidemic.Params
		want error
	}{
		{"negative H", epidemic.Params{H: -1, Iterations: 1}, epidemic.ErrParameterOutOfRange},
		{"negative J", epidemic.Params{J: -1, Iterations: 1}, epidemic.ErrParameterOutOfRange},
		{"tau > 1", epidemic.Params{Tau: 2, Iterations: 1}, epidemic.ErrParameterOutOfRange},
		{"gamma < 0", epidemic.Params{Gamma: -0.5, Iterations: 1}, epidemic.ErrParameterOutOfRange},
		{"negative iterations", epidemic.Params{Iterations: -1}, epidemic.ErrParameterOutOfRange},
		{"negative infected", epidemic.Params{InitialInfected: -1}, epidemic.ErrInvalidSampleSize},
		{"too many infected", epidemic.Params{InitialInfected: 5}, epidemic.ErrInvalidSampleSize},
	}
	for _, tc := range tests {
		series, err := sim.Simulate(tc.p)
		require.ErrorIs(s.T(), err, tc.want, tc.name)
		require.Nil(s.T(), series, tc.name)
		st, _ := sim.State("2")
		require.Equal(s.T(), epidemic.Infected, st, tc.name)
		require.Equal(s.T(), epidemic.PhaseNotStarted, sim.Phase(), tc.name)
	}
}

func TestSimulateSuite(t *testing.T) {
	suite.Run(t, new(SimulateSuite))
}

func TestSummarize(t *testing.T) {
	require.Equal(t, epidemic.Summary{}, epidemic.Summarize(nil))

	got := epidemic.Summarize([]float64{0.1, 0.4, 0.4, 0.2})
	require.Equal(t, 0.4, got.Peak)
	require.Equal(t, 1, got.PeakStep)
	require.Equal(t, 0.2, got.Final)
	require.InDelta(t, 0.275, got.Mean, 1e-12)
}

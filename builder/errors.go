// SPDX-License-Identifier: MIT
// Package: epinet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Tie-break when several validations fail: size first, then probability,
//     then RNG presence, then construction failures.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed
// (e.g., a nil constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT
// Package: epinet/epidemic
//
// rng.go: deterministic random streams and sampling without replacement.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs.
//   - One source per Simulator; math/rand.Rand is NOT goroutine-safe, so
//     parallel runs derive independent streams with DeriveSeed.

package epidemic

import "math/rand"

// defaultRNGSeed is the seed used when callers pass seed==0 or no seed at all.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand (seed==0 ⇒ defaultRNGSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// with a SplitMix64 finalizer, so that sibling streams are decorrelated.
// Use it to give each parallel replicate its own reproducible Source.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sampleIndices returns k distinct indices from [0,n) chosen uniformly
// without replacement, using a partial Fisher–Yates shuffle. It consumes
// exactly k draws from src. Caller guarantees 0 ≤ k ≤ n.
//
// Complexity: O(n) time, O(n) space.
func sampleIndices(src Source, n, k int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + src.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:k]
}

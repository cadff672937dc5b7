// Package dataio reads and writes the files around a simulation: contact and
// information networks as CSV edge lists, infected-fraction series, and sweep
// reports as CSV or JSON. Any path ending in ".sz" is transparently
// compressed with snappy framing.
package dataio

// Package metrics exposes simulation, composer and sweep counters as
// Prometheus collectors on a private registry.
//
// Registry.ObserveStep plugs into epidemic.WithOnStep; RecordRun,
// RecordCompose and RecordSweepPoint are called by the CLI after each
// operation. Batch runs dump the registry with WriteTextfile.
package metrics

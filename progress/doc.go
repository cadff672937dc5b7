// Package progress renders the per-step progress channel of a simulation.
//
// Both renderers are plain func(current, total int) sinks, so they plug into
// epidemic.WithProgress and never touch simulation state:
//
//	sim, _ := epidemic.New(g, epidemic.WithProgress(progress.Text(os.Stderr, 40)))
//	sim, _ := epidemic.New(g, epidemic.WithProgress(progress.NewBar(os.Stderr, "run", 40).Report))
//
// Text prints an ASCII bar; Bar prints a colored gradient bar.
package progress

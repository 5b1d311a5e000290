// Package profile provides optional runtime profiling for the confab
// application.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// Default builds compile a no-op implementation with zero overhead; builds
// tagged pprof gain file-based profiling plus the [net/http/pprof] HTTP
// handlers.
//
// # Modes
//
// When built with the pprof tag the following modes are available:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list programmatically.
//
// # Usage
//
// Build a [Config] with the functional options and start it; the returned
// controller's Stop is always safe to call:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "", "", false
//	}
//
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//
//	p := cfg.Start()
//	defer p.Stop()
//
// The confab command exposes these knobs as the -p/--pprof-mode and
// --pprof-dir flags when built with the tag. Profile files land in the
// configured directory named after the mode (cpu.pprof, heap.pprof, ...)
// and are analyzed with:
//
//	go tool pprof ./confab /tmp/profiles/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`

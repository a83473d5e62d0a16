// Package core defines the contract every differential-fuzzing target
// implements, and holds the built-in registry of such targets.
//
// A Core is pure and deterministic: same Input bytes in, same (Commits,
// error) out, forever, on any machine. Cores never perform I/O and never
// read ambient state (time, randomness, environment). The only abort path
// is a Go panic, which the runners (internal/runner) catch and translate
// into model.StatusPanic.
package core

import (
	"sort"

	"github.com/zkdiff/zkdiff/internal/model"
)

// Core is one differential-fuzzing target: a decode step, a pure
// computation, and a commit-encoding step.
type Core interface {
	// Name is the registry key and the on-disk guest directory name.
	Name() string

	// ExpectedCommitCount is the number of Values Commit always returns on
	// a non-panicking run; it equals len(CommitKinds()), which is what the
	// zkVM reader uses to know how many slots to read.
	ExpectedCommitCount() int

	// CommitKinds declares the primitive kind of each commit slot, in
	// order, so a typed public-values cursor knows how many bytes to
	// consume per slot instead of assuming a uniform width.
	CommitKinds() []model.ValueKind

	// Decode parses raw input bytes (JSON) into the core's internal input
	// representation. A decode error is a harness error (bad input), never
	// a Panic status.
	Decode(raw []byte) (any, error)

	// Run executes the pure computation. It may panic; callers run it
	// through a recover boundary (internal/runner). It must never block
	// indefinitely except timeout_test, by design, when instructed to.
	Run(input any) any

	// Commit encodes Run's output into the ordered commit stream.
	Commit(output any) []model.Value
}

// registry is the immutable, process-wide set of built-in cores, read
// through Lookup and Names.
var registry = buildRegistry()

func buildRegistry() map[string]Core {
	cores := []Core{
		fibCore{},
		arithmeticCore{},
		ioEchoCore{},
		simpleStructCore{},
		panicTestCore{},
		timeoutTestCore{},
	}
	m := make(map[string]Core, len(cores))
	for _, c := range cores {
		m[c.Name()] = c
	}
	return m
}

// Lookup returns the core registered under name, or false if unknown.
func Lookup(name string) (Core, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns every registered core name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Package zkvm defines the opaque zkVM executor seam (§6.2) and ships the
// implementations this repository can exercise without a real zkVM
// toolchain installed: a subprocess adapter for a real backend, and a
// deterministic in-process fake for tests and local development.
package zkvm

import "context"

// ExecResult is what an Executor returns on a successful (execute-mode)
// invocation: the raw public-values byte stream in commit order, and the
// reported cycle count when the backend exposes one.
type ExecResult struct {
	PublicValues []byte
	CycleCount   uint64
}

// Executor runs a compiled guest ELF against input bytes and returns either
// an ExecResult or an error. It must be deterministic: identical (elf,
// input) in must yield identical PublicValues out.
type Executor interface {
	Execute(ctx context.Context, elf []byte, input []byte) (ExecResult, error)
}

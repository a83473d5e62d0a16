package zkvm

import (
	"context"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/core"
)

// FakeExecutor is a deterministic, in-process stand-in for a real zkVM
// backend: it decodes elf (expected to be a bare core name, e.g. produced
// by FakeELF) with the core registry, runs the pure core function, and
// re-encodes the commits as a little-endian public-values stream. It lets
// the orchestrator, CLI, and test suite exercise the full run/fuzz
// workflows without a real zkVM toolchain installed — the same role a stub
// runtime adapter plays ahead of a real backend landing.
//
// It is not biased toward equivalence: a core that panics natively also
// panics here, because both paths call the same core.Run. An artificially
// planted fault must go through FaultInjectingExecutor instead.
type FakeExecutor struct{}

// FakeELF returns the placeholder "ELF" bytes FakeExecutor expects: simply
// the core's name, so a caller that has no real build tool configured can
// still exercise the full pipeline end to end.
func FakeELF(coreName string) []byte {
	return []byte(coreName)
}

func (FakeExecutor) Execute(ctx context.Context, elf []byte, input []byte) (ExecResult, error) {
	name := string(elf)
	c, ok := core.Lookup(name)
	if !ok {
		return ExecResult{}, fmt.Errorf("zkvm: fake executor: unknown core %q", name)
	}

	decoded, err := c.Decode(input)
	if err != nil {
		return ExecResult{}, fmt.Errorf("zkvm: fake executor: decode: %w", err)
	}

	out := c.Run(decoded) // panics propagate; caller (runner.RunZKVM) recovers them
	commits := c.Commit(out)

	return ExecResult{
		PublicValues: EncodeValues(commits),
		CycleCount:   uint64(len(input))*97 + uint64(c.ExpectedCommitCount())*31,
	}, nil
}

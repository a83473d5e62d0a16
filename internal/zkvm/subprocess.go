package zkvm

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/zkdiff/zkdiff/internal/store"
)

// SubprocessExecutor invokes a configured external zkVM CLI as a subprocess,
// the harness's only zkVM-side dependency besides the build tool (§6.1). It
// writes the ELF and input to a scratch directory tagged with a per-call
// uuid so concurrent harness processes invoking the same backend never
// collide on scratch file names, captures stdout as the public-values
// stream verbatim, and takes the instruction count from the first parseable
// "# cycles: <n>" line within the first 4 KiB of stderr (0 if none).
type SubprocessExecutor struct {
	// Command is the zkVM CLI binary, e.g. "sp1-exec".
	Command string
	// ScratchDir holds the per-invocation elf/input scratch files.
	ScratchDir string
}

func NewSubprocessExecutor(command, scratchDir string) *SubprocessExecutor {
	return &SubprocessExecutor{Command: command, ScratchDir: scratchDir}
}

func (s *SubprocessExecutor) Execute(ctx context.Context, elf []byte, input []byte) (ExecResult, error) {
	sessionID := uuid.NewString()
	dir := filepath.Join(s.ScratchDir, sessionID)

	elfPath := filepath.Join(dir, "guest.elf")
	inputPath := filepath.Join(dir, "input.bin")
	if err := store.WriteFileAtomic(elfPath, elf); err != nil {
		return ExecResult{}, fmt.Errorf("zkvm: subprocess: writing scratch elf: %w", err)
	}
	if err := store.WriteFileAtomic(inputPath, input); err != nil {
		return ExecResult{}, fmt.Errorf("zkvm: subprocess: writing scratch input: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	cmd := exec.CommandContext(ctx, s.Command, "--elf", elfPath, "--stdin", inputPath)

	var stdout bytes.Buffer
	errCap := store.NewBoundedBuffer(4096)
	cmd.Stdout = &stdout
	cmd.Stderr = errCap

	if err := cmd.Run(); err != nil {
		tail, _, _ := errCap.Snapshot()
		return ExecResult{}, fmt.Errorf("zkvm: subprocess executor failed (session %s): %w: %s", sessionID, err, tail)
	}

	stderrTail, _, _ := errCap.Snapshot()
	return ExecResult{
		PublicValues: stdout.Bytes(),
		CycleCount:   parseCycles(stderrTail),
	}, nil
}

func parseCycles(stderr string) uint64 {
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "# cycles:") {
			continue
		}
		n, err := strconv.ParseUint(strings.TrimSpace(strings.TrimPrefix(line, "# cycles:")), 10, 64)
		if err == nil {
			return n
		}
	}
	return 0
}

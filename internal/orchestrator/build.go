package orchestrator

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/store"
)

// ArchTag names the zkVM target triple the build tool compiles the guest
// for; SP1's own convention, since the source harness this was distilled
// from targets SP1 exclusively.
const ArchTag = "riscv32im-succinct-zkvm-elf"

// GuestELFPath derives the guest binary's well-known path by convention
// (§6.1): <guest_dir>/target/<arch_tag>/release/<core_hyphenated>-guest.
func GuestELFPath(guestDir, coreName string) string {
	hyphenated := hyphenate(coreName)
	return filepath.Join(guestDir, "target", ArchTag, "release", hyphenated+"-guest")
}

func hyphenate(coreName string) string {
	out := make([]byte, len(coreName))
	for i := 0; i < len(coreName); i++ {
		if coreName[i] == '_' {
			out[i] = '-'
		} else {
			out[i] = coreName[i]
		}
	}
	return string(out)
}

// BuildGuest invokes the configured build tool as an opaque subprocess in
// guestDir. Success is solely a zero exit code; stdout/stderr are not
// parsed beyond capturing the first 4 KiB of stderr for the failure diagnostic.
func BuildGuest(ctx context.Context, buildCommand, guestDir string) error {
	cmd := exec.CommandContext(ctx, buildCommand, "build", "--release")
	cmd.Dir = guestDir

	errCap := store.NewBoundedBuffer(4096)
	cmd.Stderr = errCap

	if err := cmd.Run(); err != nil {
		tail, _, _ := errCap.Snapshot()
		return &errcode.Error{
			Code:    errcode.BuildFailed,
			Message: fmt.Sprintf("build tool %q failed in %s: %s: %s", buildCommand, guestDir, err, tail),
		}
	}
	return nil
}

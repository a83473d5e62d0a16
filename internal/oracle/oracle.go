// Package oracle implements the equivalence check between a native and a
// zkVM execution of the same core: byte-for-byte agreement on status and
// commit stream is the only axis of correctness this harness judges.
package oracle

import (
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

// Option reserves room for future backend-identity annotations on a Diff
// without changing Compare's signature.
type Option func(*model.Diff)

// Compare judges a pair of RunResults equivalent when their statuses match
// and, for StatusOK, every commit slot matches in order, kind, and value.
// Panic and Timeout never carry commits, so their comparison is Status-only.
func Compare(native, zkvm model.RunResult, opts ...Option) model.Diff {
	d := model.Diff{
		NativeStatus:  native.Status,
		ZkvmStatus:    zkvm.Status,
		NativeCommits: native.Commits,
		ZkvmCommits:   zkvm.Commits,
		TimingDeltaMs: timingDelta(native.ElapsedMs, zkvm.ElapsedMs),
	}

	if native.Status != zkvm.Status {
		d.Match = false
		d.Reason = fmt.Sprintf("status mismatch: native=%s zkvm=%s", native.Status, zkvm.Status)
		for _, opt := range opts {
			opt(&d)
		}
		return d
	}

	if native.Status != model.StatusOK {
		// Both sides agree on Panic or Timeout; neither carries commits to compare.
		d.Match = true
		for _, opt := range opts {
			opt(&d)
		}
		return d
	}

	if len(native.Commits) != len(zkvm.Commits) {
		d.Match = false
		d.MismatchSlot = min(len(native.Commits), len(zkvm.Commits))
		d.Reason = fmt.Sprintf("commit count mismatch: native=%d zkvm=%d", len(native.Commits), len(zkvm.Commits))
		for _, opt := range opts {
			opt(&d)
		}
		return d
	}

	for i := range native.Commits {
		if !native.Commits[i].Equal(zkvm.Commits[i]) {
			d.Match = false
			d.MismatchSlot = i
			d.Reason = fmt.Sprintf("commit[%d] mismatch: native=%s zkvm=%s", i, native.Commits[i], zkvm.Commits[i])
			for _, opt := range opts {
				opt(&d)
			}
			return d
		}
	}

	d.Match = true
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func timingDelta(nativeMs, zkvmMs uint64) uint64 {
	if nativeMs >= zkvmMs {
		return nativeMs - zkvmMs
	}
	return zkvmMs - nativeMs
}

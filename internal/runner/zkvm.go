package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/zkdiff/zkdiff/internal/core"
	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/model"
	"github.com/zkdiff/zkdiff/internal/zkvm"
)

type zkvmOutcome struct {
	commits    []model.Value
	cycleCount uint64
	panicked   bool
	panicMsg   string
	timedOut   bool
}

// RunZKVM mirrors RunNative's worker/timeout/recover shape, but the work it
// isolates is a call to an opaque zkvm.Executor instead of a pure core
// function: an executor error, or a public-values decode error, is treated
// as equivalent to a guest panic for oracle purposes, exactly as §5's
// panic-containment rule specifies.
func RunZKVM(exec zkvm.Executor, coreName string, elf []byte, rawInput []byte, timeout time.Duration) (model.RunResult, error) {
	c, ok := core.Lookup(coreName)
	if !ok {
		return model.RunResult{}, &HarnessError{Err: errcode.New(errcode.UnknownCore, fmt.Sprintf("unknown core %q", coreName))}
	}

	result := make(chan zkvmOutcome, 1)
	go func() {
		var out zkvmOutcome
		defer func() {
			if r := recover(); r != nil {
				out.panicked = true
				out.panicMsg = fmt.Sprint(r)
			}
			result <- out
		}()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		execRes, err := exec.Execute(ctx, elf, rawInput)
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				out.timedOut = true
				return
			}
			out.panicked = true
			out.panicMsg = err.Error()
			return
		}

		cur := zkvm.NewCursor(execRes.PublicValues)
		commits, err := cur.ReadValues(c.CommitKinds())
		if err != nil {
			out.panicked = true
			out.panicMsg = fmt.Sprintf("public-values decode error: %s", err)
			return
		}

		out.commits = commits
		out.cycleCount = execRes.CycleCount
	}()

	start := time.Now()
	select {
	case out := <-result:
		elapsed := time.Since(start)
		if out.timedOut {
			// The executor observed ctx's own deadline and returned rather
			// than being abandoned; report Timeout exactly as the
			// time.After branch below would, so a subprocess backend that
			// can actually kill its child still classifies identically to
			// one that can only leak.
			return model.RunResult{
				Status:    model.StatusTimeout,
				Commits:   nil,
				ElapsedMs: uint64(timeout.Milliseconds()),
				Meta:      map[string]any{"runner": "zkvm", "leaked": false},
			}, nil
		}
		if out.panicked {
			// zkVM-side elapsed time is preserved on panic/executor error,
			// unlike the native runner's zeroed elapsed_ms — a deliberate,
			// documented asymmetry carried over from the source harness.
			return model.RunResult{
				Status:    model.StatusPanic,
				Commits:   nil,
				ElapsedMs: uint64(elapsed.Milliseconds()),
				PanicMsg:  out.panicMsg,
				Meta:      map[string]any{"runner": "zkvm"},
			}, nil
		}
		return model.RunResult{
			Status:     model.StatusOK,
			Commits:    out.commits,
			ElapsedMs:  uint64(elapsed.Milliseconds()),
			Meta:       map[string]any{"runner": "zkvm", "cycles": out.cycleCount},
			CycleCount: out.cycleCount,
		}, nil
	case <-time.After(timeout):
		return model.RunResult{
			Status:    model.StatusTimeout,
			Commits:   nil,
			ElapsedMs: uint64(timeout.Milliseconds()),
			Meta:      map[string]any{"runner": "zkvm", "leaked": true},
		}, nil
	}
}

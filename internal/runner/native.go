// Package runner executes a core both natively (in-process, via a worker
// goroutine) and through a zkVM executor, producing the model.RunResult
// each side contributes to an oracle comparison.
package runner

import (
	"fmt"
	"time"

	"github.com/zkdiff/zkdiff/internal/core"
	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/model"
)

// HarnessError distinguishes a harness-level failure (bad input, unknown
// core) from a guest-level outcome (Panic/Timeout), per the error taxonomy:
// harness errors are never wrapped into a RunResult.
type HarnessError struct {
	Err *errcode.Error
}

func (e *HarnessError) Error() string { return e.Err.Error() }
func (e *HarnessError) Unwrap() error { return e.Err }

func newHarnessError(code, format string, args ...any) *HarnessError {
	return &HarnessError{Err: errcode.New(code, fmt.Sprintf(format, args...))}
}

type workerOutcome struct {
	commits []model.Value
	panicked bool
	panicMsg string
}

// RunNative executes coreName on a fresh worker goroutine, isolated from the
// caller by a single-slot result channel and a recover() boundary. It never
// cancels the worker on timeout; per the harness's documented leak policy,
// a timed-out worker is abandoned and reclaimed only at process exit.
func RunNative(coreName string, rawInput []byte, timeout time.Duration) (model.RunResult, error) {
	c, ok := core.Lookup(coreName)
	if !ok {
		return model.RunResult{}, newHarnessError(errcode.UnknownCore, "unknown core %q", coreName)
	}

	decoded, err := c.Decode(rawInput)
	if err != nil {
		return model.RunResult{}, newHarnessError(errcode.BadInput, "%s", err)
	}

	result := make(chan workerOutcome, 1)
	go func() {
		var out workerOutcome
		defer func() {
			if r := recover(); r != nil {
				out.panicked = true
				out.panicMsg = fmt.Sprint(r)
			}
			result <- out
		}()
		output := c.Run(decoded)
		out.commits = c.Commit(output)
	}()

	start := time.Now()
	select {
	case out := <-result:
		elapsed := time.Since(start)
		if out.panicked {
			return model.RunResult{
				Status:    model.StatusPanic,
				Commits:   nil,
				ElapsedMs: 0, // native runner zeroes elapsed time on a caught panic
				PanicMsg:  out.panicMsg,
				Meta:      map[string]any{"runner": "native"},
			}, nil
		}
		return model.RunResult{
			Status:    model.StatusOK,
			Commits:   out.commits,
			ElapsedMs: uint64(elapsed.Milliseconds()),
			Meta:      map[string]any{"runner": "native"},
		}, nil
	case <-time.After(timeout):
		return model.RunResult{
			Status:    model.StatusTimeout,
			Commits:   nil,
			ElapsedMs: uint64(timeout.Milliseconds()),
			Meta:      map[string]any{"runner": "native", "leaked": true},
		}, nil
	}
}

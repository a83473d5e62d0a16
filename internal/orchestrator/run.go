// Package orchestrator implements the two top-level workflows (C6):
// single-shot (Run) and batch fuzz (Fuzz), plus the artifact persistence
// and build-tool invocation they share.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zkdiff/zkdiff/internal/config"
	"github.com/zkdiff/zkdiff/internal/core"
	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/ids"
	"github.com/zkdiff/zkdiff/internal/model"
	"github.com/zkdiff/zkdiff/internal/oracle"
	"github.com/zkdiff/zkdiff/internal/runner"
	"github.com/zkdiff/zkdiff/internal/zkvm"
)

// RunOpts configures a single-shot comparison.
type RunOpts struct {
	CorePath  string // a path whose last segment names the core, e.g. "guest/cores/fib"
	InputPath string
	SkipBuild bool

	Config   config.Merged
	Executor zkvm.Executor // nil selects FakeExecutor
	Now      func() time.Time
}

func resolveCoreName(corePath string) string {
	return filepath.Base(strings.TrimRight(corePath, "/"))
}

func resolveExecutor(opts RunOpts) zkvm.Executor {
	if opts.Executor != nil {
		return opts.Executor
	}
	return zkvm.FakeExecutor{}
}

func resolveGuestELF(coreName, guestDir string, exec zkvm.Executor) ([]byte, error) {
	if f, ok := exec.(*zkvm.FaultInjectingExecutor); ok {
		exec = f.Inner
	}
	if _, ok := exec.(zkvm.FakeExecutor); ok {
		return zkvm.FakeELF(coreName), nil
	}
	path := GuestELFPath(guestDir, coreName)
	elf, err := os.ReadFile(path)
	if err != nil {
		return nil, &errcode.Error{Code: errcode.IO, Message: fmt.Sprintf("reading guest elf %s: %s", path, err)}
	}
	return elf, nil
}

// Run executes the single-shot workflow: resolve the core, optionally
// build the guest, run both sides, compare, and persist.
func Run(ctx context.Context, opts RunOpts) (model.RunLog, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	coreName := resolveCoreName(opts.CorePath)
	if _, ok := core.Lookup(coreName); !ok {
		return model.RunLog{}, &errcode.Error{Code: errcode.UnknownCore, Message: fmt.Sprintf("unknown core %q (from path %q)", coreName, opts.CorePath)}
	}

	if !opts.SkipBuild {
		if err := BuildGuest(ctx, opts.Config.BuildCommand, opts.CorePath); err != nil {
			return model.RunLog{}, err
		}
	}

	rawInput, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return model.RunLog{}, &errcode.Error{Code: errcode.IO, Message: fmt.Sprintf("reading input %s: %s", opts.InputPath, err)}
	}

	return compareOnce(ctx, comparisonInput{
		CoreName:      coreName,
		GuestDir:      opts.CorePath,
		Raw:           rawInput,
		Label:         "",
		BaseInputPath: opts.InputPath,
		Generator:     GeneratorHandWritten,
		Config:        opts.Config,
		Executor:      resolveExecutor(opts),
		Now:           now,
	})
}

// comparisonInput is the shared shape Run and Fuzz both reduce to before
// driving one NativeRun -> ZkvmRun -> Compared -> Persisted transition.
type comparisonInput struct {
	CoreName  string
	GuestDir  string
	Raw       json.RawMessage
	Label     string
	// BaseInputPath is the on-disk input this comparison's Raw is derived
	// from: the hand-written --input file for a single-shot run, or the
	// mutator's declared seed path for a fuzz mutation.
	BaseInputPath string
	Generator     Generator
	Config        config.Merged
	Executor      zkvm.Executor
	Now           func() time.Time
}

// compareOnce drives one full comparison through the orchestrator's state
// machine (Prepared -> NativeRun -> ZkvmRun -> Compared -> Persisted ->
// Reproduced?) and returns the persisted RunLog.
func compareOnce(ctx context.Context, in comparisonInput) (model.RunLog, error) {
	started := in.Now()
	runID := ids.NewRunID(started, in.CoreName)

	elf, err := resolveGuestELF(in.CoreName, in.GuestDir, in.Executor)
	if err != nil {
		return model.RunLog{}, err
	}

	native, err := runner.RunNative(in.CoreName, in.Raw, in.Config.Timeout)
	if err != nil {
		return model.RunLog{}, err
	}

	zkvmResult, err := runner.RunZKVM(in.Executor, in.CoreName, elf, in.Raw, in.Config.Timeout)
	if err != nil {
		return model.RunLog{}, err
	}

	diff := oracle.Compare(native, zkvmResult)
	finished := in.Now()

	log := model.RunLog{
		SchemaVersion: model.SchemaVersionV1,
		RunID:         runID,
		Core:          in.CoreName,
		InputLabel:    in.Label,
		Input:         in.Raw,
		Native:        native,
		Zkvm:          zkvmResult,
		Diff:          diff,
		StartedAt:     started.UTC().Format(time.RFC3339Nano),
		FinishedAt:    finished.UTC().Format(time.RFC3339Nano),
	}

	if err := PersistRunLog(in.Config.ArtifactsDir, log); err != nil {
		return model.RunLog{}, err
	}

	row := SummaryRow{
		RunID: runID, Core: in.CoreName, Input: string(in.Raw),
		NativeStatus: native.Status, ZkvmStatus: zkvmResult.Status,
		Equal: diff.Match, Reason: diff.Reason,
		ElapsedNativeMs: native.ElapsedMs, ElapsedZkvmMs: zkvmResult.ElapsedMs,
		TimingDeltaMs: diff.TimingDeltaMs,
		Generator:     in.Generator,
		BaseSeed:      in.BaseInputPath,
		MutationOps:   in.Label,
	}

	if !diff.Match {
		reproDir, err := PersistReproFolder(in.Config.ArtifactsDir, log)
		if err != nil {
			return model.RunLog{}, err
		}
		row.ReproPath = reproDir
	}

	if err := AppendSummaryRow(in.Config.ArtifactsDir, row); err != nil {
		return model.RunLog{}, err
	}

	return log, nil
}

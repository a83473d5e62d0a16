package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/zkdiff/zkdiff/internal/config"
	"github.com/zkdiff/zkdiff/internal/core"
	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/ids"
	"github.com/zkdiff/zkdiff/internal/mutate"
	"github.com/zkdiff/zkdiff/internal/zkvm"
)

// FuzzOpts configures a batch fuzz run over one or more cores.
type FuzzOpts struct {
	// Cores is the explicit core list; CoresAll overrides it with every
	// registered core, matching the CLI's --cores "all" convention.
	Cores    []string
	CoresAll bool

	GuestRoot string // parent directory of each core's guest subdirectory
	SkipBuild bool

	Config   config.Merged
	Executor zkvm.Executor
	Now      func() time.Time

	// Progress, if set, is invoked after every mutation is compared.
	Progress func(ProgressEvent)
}

// ProgressEvent reports one completed comparison during a fuzz batch.
type ProgressEvent struct {
	Core       string
	Index      int
	Total      int
	MutationOp string
	Diverged   bool
}

// CoreSummary aggregates one core's results within a fuzz batch.
type CoreSummary struct {
	Core              string
	Passed            int
	Diverged          int
	AvgNativeElapsed  float64
	MaxNativeElapsed  uint64
	AvgZkvmElapsed    float64
	MaxZkvmElapsed    uint64
}

// FuzzSummary is the overall result of a batch fuzz run.
type FuzzSummary struct {
	FuzzRunID string
	PerCore   []CoreSummary
	Passed    int
	Diverged  int
}

func resolveCoreList(opts FuzzOpts) ([]string, error) {
	if opts.CoresAll {
		return core.Names(), nil
	}
	if len(opts.Cores) == 0 {
		return nil, &errcode.Error{Code: errcode.Usage, Message: "fuzz requires --cores <name|csv|\"all\">"}
	}
	for _, name := range opts.Cores {
		if _, ok := core.Lookup(name); !ok {
			return nil, &errcode.Error{Code: errcode.UnknownCore, Message: fmt.Sprintf("unknown core %q", name)}
		}
	}
	return opts.Cores, nil
}

// Fuzz runs the batch workflow: for each core, build once, generate the
// deterministic mutation catalogue, compare every mutation sequentially,
// and aggregate a per-core and overall summary. No goroutines run here;
// the strictly-sequential, no-overlap guarantee (§5) is preserved by a
// plain loop.
func Fuzz(ctx context.Context, opts FuzzOpts) (FuzzSummary, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	exec := opts.Executor
	if exec == nil {
		exec = zkvm.FakeExecutor{}
	}

	coreNames, err := resolveCoreList(opts)
	if err != nil {
		return FuzzSummary{}, err
	}

	fuzzRunID := ids.NewFuzzRunID(now())
	summary := FuzzSummary{FuzzRunID: fuzzRunID}

	for _, coreName := range coreNames {
		guestDir := opts.GuestRoot + "/" + coreName
		if !opts.SkipBuild {
			if err := BuildGuest(ctx, opts.Config.BuildCommand, guestDir); err != nil {
				return FuzzSummary{}, err
			}
		}

		baseInputPath := guestDir + "/seed_input.json"
		mutations, err := mutate.Generate(coreName, baseInputPath)
		if err != nil {
			return FuzzSummary{}, &errcode.Error{Code: errcode.BadInput, Message: err.Error()}
		}

		planEntries := make([]MutationPlanEntry, len(mutations))
		for i, m := range mutations {
			planEntries[i] = MutationPlanEntry{MutationOp: m.Label, Base: m.BaseInputPath, Input: m.Raw}
		}
		if err := PersistMutationPlan(opts.Config.ArtifactsDir, fuzzRunID, planEntries); err != nil {
			return FuzzSummary{}, err
		}

		cs := CoreSummary{Core: coreName}
		var sumNative, sumZkvm uint64

		for i, m := range mutations {
			log, err := compareOnce(ctx, comparisonInput{
				CoreName:      coreName,
				GuestDir:      guestDir,
				Raw:           m.Raw,
				Label:         m.Label,
				BaseInputPath: m.BaseInputPath,
				Generator:     GeneratorMutated,
				Config:        opts.Config,
				Executor:      exec,
				Now:           now,
			})
			if err != nil {
				return FuzzSummary{}, err
			}

			if log.Diff.Match {
				cs.Passed++
				summary.Passed++
			} else {
				cs.Diverged++
				summary.Diverged++
			}
			sumNative += log.Native.ElapsedMs
			sumZkvm += log.Zkvm.ElapsedMs
			cs.MaxNativeElapsed = max(cs.MaxNativeElapsed, log.Native.ElapsedMs)
			cs.MaxZkvmElapsed = max(cs.MaxZkvmElapsed, log.Zkvm.ElapsedMs)

			if opts.Progress != nil {
				opts.Progress(ProgressEvent{
					Core: coreName, Index: i + 1, Total: len(mutations),
					MutationOp: m.Label, Diverged: !log.Diff.Match,
				})
			}
		}

		if len(mutations) > 0 {
			cs.AvgNativeElapsed = float64(sumNative) / float64(len(mutations))
			cs.AvgZkvmElapsed = float64(sumZkvm) / float64(len(mutations))
		}
		summary.PerCore = append(summary.PerCore, cs)
	}

	return summary, nil
}

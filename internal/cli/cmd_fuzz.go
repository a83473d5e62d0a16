package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/zkdiff/zkdiff/internal/config"
	"github.com/zkdiff/zkdiff/internal/orchestrator"
)

func printFuzzHelp(w io.Writer) {
	fmt.Fprint(w, `Usage: zkdiff fuzz --cores <name|csv|"all"> [--skip-build] [--config <path>] [--guest-root <path>]

Runs every mutation in the named core's (or every core's) deterministic
catalogue, comparing native and zkVM execution for each.
`)
}

func (r *Runner) runFuzz(args []string) int {
	fs := newFlagSet("fuzz")
	cores := fs.String("cores", "", `core name, comma-separated list, or "all"`)
	skipBuild := fs.Bool("skip-build", false, "skip invoking the build tool")
	configPath := fs.String("config", "", "path to zkdiff.config.yaml")
	guestRoot := fs.String("guest-root", "guest/cores", "parent directory of each core's guest subdirectory")
	quiet := fs.Bool("quiet", false, "suppress per-mutation progress lines")
	help := fs.Bool("help", false, "show this help")

	if err := fs.Parse(args); err != nil {
		return r.failUsage(err.Error())
	}
	if *help {
		printFuzzHelp(r.Stdout)
		return 0
	}
	if strings.TrimSpace(*cores) == "" {
		return r.failUsage(`fuzz requires --cores <name|csv|"all">`)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %s\n", codeConfig, err)
		return 1
	}

	opts := orchestrator.FuzzOpts{
		GuestRoot: *guestRoot,
		SkipBuild: *skipBuild,
		Config:    cfg,
		Executor:  resolveExecutor(cfg),
		Now:       r.Now,
	}
	if strings.TrimSpace(*cores) == "all" {
		opts.CoresAll = true
	} else {
		for _, name := range strings.Split(*cores, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Cores = append(opts.Cores, name)
			}
		}
	}
	if !*quiet {
		opts.Progress = func(ev orchestrator.ProgressEvent) {
			mark := "ok"
			if ev.Diverged {
				mark = "DIVERGED"
			}
			fmt.Fprintf(r.Stdout, "  [%s %d/%d] %s: %s\n", ev.Core, ev.Index, ev.Total, ev.MutationOp, mark)
		}
	}

	summary, err := orchestrator.Fuzz(context.Background(), opts)
	if err != nil {
		return reportHarnessError(r.Stderr, err)
	}

	fmt.Fprintf(r.Stdout, "fuzz %s: %d passed, %d diverged\n", summary.FuzzRunID, summary.Passed, summary.Diverged)
	for _, cs := range summary.PerCore {
		fmt.Fprintf(r.Stdout, "  %-16s passed=%-4d diverged=%-4d avg_native_ms=%.1f avg_zkvm_ms=%.1f max_native_ms=%d max_zkvm_ms=%d\n",
			cs.Core, cs.Passed, cs.Diverged, cs.AvgNativeElapsed, cs.AvgZkvmElapsed, cs.MaxNativeElapsed, cs.MaxZkvmElapsed)
	}
	return 0
}

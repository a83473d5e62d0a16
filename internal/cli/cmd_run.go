package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/zkdiff/zkdiff/internal/config"
	"github.com/zkdiff/zkdiff/internal/errcode"
	"github.com/zkdiff/zkdiff/internal/orchestrator"
	"github.com/zkdiff/zkdiff/internal/zkvm"
)

func printRunHelp(w io.Writer) {
	fmt.Fprint(w, `Usage: zkdiff run --core <path> --input <path> [--skip-build] [--config <path>]

Executes one core natively and in the zkVM, compares the results, and
persists the outcome under artifacts/.
`)
}

func (r *Runner) runRun(args []string) int {
	fs := newFlagSet("run")
	corePath := fs.String("core", "", "path whose last segment names the core")
	inputPath := fs.String("input", "", "path to the JSON input file")
	skipBuild := fs.Bool("skip-build", false, "skip invoking the build tool")
	configPath := fs.String("config", "", "path to zkdiff.config.yaml")
	jsonOut := fs.Bool("json", false, "print the persisted RunLog as JSON")
	help := fs.Bool("help", false, "show this help")

	if err := fs.Parse(args); err != nil {
		return r.failUsage(err.Error())
	}
	if *help {
		printRunHelp(r.Stdout)
		return 0
	}
	if *corePath == "" || *inputPath == "" {
		return r.failUsage("run requires --core and --input")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s: %s\n", codeConfig, err)
		return 1
	}

	log, err := orchestrator.Run(context.Background(), orchestrator.RunOpts{
		CorePath:  *corePath,
		InputPath: *inputPath,
		SkipBuild: *skipBuild,
		Config:    cfg,
		Executor:  resolveExecutor(cfg),
		Now:       r.Now,
	})
	if err != nil {
		return reportHarnessError(r.Stderr, err)
	}

	if *jsonOut {
		enc := json.NewEncoder(r.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(log)
		return 0
	}

	fmt.Fprintf(r.Stdout, "run %s: core=%s native=%s zkvm=%s equal=%t\n",
		log.RunID, log.Core, log.Native.Status, log.Zkvm.Status, log.Diff.Match)
	if !log.Diff.Match {
		fmt.Fprintf(r.Stdout, "  reason: %s\n", log.Diff.Reason)
	}
	return 0
}

func resolveExecutor(cfg config.Merged) zkvm.Executor {
	var base zkvm.Executor
	switch cfg.ZkvmBackend {
	case "subprocess":
		base = zkvm.NewSubprocessExecutor(cfg.ZkvmCommand, cfg.ArtifactsDir+"/.scratch")
	default:
		base = zkvm.FakeExecutor{}
	}
	if cfg.FaultInjectCore == "" {
		return base
	}
	return &zkvm.FaultInjectingExecutor{Inner: base, Slot: cfg.FaultInjectSlot}
}

func reportHarnessError(w io.Writer, err error) int {
	var herr *errcode.Error
	if asErrcode(err, &herr) {
		fmt.Fprintf(w, "%s\n", herr.Error())
		return 1
	}
	fmt.Fprintf(w, "%s: %s\n", codeIO, err)
	return 1
}

func asErrcode(err error, target **errcode.Error) bool {
	for err != nil {
		if e, ok := err.(*errcode.Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

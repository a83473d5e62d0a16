// Package cli implements the zkdiff command-line surface: subcommand
// dispatch, flag parsing, and console progress/result reporting.
package cli

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Runner dispatches zkdiff's subcommands. Stdout/Stderr are injectable so
// tests can assert on output without touching the real console.
type Runner struct {
	Version string
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run dispatches args[0] to the matching subcommand and returns a process
// exit code. Per §6.4, a nonzero code means the harness itself failed;
// divergences found by a comparison are not failures.
func (r *Runner) Run(args []string) int {
	if len(args) == 0 {
		return r.failUsage("missing command")
	}

	switch args[0] {
	case "run":
		return r.runRun(args[1:])
	case "fuzz":
		return r.runFuzz(args[1:])
	case "version":
		fmt.Fprintf(r.Stdout, "zkdiff %s\n", r.Version)
		return 0
	case "-h", "--help", "help":
		printTopHelp(r.Stdout)
		return 0
	default:
		fmt.Fprintf(r.Stderr, codeUsage+": unknown command %q\n", args[0])
		return 2
	}
}

func (r *Runner) failUsage(msg string) int {
	fmt.Fprintf(r.Stderr, codeUsage+": %s\n", msg)
	printTopHelp(r.Stderr)
	return 2
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func printTopHelp(w io.Writer) {
	fmt.Fprint(w, `zkdiff — differential fuzzing harness for zkVMs

Usage:
  zkdiff run --core <path> --input <path> [--skip-build]
  zkdiff fuzz --cores <name|csv|"all"> [--skip-build]
  zkdiff version
`)
}

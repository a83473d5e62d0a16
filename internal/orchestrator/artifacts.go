package orchestrator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/zkdiff/zkdiff/internal/model"
	"github.com/zkdiff/zkdiff/internal/store"
)

// summaryHeader is written exactly once per CSV file, in column order, per
// the persisted-artifacts layout (no corpus example imports encoding/csv;
// this is the simplest format that satisfies the "append one row, flush,
// close" shared-resource rule, so it is built on the standard library
// rather than a third-party CSV/columnar library).
var summaryHeader = []string{
	"run_id", "core", "input", "native_status", "zkvm_status", "equal", "reason",
	"elapsed_native_ms", "elapsed_zkvm_ms", "timing_delta_ms", "repro_path",
	"generator", "base_seed", "mutation_ops", "rng_seed",
	"zkvm_target", "zkvm_version", "toolchain_version",
}

// Generator identifies the provenance of an input: hand-written (single-shot
// `run`) or generated by the mutator (batch `fuzz`).
type Generator string

const (
	GeneratorHandWritten Generator = "hand_written"
	GeneratorMutated     Generator = "mutated"
)

// SummaryRow is one line of artifacts/summary.csv.
type SummaryRow struct {
	RunID            string
	Core             string
	Input            string
	NativeStatus     model.Status
	ZkvmStatus       model.Status
	Equal            bool
	Reason           string
	ElapsedNativeMs  uint64
	ElapsedZkvmMs    uint64
	TimingDeltaMs    uint64
	ReproPath        string
	Generator        Generator
	BaseSeed         string
	MutationOps      string
	RngSeed          string
	ZkvmTarget       string
	ZkvmVersion      string
	ToolchainVersion string
}

func (r SummaryRow) toCSVRecord() []string {
	return []string{
		r.RunID, r.Core, r.Input, r.NativeStatus.String(), r.ZkvmStatus.String(),
		strconv.FormatBool(r.Equal), r.Reason,
		strconv.FormatUint(r.ElapsedNativeMs, 10), strconv.FormatUint(r.ElapsedZkvmMs, 10),
		strconv.FormatUint(r.TimingDeltaMs, 10), r.ReproPath,
		string(r.Generator), r.BaseSeed, r.MutationOps, r.RngSeed,
		r.ZkvmTarget, r.ZkvmVersion, r.ToolchainVersion,
	}
}

// AppendSummaryRow opens the CSV file, writes the header if the file is new,
// appends one row, flushes, and closes — matching §5's "open, write one row,
// flush, close" rule so external viewers can tail the file safely.
func AppendSummaryRow(artifactsDir string, row SummaryRow) error {
	if err := os.MkdirAll(artifactsDir, 0o755); err != nil {
		return fmt.Errorf("orchestrator: creating artifacts dir: %w", err)
	}
	path := filepath.Join(artifactsDir, "summary.csv")

	needsHeader := true
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		needsHeader = false
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("orchestrator: opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write(summaryHeader); err != nil {
			return fmt.Errorf("orchestrator: writing csv header: %w", err)
		}
	}
	if err := w.Write(row.toCSVRecord()); err != nil {
		return fmt.Errorf("orchestrator: writing csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("orchestrator: flushing csv: %w", err)
	}
	return f.Sync()
}

// PersistRunLog writes artifacts/<run_id>.json atomically.
func PersistRunLog(artifactsDir string, log model.RunLog) error {
	path := filepath.Join(artifactsDir, log.RunID+".json")
	return store.WriteJSONAtomic(path, log)
}

// PersistReproFolder writes artifacts/<run_id>/{input.json,run_log.json,repro.sh}
// on divergence, so a reported bug carries everything needed to reproduce it.
func PersistReproFolder(artifactsDir string, log model.RunLog) (string, error) {
	dir := filepath.Join(artifactsDir, log.RunID)

	if err := store.WriteFileAtomic(filepath.Join(dir, "input.json"), log.Input); err != nil {
		return "", fmt.Errorf("orchestrator: writing repro input: %w", err)
	}
	logBytes, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("orchestrator: marshaling repro run log: %w", err)
	}
	if err := store.WriteFileAtomic(filepath.Join(dir, "run_log.json"), logBytes); err != nil {
		return "", fmt.Errorf("orchestrator: writing repro run log: %w", err)
	}

	script := fmt.Sprintf("#!/bin/sh\nset -eu\nexec zkdiff run --core %s --input %s\n",
		shQuote(log.Core), shQuote(filepath.Join(dir, "input.json")))
	scriptPath := filepath.Join(dir, "repro.sh")
	if err := store.WriteFileAtomic(scriptPath, []byte(script)); err != nil {
		return "", fmt.Errorf("orchestrator: writing repro.sh: %w", err)
	}
	if err := os.Chmod(scriptPath, 0o755); err != nil {
		return "", fmt.Errorf("orchestrator: marking repro.sh executable: %w", err)
	}

	return dir, nil
}

// PersistMutationPlan writes artifacts/mutations/<fuzz_run_id>/{plan.json,input_<k>.json}.
func PersistMutationPlan(artifactsDir, fuzzRunID string, entries []MutationPlanEntry) error {
	dir := filepath.Join(artifactsDir, "mutations", fuzzRunID)
	if err := store.WriteJSONAtomic(filepath.Join(dir, "plan.json"), entries); err != nil {
		return fmt.Errorf("orchestrator: writing mutation plan: %w", err)
	}
	for i, e := range entries {
		if err := store.WriteFileAtomic(filepath.Join(dir, fmt.Sprintf("input_%d.json", i)), e.Input); err != nil {
			return fmt.Errorf("orchestrator: writing mutated input %d: %w", i, err)
		}
	}
	return nil
}

// MutationPlanEntry is one row of artifacts/mutations/<fuzz_run_id>/plan.json.
type MutationPlanEntry struct {
	MutationOp string          `json:"mutation_op"`
	Base       string          `json:"base"`
	Input      json.RawMessage `json:"-"`
}

func shQuote(s string) string {
	return "'" + escapeSingleQuotes(s) + "'"
}

func escapeSingleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, '\'', '\\', '\'', '\'')
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}

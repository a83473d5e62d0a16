package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func newTestRunner() (*Runner, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := &Runner{Version: "0.0.0-test", Now: fixedNow, Stdout: &stdout, Stderr: &stderr}
	return r, &stdout, &stderr
}

func TestRun_NoArgsIsUsageError(t *testing.T) {
	r, _, stderr := newTestRunner()
	code := r.Run(nil)
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), codeUsage)
}

func TestRun_UnknownCommandIsUsageError(t *testing.T) {
	r, _, stderr := newTestRunner()
	code := r.Run([]string{"bogus"})
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "unknown command")
}

func TestRun_Version(t *testing.T) {
	r, stdout, _ := newTestRunner()
	code := r.Run([]string{"version"})
	require.Equal(t, 0, code)
	require.Equal(t, "zkdiff 0.0.0-test\n", stdout.String())
}

func TestRun_Help(t *testing.T) {
	r, stdout, _ := newTestRunner()
	code := r.Run([]string{"--help"})
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "zkdiff run")
}

func TestRunSubcommand_MissingFlagsIsUsageError(t *testing.T) {
	r, _, stderr := newTestRunner()
	code := r.Run([]string{"run", "--core", "guest/cores/fib"})
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "requires --core and --input")
}

func TestRunSubcommand_MatchingCorePrintsEqualLine(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZKDIFF_ARTIFACTS_DIR", filepath.Join(dir, "artifacts"))
	inputPath := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"n":10}`), 0o644))

	r, stdout, _ := newTestRunner()
	code := r.Run([]string{
		"run",
		"--core", "guest/cores/fib",
		"--input", inputPath,
		"--skip-build",
		"--config", filepath.Join(dir, "missing.yaml"),
	})
	require.Equal(t, 0, code, stdout.String())
	require.Contains(t, stdout.String(), "core=fib")
	require.Contains(t, stdout.String(), "equal=true")
}

func TestRunSubcommand_JSONOutputIsAValidRunLog(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZKDIFF_ARTIFACTS_DIR", filepath.Join(dir, "artifacts"))
	inputPath := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{"n":5}`), 0o644))

	r, stdout, _ := newTestRunner()
	code := r.Run([]string{
		"run", "--core", "guest/cores/fib", "--input", inputPath,
		"--skip-build", "--json", "--config", filepath.Join(dir, "missing.yaml"),
	})
	require.Equal(t, 0, code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	require.Equal(t, "fib", decoded["core"])
}

func TestRunSubcommand_UnknownCoreReportsErrorCode(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZKDIFF_ARTIFACTS_DIR", filepath.Join(dir, "artifacts"))
	inputPath := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(inputPath, []byte(`{}`), 0o644))

	r, _, stderr := newTestRunner()
	code := r.Run([]string{
		"run", "--core", "guest/cores/nope", "--input", inputPath,
		"--skip-build", "--config", filepath.Join(dir, "missing.yaml"),
	})
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), codeUnknownCore)
}

func TestFuzzSubcommand_MissingCoresIsUsageError(t *testing.T) {
	r, _, stderr := newTestRunner()
	code := r.Run([]string{"fuzz"})
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "requires --cores")
}

func TestFuzzSubcommand_SingleCoreReportsSummary(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZKDIFF_ARTIFACTS_DIR", filepath.Join(dir, "artifacts"))
	r, stdout, _ := newTestRunner()
	code := r.Run([]string{
		"fuzz", "--cores", "fib", "--skip-build", "--quiet",
		"--config", filepath.Join(dir, "missing.yaml"),
		"--guest-root", "guest/cores",
	})
	require.Equal(t, 0, code, stdout.String())
	require.Contains(t, stdout.String(), "fib")
	require.Contains(t, stdout.String(), "passed=")
}

// Package config loads harness configuration from an optional YAML file,
// merged with environment variables and (at the call site) CLI flags, in
// that precedence order: flags > env > file > built-in default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "zkdiff.config.yaml"

// FileV1 is the on-disk shape of an optional zkdiff.config.yaml.
type FileV1 struct {
	ArtifactsDir      string `yaml:"artifacts_dir"`
	TimeoutMs         int    `yaml:"timeout_ms"`
	ZkvmBackend       string `yaml:"zkvm_backend"` // "fake" or "subprocess"
	ZkvmCommand       string `yaml:"zkvm_command"`
	BuildCommand      string `yaml:"build_command"`
	FaultInjectCore   string `yaml:"fault_injection_core"`
	FaultInjectSlot   int    `yaml:"fault_injection_slot"`
}

// Merged is the fully-resolved configuration the orchestrator and CLI act
// on, along with a Source for operator diagnostics: the name of the last
// layer (default, file path, or env variable) that set a value.
type Merged struct {
	ArtifactsDir string
	Timeout      time.Duration
	ZkvmBackend  string
	ZkvmCommand  string
	BuildCommand string

	FaultInjectCore string
	FaultInjectSlot int

	Source string
}

func defaults() Merged {
	return Merged{
		ArtifactsDir:    "artifacts",
		Timeout:         5 * time.Second,
		ZkvmBackend:     "fake",
		ZkvmCommand:     "sp1-exec",
		BuildCommand:    "cargo",
		FaultInjectSlot: -1,
		Source:          "default",
	}
}

// Load reads path if present (DefaultConfigPath if path is empty and that
// file exists), applies ZKDIFF_* environment overrides, and returns the
// merged result. A missing file, at the default or a given path, is not an
// error: defaults stand.
func Load(path string) (Merged, error) {
	res := defaults()

	if path == "" {
		path = DefaultConfigPath
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		var f FileV1
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return Merged{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		applyFile(&res, f)
		res.Source = path
	case os.IsNotExist(err):
		// no config file; defaults stand.
	default:
		return Merged{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	applyEnv(&res)
	return res, nil
}

func applyFile(res *Merged, f FileV1) {
	if strings.TrimSpace(f.ArtifactsDir) != "" {
		res.ArtifactsDir = f.ArtifactsDir
	}
	if f.TimeoutMs > 0 {
		res.Timeout = time.Duration(f.TimeoutMs) * time.Millisecond
	}
	if strings.TrimSpace(f.ZkvmBackend) != "" {
		res.ZkvmBackend = f.ZkvmBackend
	}
	if strings.TrimSpace(f.ZkvmCommand) != "" {
		res.ZkvmCommand = f.ZkvmCommand
	}
	if strings.TrimSpace(f.BuildCommand) != "" {
		res.BuildCommand = f.BuildCommand
	}
	if strings.TrimSpace(f.FaultInjectCore) != "" {
		res.FaultInjectCore = f.FaultInjectCore
		res.FaultInjectSlot = f.FaultInjectSlot
	}
}

func applyEnv(res *Merged) {
	if v := strings.TrimSpace(os.Getenv("ZKDIFF_ARTIFACTS_DIR")); v != "" {
		res.ArtifactsDir = v
		res.Source = "env:ZKDIFF_ARTIFACTS_DIR"
	}
	if v := strings.TrimSpace(os.Getenv("ZKDIFF_TIMEOUT_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			res.Timeout = time.Duration(ms) * time.Millisecond
			res.Source = "env:ZKDIFF_TIMEOUT_MS"
		}
	}
	if v := strings.TrimSpace(os.Getenv("ZKDIFF_ZKVM_BACKEND")); v != "" {
		res.ZkvmBackend = v
		res.Source = "env:ZKDIFF_ZKVM_BACKEND"
	}
}

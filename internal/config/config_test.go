package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "artifacts", cfg.ArtifactsDir)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, "default", cfg.Source)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zkdiff.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("artifacts_dir: custom-artifacts\ntimeout_ms: 2000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "custom-artifacts", cfg.ArtifactsDir)
	require.Equal(t, 2*time.Second, cfg.Timeout)
	require.Equal(t, path, cfg.Source)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zkdiff.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("artifacts_dir: custom-artifacts\n"), 0o644))

	t.Setenv("ZKDIFF_ARTIFACTS_DIR", "env-artifacts")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "env-artifacts", cfg.ArtifactsDir)
	require.Equal(t, "env:ZKDIFF_ARTIFACTS_DIR", cfg.Source)
}

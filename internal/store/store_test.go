package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteJSONAtomic_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "result.json")

	require.NoError(t, WriteJSONAtomic(path, map[string]int{"a": 1}))
	require.NoError(t, WriteJSONAtomic(path, map[string]int{"a": 2}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"a": 2`)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no leftover temp files")
}

func TestWriteFileAtomic_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "repro.sh")

	require.NoError(t, WriteFileAtomic(path, []byte("#!/bin/sh\n")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "#!/bin/sh\n", string(raw))
}

func TestCanonicalJSON_StableMapKeyOrder(t *testing.T) {
	v := map[string]int{"z": 1, "a": 2, "m": 3}
	b, err := CanonicalJSON(v)
	require.NoError(t, err)
	require.Equal(t, `{"a":2,"m":3,"z":1}`, string(b))
}

func TestCountChildDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "one"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "two"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))

	n, err := CountChildDirs(dir)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestBoundedBuffer_TracksTruncation(t *testing.T) {
	b := NewBoundedBuffer(4)
	_, _ = b.Write([]byte("hello world"))

	text, total, truncated := b.Snapshot()
	require.Equal(t, "hell", text)
	require.EqualValues(t, 11, total)
	require.True(t, truncated)
}

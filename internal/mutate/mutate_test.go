package mutate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkdiff/zkdiff/internal/core"
)

func TestGenerate_EveryRegisteredCoreHasACatalogue(t *testing.T) {
	for _, name := range core.Names() {
		t.Run(name, func(t *testing.T) {
			muts, err := Generate(name, "guest/cores/"+name+"/seed_input.json")
			require.NoError(t, err)
			require.NotEmpty(t, muts)

			seen := make(map[string]bool, len(muts))
			for _, m := range muts {
				require.False(t, seen[m.Label], "duplicate tag %q", m.Label)
				seen[m.Label] = true
				require.Equal(t, "guest/cores/"+name+"/seed_input.json", m.BaseInputPath)
			}
		})
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	a, err := Generate("arithmetic", "guest/cores/arithmetic/seed_input.json")
	require.NoError(t, err)
	b, err := Generate("arithmetic", "guest/cores/arithmetic/seed_input.json")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_UnknownCoreErrors(t *testing.T) {
	_, err := Generate("nope", "")
	require.Error(t, err)
}

func TestCalculateSizeStats_IoEcho(t *testing.T) {
	muts, err := Generate("io_echo", "guest/cores/io_echo/seed_input.json")
	require.NoError(t, err)

	stats := CalculateSizeStats(muts)
	require.GreaterOrEqual(t, stats.Count, 27)
	require.Equal(t, 0, stats.MinSize)
	require.Equal(t, 1048576, stats.MaxSize)
}

func TestGenerate_TimeoutIncludesInfiniteLoopTrigger(t *testing.T) {
	muts, err := Generate("timeout_test", "guest/cores/timeout_test/seed_input.json")
	require.NoError(t, err)
	require.Contains(t, muts[0].Label, "iteration_variation:0")
}

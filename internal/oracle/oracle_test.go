package oracle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkdiff/zkdiff/internal/model"
)

func TestCompare_MatchingOK(t *testing.T) {
	native := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1), model.U32(2)}, ElapsedMs: 10}
	zkvm := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1), model.U32(2)}, ElapsedMs: 14}

	d := Compare(native, zkvm)
	require.True(t, d.Match)
	require.Empty(t, d.Reason)
	require.EqualValues(t, 4, d.TimingDeltaMs)
}

func TestCompare_StatusMismatch(t *testing.T) {
	native := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1)}}
	zkvm := model.RunResult{Status: model.StatusPanic}

	d := Compare(native, zkvm)
	require.False(t, d.Match)
	require.Contains(t, d.Reason, "status mismatch")
}

func TestCompare_CommitMismatch(t *testing.T) {
	native := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1), model.U32(2)}}
	zkvm := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1), model.U32(99)}}

	d := Compare(native, zkvm)
	require.False(t, d.Match)
	require.Equal(t, 1, d.MismatchSlot)
	require.Contains(t, d.Reason, "commit[1]")
}

func TestCompare_BothPanicIsEqualRegardlessOfElapsed(t *testing.T) {
	native := model.RunResult{Status: model.StatusPanic, ElapsedMs: 0}
	zkvm := model.RunResult{Status: model.StatusPanic, ElapsedMs: 850}

	d := Compare(native, zkvm)
	require.True(t, d.Match)
	require.EqualValues(t, 850, d.TimingDeltaMs)
}

func TestCompare_CommitCountMismatch(t *testing.T) {
	native := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1)}}
	zkvm := model.RunResult{Status: model.StatusOK, Commits: []model.Value{model.U32(1), model.U32(2)}}

	d := Compare(native, zkvm)
	require.False(t, d.Match)
	require.Contains(t, d.Reason, "commit count mismatch")
}

package ids

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRunID_FormatAndTieBreak(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC)

	first := NewRunID(now, "fib")
	require.Equal(t, "20260801_123000_fib", first)
	require.True(t, IsValidRunID(first))

	second := NewRunID(now, "fib")
	require.Equal(t, "20260801_123000_fib_1", second)
	require.True(t, IsValidRunID(second))
	require.NotEqual(t, first, second)
}

func TestNewRunID_TieBreakIsScopedPerCoreNotGlobal(t *testing.T) {
	now := time.Date(2026, 8, 1, 13, 45, 0, 0, time.UTC)

	fibFirst := NewRunID(now, "fib")
	require.Equal(t, "20260801_134500_fib", fibFirst)

	// A different core at the same timestamp has never collided before and
	// must not inherit fib's tie-break counter.
	arithmeticFirst := NewRunID(now, "arithmetic")
	require.Equal(t, "20260801_134500_arithmetic", arithmeticFirst)

	fibSecond := NewRunID(now, "fib")
	require.Equal(t, "20260801_134500_fib_1", fibSecond)

	// Interleaving arithmetic again should still be on its own counter, not
	// fib's, and not jump straight to a suffix just because fib collided.
	arithmeticSecond := NewRunID(now, "arithmetic")
	require.Equal(t, "20260801_134500_arithmetic_1", arithmeticSecond)
}

func TestNewRunID_DifferentTimestampNeverSuffixed(t *testing.T) {
	a := NewRunID(time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC), "io_echo")
	b := NewRunID(time.Date(2026, 8, 1, 14, 0, 1, 0, time.UTC), "io_echo")
	require.Equal(t, "20260801_140000_io_echo", a)
	require.Equal(t, "20260801_140001_io_echo", b)
}

func TestSanitizeComponent(t *testing.T) {
	require.Equal(t, "arithmetic", SanitizeComponent("  Arithmetic  "))
	require.Equal(t, "io_echo", SanitizeComponent("io-echo"))
	require.Equal(t, "a_b", SanitizeComponent("a///b"))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkdiff/zkdiff/internal/model"
)

func runCore(t *testing.T, name, rawInput string) []model.Value {
	t.Helper()
	c, ok := Lookup(name)
	require.True(t, ok, "core %q must be registered", name)

	decoded, err := c.Decode([]byte(rawInput))
	require.NoError(t, err)

	return c.Commit(c.Run(decoded))
}

func TestSeedSuite(t *testing.T) {
	cases := []struct {
		name  string
		core  string
		input string
		want  []model.Value
	}{
		{"fib_10", "fib", `{"n":10}`, []model.Value{model.U32(10), model.U32(55), model.U32(89)}},
		{"fib_0", "fib", `{"n":0}`, []model.Value{model.U32(0), model.U32(0), model.U32(1)}},
		{
			"arithmetic_overflow_add", "arithmetic",
			`{"a":4294967295,"b":1,"op":"add"}`,
			[]model.Value{model.U32(0), model.Bool(true)},
		},
		{
			"io_echo_empty", "io_echo",
			`{"data":""}`,
			[]model.Value{model.U32(0), model.U32(0), model.U32(0)},
		},
		{
			"io_echo_single", "io_echo",
			`{"data":"Kg=="}`, // base64("\x2a") == 42
			[]model.Value{model.U32(1), model.U32(43), model.U32(43)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := runCore(t, tc.core, tc.input)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestArithmetic_DivByZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		runCore(t, "arithmetic", `{"a":1,"b":0,"op":"div"}`)
	})
}

func TestArithmetic_UnknownOpPanics(t *testing.T) {
	require.Panics(t, func() {
		runCore(t, "arithmetic", `{"a":1,"b":1,"op":"modulo"}`)
	})
}

func TestSimpleStruct_EmojiByteVsRuneCount(t *testing.T) {
	// "\xF0\x9F\xA6\x80 Rust" == crab emoji (4 bytes, 1 rune) + " Rust" (5 bytes, 5 runes)
	got := runCore(t, "simple_struct", `{"field1":1,"field2":"🦀 Rust","field3":true}`)
	want := []model.Value{model.U32(1), model.U32(9), model.U32(6), model.Bool(true)}
	require.Equal(t, want, got)
}

func TestPanicTest_DefaultAndCustomMessage(t *testing.T) {
	require.PanicsWithValue(t, "intentional panic for testing", func() {
		runCore(t, "panic_test", `{"should_panic":true}`)
	})
	require.PanicsWithValue(t, "boom", func() {
		runCore(t, "panic_test", `{"should_panic":true,"panic_msg":"boom"}`)
	})
}

func TestPanicTest_NoPanic(t *testing.T) {
	got := runCore(t, "panic_test", `{"should_panic":false}`)
	require.Equal(t, []model.Value{model.U32(0), model.U32(0)}, got)
}

func TestTimeoutTest_FiniteIterations(t *testing.T) {
	got := runCore(t, "timeout_test", `{"iterations":100}`)
	require.Equal(t, []model.Value{model.U64(100)}, got)
}

func TestNames_SortedAndComplete(t *testing.T) {
	require.Equal(t, []string{
		"arithmetic", "fib", "io_echo", "panic_test", "simple_struct", "timeout_test",
	}, Names())
}

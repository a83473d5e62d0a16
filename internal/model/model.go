// Package model defines the data shapes shared by every component of the
// harness: the outcome of a single execution, the result of comparing two
// outcomes, a generated mutation, and the persisted log of a run.
package model

import (
	"encoding/json"
	"fmt"
)

// Status classifies how a core execution ended. Only OK carries commits;
// Panic and Timeout always carry an empty commit slice.
type Status int

const (
	StatusOK Status = iota
	StatusPanic
	StatusTimeout
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusPanic:
		return "PANIC"
	case StatusTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw {
	case "OK":
		*s = StatusOK
	case "PANIC":
		*s = StatusPanic
	case "TIMEOUT":
		*s = StatusTimeout
	default:
		return fmt.Errorf("model: unknown status %q", raw)
	}
	return nil
}

// ValueKind names the primitive type carried by a single committed scalar.
type ValueKind string

const (
	KindU32 ValueKind = "u32"
	KindU64 ValueKind = "u64"
)

// Value is one slot of a commit stream: a tagged primitive scalar. bool and
// Option<u8> are both encoded as u32 at this layer per the commit stream's
// single-type-family rule; the tag stays u32 so comparison never needs to
// reconcile mismatched Kinds for values that both sides encode identically.
type Value struct {
	Kind ValueKind
	U32  uint32
	U64  uint64
}

func U32(v uint32) Value { return Value{Kind: KindU32, U32: v} }
func U64(v uint64) Value { return Value{Kind: KindU64, U64: v} }

// Bool encodes a boolean as the u32 commit convention: 1 for true, 0 for false.
func Bool(v bool) Value {
	if v {
		return U32(1)
	}
	return U32(0)
}

// OptionU8 encodes an optional byte as the u32 convention: 0 for None,
// otherwise 1 plus the byte's value, so the codomain is 0..=256 and None
// never collides with Some(0).
func OptionU8(v *byte) Value {
	if v == nil {
		return U32(0)
	}
	return U32(1 + uint32(*v))
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindU32:
		return v.U32 == o.U32
	case KindU64:
		return v.U64 == o.U64
	default:
		return false
	}
}

type jsonValue struct {
	Kind  ValueKind `json:"kind"`
	Value uint64    `json:"value"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	jv := jsonValue{Kind: v.Kind}
	switch v.Kind {
	case KindU32:
		jv.Value = uint64(v.U32)
	case KindU64:
		jv.Value = v.U64
	}
	return json.Marshal(jv)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(b, &jv); err != nil {
		return err
	}
	switch jv.Kind {
	case KindU32:
		*v = U32(uint32(jv.Value))
	case KindU64:
		*v = U64(jv.Value)
	default:
		return fmt.Errorf("model: unknown value kind %q", jv.Kind)
	}
	return nil
}

func (v Value) String() string {
	switch v.Kind {
	case KindU32:
		return fmt.Sprintf("u32(%d)", v.U32)
	case KindU64:
		return fmt.Sprintf("u64(%d)", v.U64)
	default:
		return "invalid"
	}
}

// RunResult is the observable outcome of running one core, on one side
// (native or zkVM), with one input.
type RunResult struct {
	Status      Status         `json:"status"`
	Commits     []Value        `json:"commits"`
	CycleCount  uint64         `json:"cycle_count,omitempty"`
	ElapsedMs   uint64         `json:"elapsed_ms"`
	PanicMsg    string         `json:"panic_msg,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// Diff is the oracle's verdict on a pair of RunResults.
type Diff struct {
	Match         bool     `json:"equal"`
	NativeStatus  Status   `json:"native_status"`
	ZkvmStatus    Status   `json:"zkvm_status"`
	Reason        string   `json:"reason,omitempty"`
	MismatchSlot  int      `json:"mismatch_slot,omitempty"`
	NativeCommits []Value  `json:"native_commits,omitempty"`
	ZkvmCommits   []Value  `json:"zkvm_commits,omitempty"`
	TimingDeltaMs uint64   `json:"timing_delta_ms"`
}

// MutatedInput is one input generated by the mutator for a core, tagged
// with a human-readable label describing the mutation strategy that
// produced it (e.g. "boundary_values:4294967295_1_op_add") and the base input path
// it was derived from, for reproducibility.
type MutatedInput struct {
	Label         string          `json:"label"`
	Raw           json.RawMessage `json:"raw"`
	BaseInputPath string          `json:"base_input_path"`
}

// RunLog is the full record of a single comparison, persisted as
// artifacts/<run_id>.json.
type RunLog struct {
	SchemaVersion int            `json:"schema_version"`
	RunID         string         `json:"run_id"`
	Core          string         `json:"core"`
	InputLabel    string         `json:"input_label,omitempty"`
	Input         json.RawMessage `json:"input"`
	Native        RunResult      `json:"native"`
	Zkvm          RunResult      `json:"zkvm"`
	Diff          Diff           `json:"diff"`
	StartedAt     string         `json:"started_at"`
	FinishedAt    string         `json:"finished_at"`
}

const SchemaVersionV1 = 1

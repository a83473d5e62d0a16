package core

import (
	"encoding/json"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

type timeoutTestInput struct {
	Iterations uint64 `json:"iterations"`
}

type timeoutTestOutput struct {
	Completed uint64
}

type timeoutTestCore struct{}

func (timeoutTestCore) Name() string             { return "timeout_test" }
func (timeoutTestCore) ExpectedCommitCount() int { return 1 }
func (timeoutTestCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU64}
}

func (timeoutTestCore) Decode(raw []byte) (any, error) {
	var in timeoutTestInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("timeout_test: decode: %w", err)
	}
	return in, nil
}

// Run spins forever when Iterations is zero, by design, to force a runner's
// timeout path. The loop body is intentionally non-trivial so the Go
// compiler cannot prove it has no side effects and eliminate it.
func (timeoutTestCore) Run(input any) any {
	in := input.(timeoutTestInput)
	var sum uint64
	if in.Iterations == 0 {
		for i := uint64(0); ; i++ {
			sum += i
			if sum == 0 && i > 1<<62 {
				break // unreachable; keeps sum live without ever actually returning.
			}
		}
	}
	for i := uint64(0); i < in.Iterations; i++ {
		sum += i
	}
	return timeoutTestOutput{Completed: in.Iterations}
}

func (timeoutTestCore) Commit(output any) []model.Value {
	out := output.(timeoutTestOutput)
	return []model.Value{model.U64(out.Completed)}
}

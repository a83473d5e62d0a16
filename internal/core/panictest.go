package core

import (
	"encoding/json"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

type panicTestInput struct {
	ShouldPanic bool    `json:"should_panic"`
	PanicMsg    *string `json:"panic_msg,omitempty"`
}

type panicTestOutput struct {
	ShouldPanicU32 uint32
	StatusCode     uint32
}

type panicTestCore struct{}

func (panicTestCore) Name() string             { return "panic_test" }
func (panicTestCore) ExpectedCommitCount() int { return 2 }
func (panicTestCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU32, model.KindU32}
}

func (panicTestCore) Decode(raw []byte) (any, error) {
	var in panicTestInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("panic_test: decode: %w", err)
	}
	return in, nil
}

func (panicTestCore) Run(input any) any {
	in := input.(panicTestInput)
	if in.ShouldPanic {
		msg := "intentional panic for testing"
		if in.PanicMsg != nil {
			msg = *in.PanicMsg
		}
		panic(msg)
	}
	return panicTestOutput{ShouldPanicU32: 0, StatusCode: 0}
}

func (panicTestCore) Commit(output any) []model.Value {
	out := output.(panicTestOutput)
	return []model.Value{model.U32(out.ShouldPanicU32), model.U32(out.StatusCode)}
}

package core

import (
	"encoding/json"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

type arithmeticInput struct {
	A  uint32 `json:"a"`
	B  uint32 `json:"b"`
	Op string `json:"op"`
}

type arithmeticOutput struct {
	Result     uint32
	Overflowed bool
}

type arithmeticCore struct{}

func (arithmeticCore) Name() string             { return "arithmetic" }
func (arithmeticCore) ExpectedCommitCount() int { return 2 }
func (arithmeticCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU32, model.KindU32}
}

func (arithmeticCore) Decode(raw []byte) (any, error) {
	var in arithmeticInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("arithmetic: decode: %w", err)
	}
	return in, nil
}

// Run performs wrapping unsigned arithmetic and reports whether the
// mathematical result did not fit in 32 bits. Division by zero and an
// unrecognized operator both abort via panic, matching the guest core this
// was ported from.
func (arithmeticCore) Run(input any) any {
	in := input.(arithmeticInput)
	switch in.Op {
	case "add":
		result := in.A + in.B
		return arithmeticOutput{Result: result, Overflowed: result < in.A}
	case "sub":
		result := in.A - in.B
		return arithmeticOutput{Result: result, Overflowed: in.B > in.A}
	case "mul":
		wide := uint64(in.A) * uint64(in.B)
		return arithmeticOutput{Result: uint32(wide), Overflowed: wide > 0xFFFFFFFF}
	case "div":
		if in.B == 0 {
			panic("division by zero")
		}
		return arithmeticOutput{Result: in.A / in.B, Overflowed: false}
	default:
		panic(fmt.Sprintf("unknown operation: %s", in.Op))
	}
}

func (arithmeticCore) Commit(output any) []model.Value {
	out := output.(arithmeticOutput)
	return []model.Value{model.U32(out.Result), model.Bool(out.Overflowed)}
}

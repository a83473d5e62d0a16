package core

import (
	"encoding/json"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

type fibInput struct {
	N uint32 `json:"n"`
}

type fibOutput struct {
	N uint32
	A uint32
	B uint32
}

type fibCore struct{}

func (fibCore) Name() string              { return "fib" }
func (fibCore) ExpectedCommitCount() int { return 3 }
func (fibCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU32, model.KindU32, model.KindU32}
}

func (fibCore) Decode(raw []byte) (any, error) {
	var in fibInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("fib: decode: %w", err)
	}
	return in, nil
}

// Run computes the n'th term of a modulus-7919 Fibonacci sequence. The
// modulus keeps values in u32 range indefinitely and is load-bearing: any
// divergence in how the two sides reduce mod 7919 is exactly the class of
// bug this core exists to surface.
func (fibCore) Run(input any) any {
	in := input.(fibInput)
	var a, b uint32 = 0, 1
	for i := uint32(0); i < in.N; i++ {
		c := (a + b) % 7919
		a = b
		b = c
	}
	return fibOutput{N: in.N, A: a, B: b}
}

func (fibCore) Commit(output any) []model.Value {
	out := output.(fibOutput)
	return []model.Value{model.U32(out.N), model.U32(out.A), model.U32(out.B)}
}

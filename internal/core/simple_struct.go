package core

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/zkdiff/zkdiff/internal/model"
)

type simpleStructInput struct {
	Field1 uint32 `json:"field1"`
	Field2 string `json:"field2"`
	Field3 bool   `json:"field3"`
}

type simpleStructOutput struct {
	Field1Echo  uint32
	Field2Len   uint32
	Field2Chars uint32
	Field3Echo  bool
}

type simpleStructCore struct{}

func (simpleStructCore) Name() string             { return "simple_struct" }
func (simpleStructCore) ExpectedCommitCount() int { return 4 }
func (simpleStructCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU32, model.KindU32, model.KindU32, model.KindU32}
}

func (simpleStructCore) Decode(raw []byte) (any, error) {
	var in simpleStructInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("simple_struct: decode: %w", err)
	}
	return in, nil
}

// Run reports field2's length two ways: in bytes and in runes. The two
// diverge for any non-ASCII input, which is the point: a guest and a native
// host must agree on both encodings of the same string.
func (simpleStructCore) Run(input any) any {
	in := input.(simpleStructInput)
	return simpleStructOutput{
		Field1Echo:  in.Field1,
		Field2Len:   uint32(len(in.Field2)),
		Field2Chars: uint32(utf8.RuneCountInString(in.Field2)),
		Field3Echo:  in.Field3,
	}
}

func (simpleStructCore) Commit(output any) []model.Value {
	out := output.(simpleStructOutput)
	return []model.Value{
		model.U32(out.Field1Echo),
		model.U32(out.Field2Len),
		model.U32(out.Field2Chars),
		model.Bool(out.Field3Echo),
	}
}

package core

import (
	"encoding/json"
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

type ioEchoInput struct {
	// Data is base64 in JSON (encoding/json's native []byte encoding),
	// mirroring how a byte vector crosses a JSON boundary in the source
	// harness's own input files.
	Data []byte `json:"data"`
}

type ioEchoOutput struct {
	Length    uint32
	FirstByte *byte
	LastByte  *byte
}

type ioEchoCore struct{}

func (ioEchoCore) Name() string             { return "io_echo" }
func (ioEchoCore) ExpectedCommitCount() int { return 3 }
func (ioEchoCore) CommitKinds() []model.ValueKind {
	return []model.ValueKind{model.KindU32, model.KindU32, model.KindU32}
}

func (ioEchoCore) Decode(raw []byte) (any, error) {
	var in ioEchoInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("io_echo: decode: %w", err)
	}
	return in, nil
}

func (ioEchoCore) Run(input any) any {
	in := input.(ioEchoInput)
	out := ioEchoOutput{Length: uint32(len(in.Data))}
	if len(in.Data) > 0 {
		first := in.Data[0]
		last := in.Data[len(in.Data)-1]
		out.FirstByte = &first
		out.LastByte = &last
	}
	return out
}

func (ioEchoCore) Commit(output any) []model.Value {
	out := output.(ioEchoOutput)
	return []model.Value{
		model.U32(out.Length),
		model.OptionU8(out.FirstByte),
		model.OptionU8(out.LastByte),
	}
}

package zkvm

import (
	"context"
	"encoding/binary"
)

// FaultInjectingExecutor wraps another Executor and optionally flips one
// committed u32 slot, purely to exercise the oracle's mismatch-reason
// formatting end to end without needing an actually-buggy zkVM backend on
// hand. Slot is a byte offset into the public-values stream (must be
// 4-byte aligned for the flip to land on a whole slot); a negative Slot
// disables injection.
type FaultInjectingExecutor struct {
	Inner Executor
	Slot  int
}

func (f *FaultInjectingExecutor) Execute(ctx context.Context, elf []byte, input []byte) (ExecResult, error) {
	res, err := f.Inner.Execute(ctx, elf, input)
	if err != nil || f.Slot < 0 || f.Slot+4 > len(res.PublicValues) {
		return res, err
	}
	mutated := make([]byte, len(res.PublicValues))
	copy(mutated, res.PublicValues)
	v := binary.LittleEndian.Uint32(mutated[f.Slot:])
	binary.LittleEndian.PutUint32(mutated[f.Slot:], v^0xFFFFFFFF)
	res.PublicValues = mutated
	return res, nil
}

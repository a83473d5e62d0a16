package mutate

import (
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generateArithmeticMutations() []model.MutatedInput {
	operations := []string{"add", "sub", "mul", "div"}
	boundaryValues := []uint32{0, 1, 2, 0xFFFFFFFF / 2, 0xFFFFFFFF - 1, 0xFFFFFFFF}

	var out []model.MutatedInput
	for _, op := range operations {
		perOp := 0
		for _, a := range boundaryValues {
			if perOp >= 6 {
				break
			}
			for _, b := range boundaryValues {
				if perOp >= 6 {
					break
				}
				if a == 0 && b == 0 {
					continue // the (0,0) pair is skipped for every operation
				}
				out = append(out, model.MutatedInput{
					Label: fmt.Sprintf("boundary_values:%d_%d_op_%s", a, b, op),
					Raw: mustInput(struct {
						A  uint32 `json:"a"`
						B  uint32 `json:"b"`
						Op string `json:"op"`
					}{A: a, B: b, Op: op}),
				})
				perOp++
			}
		}
	}
	return out
}

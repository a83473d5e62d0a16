package mutate

import (
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generateFibMutations() []model.MutatedInput {
	nValues := []uint32{0, 1, 2, 5, 10, 20, 30, 40, 50, 100, 1000}

	out := make([]model.MutatedInput, 0, len(nValues))
	for _, n := range nValues {
		out = append(out, model.MutatedInput{
			Label: fmt.Sprintf("fib_value:n=%d", n),
			Raw: mustInput(struct {
				N uint32 `json:"n"`
			}{N: n}),
		})
	}
	return out
}

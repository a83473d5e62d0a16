package mutate

import (
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generateTimeoutTestMutations() []model.MutatedInput {
	iterationCounts := []uint64{0, 1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000}

	out := make([]model.MutatedInput, 0, len(iterationCounts))
	for _, n := range iterationCounts {
		out = append(out, model.MutatedInput{
			Label: fmt.Sprintf("iteration_variation:%d", n),
			Raw: mustInput(struct {
				Iterations uint64 `json:"iterations"`
			}{Iterations: n}),
		})
	}
	return out
}

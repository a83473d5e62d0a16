package mutate

import (
	"fmt"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generatePanicTestMutations() []model.MutatedInput {
	cases := []struct {
		shouldPanic bool
		label       string
	}{
		{false, "no_panic"},
		{true, "panic_simple"},
		{true, "panic_with_long_message"},
		{false, "no_panic_alternate"},
	}

	out := make([]model.MutatedInput, 0, len(cases))
	for _, c := range cases {
		var msg *string
		if c.shouldPanic {
			m := fmt.Sprintf("test panic: %s", c.label)
			msg = &m
		}
		out = append(out, model.MutatedInput{
			Label: fmt.Sprintf("bool_variation:%s", c.label),
			Raw: mustInput(struct {
				ShouldPanic bool    `json:"should_panic"`
				PanicMsg    *string `json:"panic_msg,omitempty"`
			}{ShouldPanic: c.shouldPanic, PanicMsg: msg}),
		})
	}
	return out
}

package mutate

import (
	"fmt"
	"strings"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generateSimpleStructMutations() []model.MutatedInput {
	stringCases := []struct {
		value string
		label string
	}{
		{"", "empty"},
		{"a", "single"},
		{"hello", "short"},
		{strings.Repeat("a", 100), "100chars"},
		{strings.Repeat("a", 1000), "1000chars"},
		{strings.Repeat("a", 10000), "10kchars"},
		{"🦀", "emoji"},
		{"🦀 Rust zkVM", "unicode_mixed"},
		{"Hello\nWorld", "newline"},
		{"Tab\tSeparated", "tab"},
	}

	field1Values := []uint32{0, 1, 42, 0xFFFFFFFF}
	field3Values := []bool{true, false}

	out := make([]model.MutatedInput, 0, len(stringCases))
	for i, sc := range stringCases {
		field1 := field1Values[i%len(field1Values)]
		field3 := field3Values[i%len(field3Values)]

		out = append(out, model.MutatedInput{
			Label: fmt.Sprintf("string_variation:%s", sc.label),
			Raw: mustInput(struct {
				Field1 uint32 `json:"field1"`
				Field2 string `json:"field2"`
				Field3 bool   `json:"field3"`
			}{Field1: field1, Field2: sc.value, Field3: field3}),
		})
	}
	return out
}

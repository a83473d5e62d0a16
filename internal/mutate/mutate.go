// Package mutate implements the deterministic, finite per-core mutation
// catalogues (C5): a pure function of core name, with no RNG in the base
// strategy, suitable for regression replay.
package mutate

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zkdiff/zkdiff/internal/model"
)

type strategy func() []model.MutatedInput

var strategies = map[string]strategy{
	"io_echo":       generateIoEchoMutations,
	"arithmetic":    generateArithmeticMutations,
	"simple_struct": generateSimpleStructMutations,
	"fib":           generateFibMutations,
	"panic_test":    generatePanicTestMutations,
	"timeout_test":  generateTimeoutTestMutations,
}

// Generate returns the ordered, finite mutation catalogue for coreName,
// stamping every entry with baseInputPath for reproducibility. The result
// is deterministic: repeated calls with the same coreName and
// baseInputPath produce elementwise-identical output. baseInputPath is
// pure provenance metadata carried onto each MutatedInput; it does not
// influence which mutations are generated, matching the original
// mutator's own base-input parameter (accepted but unused by the
// per-core strategies themselves).
func Generate(coreName, baseInputPath string) ([]model.MutatedInput, error) {
	s, ok := strategies[coreName]
	if !ok {
		return nil, fmt.Errorf("mutate: no mutation strategy registered for core %q", coreName)
	}
	muts := s()
	for i := range muts {
		muts[i].BaseInputPath = baseInputPath
	}
	return muts, nil
}

func mustInput(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mutate: marshal fixture: %s", err)) // programmer error: fixtures are static literals
	}
	return b
}

// SizeStats reports count/min/max over an io_echo-shaped mutation catalogue
// (see §4.5); entries without a "data" payload are counted but add no size.
type SizeStats struct {
	Count   int
	MinSize int
	MaxSize int
}

func CalculateSizeStats(mutations []model.MutatedInput) SizeStats {
	stats := SizeStats{Count: len(mutations)}
	sizes := make([]int, 0, len(mutations))
	for _, m := range mutations {
		var body struct {
			Data []byte `json:"data"`
		}
		if err := json.Unmarshal(m.Raw, &body); err != nil {
			continue
		}
		sizes = append(sizes, len(body.Data))
	}
	if len(sizes) == 0 {
		return stats
	}
	sort.Ints(sizes)
	stats.MinSize = sizes[0]
	stats.MaxSize = sizes[len(sizes)-1]
	return stats
}

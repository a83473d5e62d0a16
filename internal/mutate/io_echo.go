package mutate

import (
	"fmt"
	"sort"

	"github.com/zkdiff/zkdiff/internal/model"
)

func generateIoEchoMutations() []model.MutatedInput {
	powersOfTwo := []int{0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
		1024, 2048, 4096, 8192, 16384, 32768, 65536, 131072, 262144, 524288, 1048576}
	boundaries := []int{127, 255, 1023, 4095, 65535}
	edgeCases := []int{3, 7, 15, 31, 63}

	all := append(append(append([]int{}, powersOfTwo...), boundaries...), edgeCases...)
	sort.Ints(all)
	sizes := dedupSorted(all)

	out := make([]model.MutatedInput, 0, len(sizes))
	for _, size := range sizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i % 256)
		}
		out = append(out, model.MutatedInput{
			Label: fmt.Sprintf("length_bias:%s", humanSize(size)),
			Raw:   mustInput(struct {
				Data []byte `json:"data"`
			}{Data: data}),
		})
	}
	return out
}

func dedupSorted(sorted []int) []int {
	out := make([]int, 0, len(sorted))
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}

func humanSize(size int) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%db", size)
	case size < 1048576:
		return fmt.Sprintf("%dkb", size/1024)
	default:
		return fmt.Sprintf("%dmb", size/1048576)
	}
}

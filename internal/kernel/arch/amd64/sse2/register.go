//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
)

// init registers the 4-lane backend. SSE2 is the amd64 baseline, so this
// is what runs on x86-64 CPUs without AVX2.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Lanes:     lanes,

		VectorAdd:       VectorAdd,
		VectorSubtract:  VectorSubtract,
		BlockedMultiply: BlockedMultiply,
	})
}

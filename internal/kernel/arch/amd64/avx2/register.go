//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
)

// init registers the 8-lane backend for AVX2-capable CPUs
// (Intel Haswell and later, AMD Excavator and later).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Lanes:     lanes,

		VectorAdd:       VectorAdd,
		VectorSubtract:  VectorSubtract,
		BlockedMultiply: BlockedMultiply,
	})
}

//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
)

// init registers the NEON backend. Advanced SIMD is mandatory on ARMv8, so
// every arm64 CPU takes this path unless generic is forced.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Lanes:     lanes,

		VectorAdd:       VectorAdd,
		VectorSubtract:  VectorSubtract,
		BlockedMultiply: BlockedMultiply,
	})
}

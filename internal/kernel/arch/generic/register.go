package generic

import (
	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
)

// init registers the scalar backend. It runs everywhere and is the
// reference the SIMD backends are tested against.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Lanes:     cpu.LaneWidth(cpu.SIMDNone),

		VectorAdd:       VectorAdd,
		VectorSubtract:  VectorSubtract,
		BlockedMultiply: BlockedMultiply,
	})
}

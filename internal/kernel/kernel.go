package kernel

import (
	"sync"

	"github.com/cwbudde/algo-matrix/internal/cpu"
	"github.com/cwbudde/algo-matrix/internal/kernel/registry"
)

// DefaultBlockSize is the tile edge used by BlockedMultiply. Three 32×32
// float32 tiles take 12 KiB and fit in L1 data cache on current x86-64 and
// arm64 cores.
const DefaultBlockSize = 32

var (
	active   *registry.OpEntry
	initOnce sync.Once
)

func selected() *registry.OpEntry {
	initOnce.Do(initKernels)
	return active
}

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no backend registered (missing generic fallback?)")
	}
	if entry.VectorAdd == nil || entry.VectorSubtract == nil || entry.BlockedMultiply == nil {
		panic("kernel: selected backend " + entry.Name + " is incomplete")
	}
	active = entry
}

// VectorAdd performs a[i] += b[i] for every i in [0, len(a)).
// Slices must have equal length. Panics if lengths differ.
func VectorAdd(a, b []float32) {
	selected().VectorAdd(a, b)
}

// VectorSubtract performs a[i] -= b[i] for every i in [0, len(a)).
// Slices must have equal length. Panics if lengths differ.
func VectorSubtract(a, b []float32) {
	selected().VectorSubtract(a, b)
}

// BlockedMultiply computes result = a × b, with a of shape (m, k), b of
// shape (k, n) and result of shape (m, n), all row-major. result is
// overwritten; only its first m*n elements are touched.
func BlockedMultiply(result, a, b []float32, m, n, k int) {
	selected().BlockedMultiply(result, a, b, m, n, k, DefaultBlockSize)
}

// BlockedMultiplyBlock is BlockedMultiply with an explicit tile edge.
// Panics if block < 1.
func BlockedMultiplyBlock(result, a, b []float32, m, n, k, block int) {
	if block < 1 {
		panic("kernel: block size must be positive")
	}
	selected().BlockedMultiply(result, a, b, m, n, k, block)
}

// Implementation returns the name of the backend in use.
func Implementation() string {
	return selected().Name
}

// Lanes returns the float32 vector width of the backend in use.
func Lanes() int {
	return selected().Lanes
}

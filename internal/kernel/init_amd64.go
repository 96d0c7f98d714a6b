//go:build amd64 && !purego

package kernel

// Blank imports run the init functions that register each backend.

import (
	_ "github.com/cwbudde/algo-matrix/internal/kernel/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-matrix/internal/kernel/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-matrix/internal/kernel/arch/generic"
)

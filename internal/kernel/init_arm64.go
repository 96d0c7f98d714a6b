//go:build arm64 && !purego

package kernel

import (
	_ "github.com/cwbudde/algo-matrix/internal/kernel/arch/arm64/neon"
	_ "github.com/cwbudde/algo-matrix/internal/kernel/arch/generic"
)

//go:build purego || !(amd64 || arm64)

package kernel

import _ "github.com/cwbudde/algo-matrix/internal/kernel/arch/generic"

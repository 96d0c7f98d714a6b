//go:build arm64 && !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-matrix/internal/cpu"
)

func TestDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{HasNEON: true, ForceGeneric: true, Architecture: "arm64"},
			wantImpl: "generic",
		},
		{
			name:     "neon",
			features: cpu.Features{HasNEON: true, Architecture: "arm64"},
			wantImpl: "neon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()
			resetDispatchForTest()
			defer resetDispatchForTest()

			if got := Implementation(); got != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, got)
			}
		})
	}
}

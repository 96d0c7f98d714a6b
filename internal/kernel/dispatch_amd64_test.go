//go:build amd64 && !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-matrix/internal/cpu"
)

func TestDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name      string
		features  cpu.Features
		wantImpl  string
		wantLanes int
	}{
		{
			name:      "generic-forced",
			features:  cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true, Architecture: "amd64"},
			wantImpl:  "generic",
			wantLanes: 1,
		},
		{
			name:      "sse2",
			features:  cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantImpl:  "sse2",
			wantLanes: 4,
		},
		{
			name:      "avx2",
			features:  cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantImpl:  "avx2",
			wantLanes: 8,
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
			if got := Lanes(); got != tt.wantLanes {
				t.Fatalf("expected %d lanes, got %d", tt.wantLanes, got)
			}

			result := make([]float32, 4)
			BlockedMultiply(result, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}, 2, 2, 2)
			if result[0] != 19 || result[3] != 50 {
				t.Fatalf("unexpected product %v", result)
			}
		})
	}
}

//go:build amd64

package cpu

import (
	"testing"

	"golang.org/x/sys/cpu"
)

func TestDetectMirrorsCPUID(t *testing.T) {
	f := detectFeaturesImpl()
	if f.HasSSE2 != cpu.X86.HasSSE2 || f.HasAVX2 != cpu.X86.HasAVX2 {
		t.Fatalf("detected %+v, CPUID sse2=%t avx2=%t", f, cpu.X86.HasSSE2, cpu.X86.HasAVX2)
	}
	if f.HasNEON {
		t.Fatal("NEON reported on amd64")
	}
}

// Package cpu detects the SIMD capabilities that decide which matrix kernel
// backend is used.
//
// Detection runs once, lazily, on the first call to DetectFeatures and is
// cached. Tests can pin a feature set with SetForcedFeatures; operators can
// force the scalar path by setting ALGOMATRIX_FORCE_GENERIC=1 before start.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// ForceGenericEnv is the environment variable that disables every SIMD backend.
const ForceGenericEnv = "ALGOMATRIX_FORCE_GENERIC"

// SIMDLevel identifies the instruction set a kernel backend is written for.
// Levels are not comparable across architectures (AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone is the scalar fallback, valid everywhere.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline, 128-bit registers.
	SIMDSSE2

	// SIMDAVX2 is x86-64 AVX2, 256-bit registers.
	SIMDAVX2

	// SIMDNEON is ARM Advanced SIMD, 128-bit registers.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// LaneWidth returns how many float32 values one vector register of the
// given level holds. SIMDNone reports 1.
func LaneWidth(level SIMDLevel) int {
	switch level {
	case SIMDSSE2, SIMDNEON:
		return 4
	case SIMDAVX2:
		return 8
	default:
		return 1
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables all SIMD backends.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
	detectMu   sync.Mutex

	forced   *Features
	forcedMu sync.RWMutex
)

// DetectFeatures returns the features of the running CPU, or the forced
// feature set if one is installed. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectMu.Lock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.ForceGeneric = forceGenericFromEnv()
	})
	features := detected
	detectMu.Unlock()

	return features
}

func forceGenericFromEnv() bool {
	v, ok := os.LookupEnv(ForceGenericEnv)
	if !ok {
		return false
	}
	force, err := strconv.ParseBool(v)
	return err == nil && force
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	pinned := f
	forced = &pinned
}

// ResetDetection drops forced features and the detection cache.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether a backend written for level can run on features.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

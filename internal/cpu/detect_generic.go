//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no SIMD support; only the scalar backend runs.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}

//go:build !amd64 && !arm64

package cpu

// detectFeatures reports no SIMD extensions on other architectures.
func detectFeatures() Features {
	return Features{}
}

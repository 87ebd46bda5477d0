//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detectFeatures reports Advanced SIMD, mandatory on ARMv8. Its FMLA
// instructions cover fused multiply-add.
func detectFeatures() Features {
	return Features{
		HasNEON: cpu.ARM64.HasASIMD,
		HasFMA:  cpu.ARM64.HasASIMD,
	}
}

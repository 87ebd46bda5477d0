//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detectFeatures reads CPUID through x/sys/cpu. SSE2 is part of the x86-64
// baseline and always set.
func detectFeatures() Features {
	return Features{
		HasSSE2:   cpu.X86.HasSSE2,
		HasAVX:    cpu.X86.HasAVX,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F,
		HasFMA:    cpu.X86.HasFMA,
	}
}

// Package cpu describes the host a benchmark ran on: architecture, logical
// CPU count, Go toolchain and the SIMD extensions the BLAS backend could use.
//
// Detection runs once, on the first call to Detect, and is cached.
package cpu

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
)

// SIMDLevel is the widest vector extension reported by the processor.
// Levels are ordered within one architecture only.
type SIMDLevel int

const (
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX
	SIMDAVX2
	SIMDAVX512
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "none"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "unknown"
	}
}

// Features lists the extensions relevant to dense linear algebra.
type Features struct {
	HasSSE2   bool `json:"sse2"`
	HasAVX    bool `json:"avx"`
	HasAVX2   bool `json:"avx2"`
	HasAVX512 bool `json:"avx512"`
	HasFMA    bool `json:"fma"`
	HasNEON   bool `json:"neon"`
}

// Best returns the widest SIMD level in f.
func (f Features) Best() SIMDLevel {
	switch {
	case f.HasAVX512:
		return SIMDAVX512
	case f.HasAVX2:
		return SIMDAVX2
	case f.HasAVX:
		return SIMDAVX
	case f.HasSSE2:
		return SIMDSSE2
	case f.HasNEON:
		return SIMDNEON
	default:
		return SIMDNone
	}
}

// List returns the names of the supported extensions, narrowest first.
func (f Features) List() []string {
	var out []string
	for _, e := range []struct {
		ok   bool
		name string
	}{
		{f.HasSSE2, "SSE2"}, {f.HasAVX, "AVX"}, {f.HasAVX2, "AVX2"},
		{f.HasAVX512, "AVX-512"}, {f.HasFMA, "FMA"}, {f.HasNEON, "NEON"},
	} {
		if e.ok {
			out = append(out, e.name)
		}
	}
	return out
}

// Host is the machine description embedded in benchmark reports.
type Host struct {
	Arch      string   `json:"arch"`
	OS        string   `json:"os"`
	NumCPU    int      `json:"num_cpu"`
	GoVersion string   `json:"go_version"`
	SIMD      string   `json:"simd"` // Features.Best()
	Features  Features `json:"features"`
}

// String renders h on one line, e.g.
// "linux/amd64, 8 CPUs, go1.23.4, SIMD: AVX2 (SSE2 AVX AVX2 FMA)".
func (h Host) String() string {
	l := h.Features.List()
	if len(l) == 0 {
		return fmt.Sprintf("%s/%s, %d CPUs, %s, SIMD: none", h.OS, h.Arch, h.NumCPU, h.GoVersion)
	}
	return fmt.Sprintf("%s/%s, %d CPUs, %s, SIMD: %s (%s)",
		h.OS, h.Arch, h.NumCPU, h.GoVersion, h.Features.Best(), strings.Join(l, " "))
}

var (
	detected   Host
	detectOnce sync.Once
)

// Detect returns the cached description of the current host.
// Safe for concurrent use.
func Detect() Host {
	detectOnce.Do(func() {
		detected = Host{
			Arch:      runtime.GOARCH,
			OS:        runtime.GOOS,
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
			Features:  detectFeatures(),
		}
		detected.SIMD = detected.Features.Best().String()
	})
	return detected
}

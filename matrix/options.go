// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for generation, tiling and
// comparison. This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors that record invalid values instead of panicking,
//   - gatherOptions helper (internal) that surfaces the first violation.
//
// Values arrive from the command line, so a bad block size or epsilon is a
// user error and is returned, not panicked.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the side of the square matrices used by the lab benchmark.
	DefaultSize = 2048

	// DefaultBlockSize is the tile side used by MulBlocked.
	DefaultBlockSize = 64

	// DefaultEpsilon is the per-component absolute tolerance of EqualApprox.
	DefaultEpsilon = 1e-6

	// DefaultSeed seeds Generate so every run multiplies the same operands.
	DefaultSeed int64 = 42

	// DefaultValueMin and DefaultValueMax bound the integer parts generated
	// for both real and imaginary components: [min, max).
	DefaultValueMin = -50
	DefaultValueMax = 50
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	blockSize int
	eps       float64
	seed      int64
	valueMin  int
	valueMax  int

	err error // first recorded violation
}

// defaultOptions returns Options populated from the documented defaults.
func defaultOptions() Options {
	return Options{
		blockSize: DefaultBlockSize,
		eps:       DefaultEpsilon,
		seed:      DefaultSeed,
		valueMin:  DefaultValueMin,
		valueMax:  DefaultValueMax,
	}
}

// gatherOptions applies opts over the defaults and returns the first violation.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// record keeps only the first violation so later options cannot mask it.
func (o *Options) record(err error) {
	if o.err == nil {
		o.err = err
	}
}

// BlockSize returns the effective tile size.
func (o Options) BlockSize() int { return o.blockSize }

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Seed returns the effective generator seed.
func (o Options) Seed() int64 { return o.seed }

// WithBlockSize sets the MulBlocked tile side.
//
//	b > 0: use b
//	b ≤ 0: ErrInvalidBlockSize surfaced by the consuming call
func WithBlockSize(b int) Option {
	return func(o *Options) {
		if b <= 0 {
			o.record(fmt.Errorf("WithBlockSize(%d): %w", b, ErrInvalidBlockSize))
			return
		}
		o.blockSize = b
	}
}

// WithEpsilon sets the tolerance used by EqualApprox-based checks.
// eps must be finite and non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.record(fmt.Errorf("matrix: WithEpsilon(%v): epsilon must be finite and non-negative", eps))
			return
		}
		o.eps = eps
	}
}

// WithSeed sets the pseudo-random seed used by Generate.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithValueRange sets the half-open integer range [lo, hi) for generated
// real and imaginary parts. hi must be greater than lo.
func WithValueRange(lo, hi int) Option {
	return func(o *Options) {
		if hi <= lo {
			o.record(fmt.Errorf("matrix: WithValueRange(%d, %d): empty range", lo, hi))
			return
		}
		o.valueMin, o.valueMax = lo, hi
	}
}

// Resolve returns the effective options after applying opts, or the first
// recorded violation. RunMatMul reports block size, seed and epsilon from it.
func Resolve(opts ...Option) (Options, error) {
	return gatherOptions(opts...)
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Canonical kernel names, as accepted on the command line.
const (
	KernelNaive   = "naive"
	KernelBLAS    = "blas"
	KernelBlocked = "blocked"
)

// MulFunc computes C = A·B into a preallocated destination.
type MulFunc func(a, b, c *Dense) error

// Kernel binds a multiplication routine to its report label.
type Kernel struct {
	Name  string  // canonical name (KernelNaive, ...)
	Label string  // human label used in reports
	Mul   MulFunc // the routine itself
}

// Kernels returns the three lab kernels in benchmark order: naive, BLAS,
// blocked. The blocked kernel is bound to the configured block size.
// Errors: option violations (e.g. ErrInvalidBlockSize).
func Kernels(opts ...Option) ([]Kernel, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	bs := o.blockSize

	return []Kernel{
		{Name: KernelNaive, Label: "Simple multiplication", Mul: MulNaive},
		{Name: KernelBLAS, Label: "BLAS multiplication", Mul: MulBLAS},
		{
			Name:  KernelBlocked,
			Label: "Blocked transposed multiplication",
			Mul:   func(a, b, c *Dense) error { return MulBlocked(a, b, c, bs) },
		},
	}, nil
}

// SelectKernels returns the kernels whose names appear in names, keeping the
// benchmark order. An empty names list selects all kernels.
// Errors: ErrUnknownKernel for a name not in the registry.
func SelectKernels(names []string, opts ...Option) ([]Kernel, error) {
	all, err := Kernels(opts...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return all, nil
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		found := false
		for _, k := range all {
			if k.Name == n {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q (want one of %s, %s, %s)", ErrUnknownKernel, n, KernelNaive, KernelBLAS, KernelBlocked)
		}
		want[n] = true
	}

	out := make([]Kernel, 0, len(want))
	for _, k := range all {
		if want[k.Name] {
			out = append(out, k)
		}
	}

	return out, nil
}

// matrixErrorf wraps err with an operation tag: "<tag>: <underlying>".
// Callers must pass a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

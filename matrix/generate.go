// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// Generate returns an r×c matrix whose real and imaginary parts are integers
// drawn uniformly from [DefaultValueMin, DefaultValueMax) (see WithValueRange)
// with a source seeded by WithSeed (DefaultSeed otherwise).
// Integer-valued entries keep every kernel's products exact for moderate sizes,
// which is what makes the cross-kernel agreement check meaningful.
//
// Complexity: O(r*c).
func Generate(rows, cols int, opts ...Option) (*Dense, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	fill(m, rand.New(rand.NewSource(o.seed)), o.valueMin, o.valueMax)

	return m, nil
}

// GeneratePair returns two n×n operands drawn from a single seeded source,
// A first then B, so A != B while the pair stays reproducible.
func GeneratePair(n int, opts ...Option) (a, b *Dense, err error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	if a, err = NewDense(n, n); err != nil {
		return nil, nil, err
	}
	if b, err = NewDense(n, n); err != nil {
		return nil, nil, err
	}
	rng := rand.New(rand.NewSource(o.seed))
	fill(a, rng, o.valueMin, o.valueMax)
	fill(b, rng, o.valueMin, o.valueMax)

	return a, b, nil
}

// fill writes random integer-valued complex numbers into every cell.
func fill(m *Dense, rng *rand.Rand, lo, hi int) {
	span := hi - lo
	for i := range m.data {
		re := float64(rng.Intn(span) + lo)
		im := float64(rng.Intn(span) + lo)
		m.data[i] = complex(re, im)
	}
}

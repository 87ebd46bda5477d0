package bench

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Repeat controls how often a measured function runs.
type Repeat struct {
	Warmup int `json:"warmup"` // untimed runs before measuring, ≥ 0
	Rounds int `json:"rounds"` // timed runs, ≥ 1
}

// DefaultRepeat is a single timed run without warm-up.
func DefaultRepeat() Repeat { return Repeat{Warmup: 0, Rounds: 1} }

// Validate rejects negative warm-ups and fewer than one round.
func (r Repeat) Validate() error {
	if r.Warmup < 0 {
		return fmt.Errorf("%w: warmup %d < 0", ErrInvalidConfig, r.Warmup)
	}
	if r.Rounds < 1 {
		return fmt.Errorf("%w: rounds %d < 1", ErrInvalidConfig, r.Rounds)
	}
	return nil
}

// Stats summarises the timed rounds of one variant.
type Stats struct {
	Rounds int           `json:"rounds"`
	Min    time.Duration `json:"min_ns"`
	Mean   time.Duration `json:"mean_ns"`
	StdDev time.Duration `json:"stddev_ns"`
}

// Measure runs fn once and returns the elapsed wall-clock time.
// time.Since reads the monotonic clock.
func Measure(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}

// Summarize reduces samples to min, mean and sample standard deviation.
// A single sample has zero deviation; no samples give zero Stats.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(samples))
	for i, d := range samples {
		xs[i] = float64(d)
	}
	s := Stats{Rounds: len(xs), Min: time.Duration(floats.Min(xs))}
	if len(xs) == 1 {
		s.Mean = samples[0]
		return s
	}
	mean, std := stat.MeanStdDev(xs, nil)
	s.Mean, s.StdDev = time.Duration(mean), time.Duration(std)
	return s
}

// GFLOPS converts an operation count and a duration into 10⁹ flops/second.
// Zero durations yield 0.
func GFLOPS(flops float64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return flops / d.Seconds() / 1e9
}

// repeatRun executes rep.Warmup untimed then rep.Rounds timed calls of fn.
// prepare, if non-nil, runs before every call and is never timed. The
// context is checked between calls, not during them.
func repeatRun(ctx context.Context, rep Repeat, prepare func(), fn func() error) (Stats, error) {
	call := func(timed bool) (time.Duration, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if prepare != nil {
			prepare()
		}
		if !timed {
			return 0, fn()
		}
		return Measure(fn)
	}

	for i := 0; i < rep.Warmup; i++ {
		if _, err := call(false); err != nil {
			return Stats{}, err
		}
	}
	samples := make([]time.Duration, 0, rep.Rounds)
	for i := 0; i < rep.Rounds; i++ {
		d, err := call(true)
		if err != nil {
			return Stats{}, err
		}
		samples = append(samples, d)
	}
	return Summarize(samples), nil
}

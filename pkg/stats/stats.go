// Package stats provides pure numeric transformations on one-dimensional
// float64 sequences: sliding-window average, z-score standardization, and
// min-max scaling.
//
// All functions validate parameters eagerly and return typed errors
// (parameter, degenerate) instead of NaN or silently truncated output. They
// never modify the input slice; results are freshly allocated.
//
// The one-dimensional contract is carried by the []float64 type itself; a
// nested sequence is not expressible here, so no runtime shape check exists.
package stats

import (
	"math"

	"github.com/dataforge-io/dataprep/pkg/errors"
)

// MovingAverage computes the simple (unweighted) arithmetic mean over each
// contiguous window of the given length, one output value per valid window
// start position, the first window starting at index 0. The result has
// exactly len(seq)-window+1 values; there is no padding.
//
// window must be a positive integer no larger than len(seq).
func MovingAverage(seq []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New(errors.ErrorTypeParameter,
			"window must be a positive integer").
			WithDetail("window", window)
	}
	if window > len(seq) {
		return nil, errors.New(errors.ErrorTypeParameter,
			"window must not be larger than the array size").
			WithDetail("window", window).
			WithDetail("size", len(seq))
	}

	out := make([]float64, len(seq)-window+1)

	var sum float64
	for i := 0; i < window; i++ {
		sum += seq[i]
	}
	out[0] = sum / float64(window)

	for i := window; i < len(seq); i++ {
		sum += seq[i] - seq[i-window]
		out[i-window+1] = sum / float64(window)
	}

	return out, nil
}

// ZScore standardizes the sequence: each output is (x - mean) / stddev with
// the population standard deviation (divisor n, not n-1). The result has the
// same length as the input, mean ~ 0 and standard deviation ~ 1.
//
// A sequence with zero variance (all values equal, or empty) has no defined
// z-scores and fails with a degenerate-input error.
func ZScore(seq []float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, errors.New(errors.ErrorTypeParameter, "sequence must not be empty")
	}

	m := mean(seq)
	sd := math.Sqrt(populationVariance(seq, m))
	if sd == 0 {
		return nil, errors.New(errors.ErrorTypeDegenerate,
			"Standard deviation is zero; z-scores are undefined")
	}

	out := make([]float64, len(seq))
	for i, x := range seq {
		out[i] = (x - m) / sd
	}
	return out, nil
}

// MinMaxScale rescales the sequence to [0, 1]: each output is
// (x - min) / (max - min), so the minimum input maps to 0.0 and the maximum
// to 1.0. The result has the same length as the input and the transform is
// monotonic in the input ordering.
//
// A constant (or empty) sequence has no defined scaling and fails with a
// degenerate-input error.
func MinMaxScale(seq []float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, errors.New(errors.ErrorTypeParameter, "sequence must not be empty")
	}

	lo, hi := seq[0], seq[0]
	for _, x := range seq[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	if hi == lo {
		return nil, errors.New(errors.ErrorTypeDegenerate,
			"All values are equal; min-max scaling is undefined")
	}

	span := hi - lo
	out := make([]float64, len(seq))
	for i, x := range seq {
		out[i] = (x - lo) / span
	}
	return out, nil
}

// mean returns the arithmetic mean of seq (len(seq) > 0)
func mean(seq []float64) float64 {
	var sum float64
	for _, x := range seq {
		sum += x
	}
	return sum / float64(len(seq))
}

// populationVariance returns the variance with divisor n
func populationVariance(seq []float64, m float64) float64 {
	var sum float64
	for _, x := range seq {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(seq))
}

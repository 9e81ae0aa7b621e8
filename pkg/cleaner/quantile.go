package cleaner

import (
	"math"
	"sort"
)

// quantile returns the q-th quantile (0 <= q <= 1) of values using linear
// interpolation between closest ranks: rank = q*(n-1), interpolating between
// the bounding order statistics when the rank is fractional. This matches
// the interpolation scheme the outlier boundaries are defined against.
// values is not modified.
func quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 1 {
		return values[0]
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := q * float64(n-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

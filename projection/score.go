package projection

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MeanFiniteValue returns the average of the finite entries of values, or
// +Inf when no entry is finite. Selection keeps a pattern iff the result is
// strictly positive.
func MeanFiniteValue(values []int) float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if v != Infinity {
			finite = append(finite, float64(v))
		}
	}
	if len(finite) == 0 {
		return math.Inf(1)
	}

	return stat.Mean(finite, nil)
}

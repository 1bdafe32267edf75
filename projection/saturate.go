package projection

import "fmt"

// SaturatedCosts returns, per concrete operator, the smallest cost that
// preserves every finite goal distance of distances: the maximum of
// h(s) − h(t) over abstract transitions s → t induced by the operator with
// both endpoints finite, floored at 0. Operators that do not affect the
// pattern get 0.
//
// Errors: ErrDistancesLength.
func (p *Projection) SaturatedCosts(distances []int) ([]int, error) {
	if len(distances) != p.NumStates() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDistancesLength, len(distances), p.NumStates())
	}
	saturated := make([]int, p.numOperators)

	var (
		applicable []int
		ht, hs     int
		need       int
	)
	for t := range distances {
		ht = distances[t]
		if ht == Infinity {
			continue
		}
		applicable = p.matchTree.Applicable(t, applicable[:0])
		for _, opIdx := range applicable {
			op := &p.operators[opIdx]
			hs = distances[t+op.HashEffect]
			if hs == Infinity {
				continue
			}
			need = hs - ht
			for _, id := range op.Operators {
				if need > saturated[id] {
					saturated[id] = need
				}
			}
		}
	}

	return saturated, nil
}

// ReduceCosts subtracts saturated from costs in place. Entries equal to
// Infinity stay Infinity. costs is left untouched when any saturated cost
// exceeds the remaining cost or is negative.
//
// Errors: ErrCostsLength, ErrNegativeCost, ErrSaturationExceedsCost.
func ReduceCosts(costs, saturated []int) error {
	if len(costs) != len(saturated) {
		return fmt.Errorf("%w: got %d, want %d", ErrCostsLength, len(saturated), len(costs))
	}
	for i, s := range saturated {
		if s < 0 {
			return fmt.Errorf("%w: saturated cost of operator %d is %d", ErrNegativeCost, i, s)
		}
		if costs[i] != Infinity && s > costs[i] {
			return fmt.Errorf("%w: operator %d saturated=%d remaining=%d", ErrSaturationExceedsCost, i, s, costs[i])
		}
	}
	for i, s := range saturated {
		if costs[i] != Infinity {
			costs[i] -= s
		}
	}

	return nil
}

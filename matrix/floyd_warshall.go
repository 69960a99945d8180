package matrix

import (
	"fmt"
	"math"
)

// FloydWarshall computes all-pairs shortest paths on m in place.
//
// Contract: m must be square; +Inf off-diagonal means "no bound yet", and
// the diagonal must already be 0. Loop order is fixed (k, i, j) so repeated
// runs over the same input are deterministic, which stn's fixpoint
// tightening loop depends on to detect convergence.
//
// Complexity: O(n^3) time, O(1) extra space.
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("FloydWarshall: %w", err)
	}

	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	return floydWarshallGeneric(m)
}

func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			baseI := i * n
			ik := data[baseI+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

func floydWarshallGeneric(m Matrix) error {
	n := m.Rows()
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik, err := m.At(i, k)
			if err != nil {
				return fmt.Errorf("FloydWarshall: %w", err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj, err := m.At(k, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: %w", err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				dij, err := m.At(i, j)
				if err != nil {
					return fmt.Errorf("FloydWarshall: %w", err)
				}
				if cand := dik + dkj; cand < dij {
					if err := m.Set(i, j, cand); err != nil {
						return fmt.Errorf("FloydWarshall: %w", err)
					}
				}
			}
		}
	}

	return nil
}

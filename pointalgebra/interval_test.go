package pointalgebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func quant(t *testing.T, lo, hi int64) *Timepoint {
	t.Helper()
	tp, err := NewQuantitative(lo, hi)
	require.NoError(t, err)

	return tp
}

// TestIntervalOverlapsBackToBack reproduces spec §8 Scenario A: intervals
// that only touch at a shared boundary must not be reported as overlapping,
// or csp's unary role-usage constraint would wrongly forbid a single role
// from serving both.
func TestIntervalOverlapsBackToBack(t *testing.T) {
	r1 := NewInterval(quant(t, 0, 0), quant(t, 1, 1), nil)
	r2 := NewInterval(quant(t, 1, 1), quant(t, 2, 2), nil)

	require.False(t, r1.Overlaps(r2))
	require.False(t, r2.Overlaps(r1))
}

// TestIntervalOverlapsIdentical reproduces spec §8 Scenario B: two
// requirements over the exact same span do overlap.
func TestIntervalOverlapsIdentical(t *testing.T) {
	r1 := NewInterval(quant(t, 0, 0), quant(t, 2, 2), nil)
	r2 := NewInterval(quant(t, 0, 0), quant(t, 2, 2), nil)

	require.True(t, r1.Overlaps(r2))
}

func TestIntervalOverlapsPartial(t *testing.T) {
	r1 := NewInterval(quant(t, 0, 0), quant(t, 5, 5), nil)
	r2 := NewInterval(quant(t, 3, 3), quant(t, 8, 8), nil)

	require.True(t, r1.Overlaps(r2))
}

func TestIntervalOverlapsDisjoint(t *testing.T) {
	r1 := NewInterval(quant(t, 0, 0), quant(t, 1, 1), nil)
	r2 := NewInterval(quant(t, 5, 5), quant(t, 6, 6), nil)

	require.False(t, r1.Overlaps(r2))
}

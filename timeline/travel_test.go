package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateTravelTimeShortestPath(t *testing.T) {
	locations := []string{"L1", "L2", "L3"}
	edges := []LocationEdge{
		{From: "L1", To: "L2", Weight: 5},
		{From: "L2", To: "L3", Weight: 5},
		{From: "L1", To: "L3", Weight: 20},
	}

	d, err := EstimateTravelTime(locations, edges, "L1", "L3")
	require.NoError(t, err)
	require.Equal(t, int64(10), d)
}

func TestEstimateTravelTimeUnreachable(t *testing.T) {
	locations := []string{"L1", "L2"}

	d, err := EstimateTravelTime(locations, nil, "L1", "L2")
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), d)
}

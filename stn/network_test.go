package stn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpperLowerTighteningMutualBound(t *testing.T) {
	n := NewNetwork()
	// A signed-consistent mutual pair: b-a duration is the negation of a-b's,
	// so both postings describe the same underlying constraint.
	n.AddConstraint("a", "b", 1, 10)
	n.AddConstraint("b", "a", -10, -1)

	require.NoError(t, n.UpperLowerTightening())

	ab, err := n.Bound("a", "b")
	require.NoError(t, err)
	require.Equal(t, Bound{Lo: 1, Hi: 10}, ab)
}

func TestMinNetworkDetectsContradictoryMutualBound(t *testing.T) {
	n := NewNetwork()
	// a-b and b-a both required in [5,10]: impossible for a signed difference.
	n.AddConstraint("a", "b", 5, 10)
	n.AddConstraint("b", "a", 5, 10)

	require.ErrorIs(t, n.MinNetwork(), ErrInconsistent)
}

func TestUpperLowerTighteningTriangle(t *testing.T) {
	n := NewNetwork()
	n.AddConstraint("a", "b", 1, 5)
	n.AddConstraint("b", "c", 1, 5)
	n.AddConstraint("a", "c", 8, 20)

	require.NoError(t, n.UpperLowerTightening())

	ac, err := n.Bound("a", "c")
	require.NoError(t, err)
	require.Equal(t, Bound{Lo: 8, Hi: 10}, ac)
}

func TestUpperLowerTighteningIdempotent(t *testing.T) {
	n := NewNetwork()
	n.AddConstraint("a", "b", 1, 10)
	n.AddConstraint("b", "c", 1, 10)

	require.NoError(t, n.UpperLowerTightening())
	first := n.snapshot()

	require.NoError(t, n.UpperLowerTightening())
	require.True(t, n.sameAs(first))
}

func TestBoundUnknownTimepoint(t *testing.T) {
	n := NewNetwork()
	n.AddConstraint("a", "b", 1, 2)

	_, err := n.Bound("a", "z")
	require.ErrorIs(t, err, ErrUnknownTimepoint)
}

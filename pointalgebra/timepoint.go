package pointalgebra

import (
	"errors"
	"fmt"
)

// Sentinel errors for timepoint construction and comparison.
var (
	// ErrInvalidBounds indicates a quantitative Timepoint was built with Hi < Lo.
	ErrInvalidBounds = errors.New("pointalgebra: upper bound below lower bound")

	// ErrTypeMismatch indicates Equals was called between timepoints of
	// different kinds (qualitative vs quantitative).
	ErrTypeMismatch = errors.New("pointalgebra: cannot compare timepoints of different kinds")
)

// Kind distinguishes symbolic from numeric timepoints.
type Kind int

const (
	// Qualitative timepoints are identified by a symbolic Label.
	Qualitative Kind = iota
	// Quantitative timepoints are identified by a [Lo,Hi] bound.
	Quantitative
)

// Timepoint is either a labelled symbol (Qualitative) or a numeric bound
// (Quantitative). Only one of Label or (Lo,Hi) is meaningful, selected by Kind.
//
// Timepoints are owned by the Mission (package mission); every constraint,
// interval, or FTR holds a back-reference by index, never an owning copy.
type Timepoint struct {
	Kind  Kind
	Label string // meaningful iff Kind == Qualitative
	Lo    int64  // meaningful iff Kind == Quantitative
	Hi    int64  // meaningful iff Kind == Quantitative
}

// NewQualitative builds a symbolic Timepoint identified by label.
func NewQualitative(label string) *Timepoint {
	return &Timepoint{Kind: Qualitative, Label: label}
}

// NewQuantitative builds a numeric Timepoint with bound [lo,hi].
// Returns ErrInvalidBounds if hi < lo.
func NewQuantitative(lo, hi int64) (*Timepoint, error) {
	if hi < lo {
		return nil, fmt.Errorf("pointalgebra: NewQuantitative(%d,%d): %w", lo, hi, ErrInvalidBounds)
	}

	return &Timepoint{Kind: Quantitative, Lo: lo, Hi: hi}, nil
}

// Equals reports whether two timepoints of the same Kind denote the same
// identity: label equality for Qualitative, bound-tuple equality for
// Quantitative. Returns ErrTypeMismatch across kinds.
func (tp *Timepoint) Equals(other *Timepoint) (bool, error) {
	if tp.Kind != other.Kind {
		return false, ErrTypeMismatch
	}
	if tp.Kind == Qualitative {
		return tp.Label == other.Label, nil
	}

	return tp.Lo == other.Lo && tp.Hi == other.Hi, nil
}

// Less orders two Quantitative timepoints by Lo then Hi; meaningless (but
// total, for stable sorting) across Qualitative timepoints, which compare by
// Label.
func (tp *Timepoint) Less(other *Timepoint) bool {
	if tp.Kind == Qualitative || other.Kind == Qualitative {
		return tp.Label < other.Label
	}
	if tp.Lo != other.Lo {
		return tp.Lo < other.Lo
	}

	return tp.Hi < other.Hi
}

// String renders a debug-friendly form of the timepoint.
func (tp *Timepoint) String() string {
	if tp.Kind == Qualitative {
		return fmt.Sprintf("Timepoint(%s)", tp.Label)
	}

	return fmt.Sprintf("Timepoint[%d,%d]", tp.Lo, tp.Hi)
}

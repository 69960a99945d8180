package matrix

import "errors"

// Sentinel errors for the matrix package. Algorithms return these; tests and
// callers match them with errors.Is rather than string comparison.
var (
	// ErrInvalidDimensions is returned by NewDense when rows or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0, Rows()) or
	// [0, Cols()). At/Set return this; they never panic on bad indices.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates two matrices (or a matrix and an
	// operation's shape requirement) have incompatible dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf is returned by Set when the matrix validates finiteness and
	// the value is NaN or +/-Inf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil Matrix was passed where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

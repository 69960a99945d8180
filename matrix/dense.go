package matrix

import (
	"fmt"
	"math"
)

// Matrix is the interface FloydWarshall and the validators operate against.
// Dense is the only implementation this module needs; the interface exists
// so the algorithms read the same way the rest of the module's graph code
// does (operate against an interface, not a concrete storage layout).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j). Returns ErrOutOfRange on a bad index.
	At(i, j int) (float64, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange on a bad index, or
	// ErrNaNInf if the matrix validates finiteness and v isn't finite.
	Set(i, j int, v float64) error

	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// Dense is a row-major dense matrix: rows*cols float64s in one flat slice.
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var _ Matrix = (*Dense)(nil)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r x c Dense matrix initialized to zeros.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	cfg := newDenseConfig(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: cfg.validateNaNInf,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (i, j).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of m.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Fill sets every entry of m to v, bypassing the finiteness check. Used by
// stn to seed a distance matrix with +Inf before relaxation.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

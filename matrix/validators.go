package matrix

import "fmt"

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return fmt.Errorf("ValidateNotNil: %w", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrDimensionMismatch if m isn't square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("ValidateSquare: %w", err)
	}
	if r, c := m.Rows(), m.Cols(); r != c {
		return fmt.Errorf("ValidateSquare: %dx%d not square: %w", r, c, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape returns ErrDimensionMismatch if a and b differ in shape.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return fmt.Errorf("ValidateSameShape: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return fmt.Errorf("ValidateSameShape: %w", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape: %dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

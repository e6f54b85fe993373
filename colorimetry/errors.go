package colorimetry

import "errors"

var (
	ErrInvalidChromaticity = errors.New("invalid chromaticity")
	ErrSingularMatrix      = errors.New("matrix is singular and cannot be inverted")
	// The white point lies on or outside the triangle formed by the primaries
	ErrWhiteOutOfGamut = errors.New("white point is not inside the gamut of the primaries")
)

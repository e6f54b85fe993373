package colorimetry

import (
	"fmt"
)

// PrimaryMatrix returns the unnormalized basis matrix whose columns are the
// tristimulus values of the red, green and blue primaries, in that order.
func PrimaryMatrix(r, g, b Tristimulus) Mat3 {
	return Mat3{
		{r.X, g.X, b.X},
		{r.Y, g.Y, b.Y},
		{r.Z, g.Z, b.Z},
	}
}

// SolveWhitePoint returns the per primary scale factors s such that
// m * s == white. The luminance of white is normalized to 1 first.
//
// This is stricter than solving the linear system alone: if any scale factor
// is not positive, that is the white point is not strictly inside the
// triangle of the primaries, ErrWhiteOutOfGamut is returned, since the
// resulting matrix would map a primary to negative tristimulus values.
func SolveWhitePoint(m Mat3, white Tristimulus) (s Vec3, err error) {
	if white.Y <= 0 {
		return s, fmt.Errorf("%w: white point luminance must be positive, not %g", ErrInvalidChromaticity, white.Y)
	}
	w := Vec3{white.X / white.Y, 1, white.Z / white.Y}
	inv, err := m.Inverted()
	if err != nil {
		return s, fmt.Errorf("primaries are degenerate: %w", err)
	}
	s = inv.MulVec(w)
	for i, v := range s {
		if !(v > 0) {
			return s, fmt.Errorf("%w: scale factor for primary %d is %g", ErrWhiteOutOfGamut, i, v)
		}
	}
	return s, nil
}

// Normalize scales column i of m by s[i] and rounds the result to
// ForwardPrecision decimal places, giving the RGB to XYZ matrix.
func Normalize(m Mat3, s Vec3) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = s[j] * m[i][j]
		}
	}
	return ans.Round(ForwardPrecision)
}

// Invert returns the XYZ to RGB matrix for the forward matrix f, rounded to
// InversePrecision decimal places.
func Invert(f Mat3) (Mat3, error) {
	inv, err := f.Inverted()
	if err != nil {
		return inv, err
	}
	return inv.Round(InversePrecision), nil
}

package colorimetry

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// Chromaticity is a point in the CIE 1931 xy chromaticity diagram.
type Chromaticity struct {
	X, Y float64
}

// Tristimulus is a CIE XYZ value.
type Tristimulus struct {
	X, Y, Z float64
}

func (c Chromaticity) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.X, c.Y)
}

func (t Tristimulus) String() string {
	return fmt.Sprintf("XYZ(%.6f, %.6f, %.6f)", t.X, t.Y, t.Z)
}

func (t Tristimulus) Vec() Vec3 { return Vec3{t.X, t.Y, t.Z} }

func in_unit_range(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Validate returns an error wrapping ErrInvalidChromaticity if c cannot be
// converted to a tristimulus value.
func (c Chromaticity) Validate() error {
	switch {
	case !in_unit_range(c.X) || !in_unit_range(c.Y):
		return fmt.Errorf("%w: %v is outside [0, 1]", ErrInvalidChromaticity, c)
	case c.Y == 0:
		return fmt.Errorf("%w: %v has y = 0", ErrInvalidChromaticity, c)
	case c.X+c.Y > 1:
		return fmt.Errorf("%w: %v has x + y > 1", ErrInvalidChromaticity, c)
	}
	return nil
}

// ToTristimulus converts the chromaticity c with the specified luminance
// into CIE XYZ.
func ToTristimulus(c Chromaticity, luminance float64) (ans Tristimulus, err error) {
	if err = c.Validate(); err != nil {
		return
	}
	z := 1 - c.X - c.Y
	scale := luminance / c.Y
	return Tristimulus{X: scale * c.X, Y: luminance, Z: scale * z}, nil
}

// FromTristimulus is the inverse of ToTristimulus, returning the
// chromaticity and luminance of t. Black (X+Y+Z == 0) has no defined
// chromaticity and maps to the zero value.
func FromTristimulus(t Tristimulus) (Chromaticity, float64) {
	sum := t.X + t.Y + t.Z
	if sum == 0 {
		return Chromaticity{}, 0
	}
	return Chromaticity{X: t.X / sum, Y: t.Y / sum}, t.Y
}

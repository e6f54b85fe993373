package colorspace

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/kovidgoyal/rgbxyz/colorimetry"
	"github.com/kovidgoyal/rgbxyz/logging"
)

var _ = fmt.Print

var ErrVerification = errors.New("derived matrices do not satisfy their invariants")

// Absolute per component tolerances used by Verify
const (
	WhitePointTolerance = 1e-4
	IdentityTolerance   = 1e-6
)

type Stage int

const (
	StageChromaticity Stage = iota
	StageSolve
	StageInversion
)

func (s Stage) String() string {
	switch s {
	case StageChromaticity:
		return "chromaticity conversion"
	case StageSolve:
		return "white point solve"
	case StageInversion:
		return "inversion"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// DerivationError reports the color space and the pipeline stage at which
// deriving its matrices failed.
type DerivationError struct {
	Space string
	Stage Stage
	Err   error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("%s: %s failed: %s", e.Space, e.Stage, e.Err)
}

func (e *DerivationError) Unwrap() error { return e.Err }

// Definition is a color space along with its derived RGB to XYZ (Forward)
// and XYZ to RGB (Inverse) matrices. Forward is rounded to
// colorimetry.ForwardPrecision and Inverse to colorimetry.InversePrecision
// decimal places.
type Definition struct {
	Name        string
	Description string
	Primaries   PrimarySet
	Forward     colorimetry.Mat3
	Inverse     colorimetry.Mat3
}

// Derive computes the matrices for the specified primaries. On failure the
// returned error is a *DerivationError and the Definition is the zero value.
func Derive(name string, p PrimarySet) (Definition, error) {
	return derive(name, p, logging.Logger())
}

func derive(name string, p PrimarySet, log *slog.Logger) (ans Definition, err error) {
	fail := func(stage Stage, err error) (Definition, error) {
		log.Error("color space derivation failed", "space", name, "stage", stage.String(), "error", err)
		return Definition{}, &DerivationError{Space: name, Stage: stage, Err: err}
	}
	var xyz [4]colorimetry.Tristimulus
	for i, c := range [4]colorimetry.Chromaticity{p.Red, p.Green, p.Blue, p.White} {
		if xyz[i], err = colorimetry.ToTristimulus(c, 1); err != nil {
			return fail(StageChromaticity, fmt.Errorf("%s: %w", [4]string{"red", "green", "blue", "white"}[i], err))
		}
	}
	basis := colorimetry.PrimaryMatrix(xyz[0], xyz[1], xyz[2])
	s, err := colorimetry.SolveWhitePoint(basis, xyz[3])
	if err != nil {
		return fail(StageSolve, err)
	}
	forward := colorimetry.Normalize(basis, s)
	inverse, err := colorimetry.Invert(forward)
	if err != nil {
		return fail(StageInversion, err)
	}
	log.Debug("derived color space", "space", name, "det", basis.Det(), "sr", s[0], "sg", s[1], "sb", s[2])
	return Definition{Name: name, Primaries: p, Forward: forward, Inverse: inverse}, nil
}

// Verify checks that Forward maps RGB white to the white point and that
// Forward * Inverse is the identity, within WhitePointTolerance and
// IdentityTolerance respectively.
func (d Definition) Verify() error {
	white, err := colorimetry.ToTristimulus(d.Primaries.White, 1)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrVerification, d.Name, err)
	}
	got := d.Forward.MulVec(colorimetry.Vec3{1, 1, 1})
	for i, want := range white.Vec() {
		if diff := got[i] - want; !(math.Abs(diff) <= WhitePointTolerance) {
			return fmt.Errorf("%w: %s: RGB white maps to %v instead of %v", ErrVerification, d.Name, got, white.Vec())
		}
	}
	if diff := d.Forward.Mul(d.Inverse).MaxAbsDiff(colorimetry.Identity()); !(diff <= IdentityTolerance) {
		return fmt.Errorf("%w: %s: Forward * Inverse differs from identity by %g", ErrVerification, d.Name, diff)
	}
	return nil
}

func (d Definition) title() string {
	if d.Description != "" {
		return d.Description
	}
	return d.Name
}

// Format writes the matrices of d in human readable form, suitable for
// cross referencing against published tables.
func (d Definition) Format(w io.Writer) (err error) {
	t := d.title()
	_, err = fmt.Fprintf(w, "%s Forward:\n%s\n\n%s Inverse:\n%s\n",
		t, d.Forward.Format(colorimetry.ForwardPrecision), t, d.Inverse.Format(colorimetry.InversePrecision))
	return
}

func (d Definition) String() string {
	var b strings.Builder
	_ = d.Format(&b)
	return b.String()
}

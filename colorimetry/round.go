package colorimetry

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Decimal places of published RGB to XYZ matrices
	ForwardPrecision = 4
	// Decimal places of published XYZ to RGB matrices. The inverse needs more
	// digits since it has to compensate for the rounding of the forward matrix.
	InversePrecision = 7
)

// RoundHalfAwayFromZero rounds v to the specified number of decimal places,
// rounding halves away from zero. The rounding is done on the shortest
// decimal representation of v that round trips, so 0.00015 rounds to 0.0002
// even though its binary value is slightly below the half. A result of zero
// is always +0. NaN and infinities are returned unchanged.
func RoundHalfAwayFromZero(v float64, places int) float64 {
	if places < 0 {
		panic("RoundHalfAwayFromZero: places must not be negative")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	whole, frac, _ := strings.Cut(strconv.FormatFloat(math.Abs(v), 'f', -1, 64), ".")
	if len(frac) <= places {
		if v == 0 {
			return 0
		}
		return v
	}
	digits := []byte(whole + frac[:places])
	if frac[places] >= '5' {
		i := len(digits) - 1
		for ; i >= 0 && digits[i] == '9'; i-- {
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		} else {
			digits[i]++
		}
	}
	s := string(digits)
	if places > 0 {
		s = s[:len(s)-places] + "." + s[len(s)-places:]
	}
	ans, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	if ans == 0 {
		// normalize -0
		return 0
	}
	return math.Copysign(ans, v)
}

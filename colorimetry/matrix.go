package colorimetry

import (
	"fmt"
	"math"
	"strings"
)

type Vec3 [3]float64

// Mat3 is a row major 3x3 matrix, m[row][col]
type Mat3 [3][3]float64

// Relative determinant magnitude below which a matrix is treated as
// singular. The determinant is compared against the product of the column
// norms, which bounds it from above.
const singular_tolerance = 1e-12

func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m Mat3) Column(i int) Vec3 {
	return Vec3{m[0][i], m[1][i], m[2][i]}
}

func (m Mat3) Mul(o Mat3) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += m[i][k] * o[k][j]
			}
			ans[i][j] = sum
		}
	}
	return
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Mat3) is_singular(det float64) bool {
	bound := 1.0
	for i := range 3 {
		c := m.Column(i)
		bound *= math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
	}
	return math.IsNaN(det) || math.Abs(det) <= singular_tolerance*bound
}

func (m Mat3) adjugate() Mat3 {
	return Mat3{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			m[0][2]*m[2][1] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			m[1][2]*m[2][0] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			m[0][2]*m[1][0] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			m[0][1]*m[2][0] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// Inverted returns the inverse of m computed from its adjugate and
// determinant, without any rounding.
func (m Mat3) Inverted() (ans Mat3, err error) {
	det := m.Det()
	if m.is_singular(det) {
		return ans, fmt.Errorf("%w: determinant is %g", ErrSingularMatrix, det)
	}
	adj := m.adjugate()
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = adj[i][j] / det
		}
	}
	return
}

// Round returns m with every component rounded to the specified number of
// decimal places using RoundHalfAwayFromZero.
func (m Mat3) Round(places int) (ans Mat3) {
	for i := range 3 {
		for j := range 3 {
			ans[i][j] = RoundHalfAwayFromZero(m[i][j], places)
		}
	}
	return
}

// MaxAbsDiff returns the largest absolute component-wise difference between
// m and o, or +Inf if any difference is NaN.
func (m Mat3) MaxAbsDiff(o Mat3) (ans float64) {
	for i := range 3 {
		for j := range 3 {
			d := math.Abs(m[i][j] - o[i][j])
			if math.IsNaN(d) {
				return math.Inf(1)
			}
			ans = max(ans, d)
		}
	}
	return
}

// Format renders m one row per line with the specified number of decimal
// places.
func (m Mat3) Format(places int) string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%*.*f", places+3, places, v)
		}
		b.WriteByte(']')
	}
	return b.String()
}

func (m Mat3) String() string { return m.Format(7) }

package colorimetry

// Gamut is the triangle in the xy chromaticity diagram spanned by the
// three primaries of an RGB color space.
type Gamut struct {
	Red, Green, Blue Chromaticity
}

func edge_sign(p1, p2, p3 Chromaticity) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// Contains reports whether p lies inside or on the boundary of the gamut
// triangle.
func (g Gamut) Contains(p Chromaticity) bool {
	d1 := edge_sign(p, g.Red, g.Green)
	d2 := edge_sign(p, g.Green, g.Blue)
	d3 := edge_sign(p, g.Blue, g.Red)
	has_neg := d1 < 0 || d2 < 0 || d3 < 0
	has_pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(has_neg && has_pos)
}

func closest_point_on_segment(a, b, p Chromaticity) Chromaticity {
	apx, apy := p.X-a.X, p.Y-a.Y
	abx, aby := b.X-a.X, b.Y-a.Y
	length_sq := abx*abx + aby*aby
	if length_sq == 0 {
		return a
	}
	t := (apx*abx + apy*aby) / length_sq
	switch {
	case t < 0:
		return a
	case t > 1:
		return b
	}
	return Chromaticity{X: a.X + abx*t, Y: a.Y + aby*t}
}

func distance_sq(a, b Chromaticity) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// ClosestPoint returns p if it is inside the gamut, otherwise the nearest
// point on the boundary of the gamut triangle.
func (g Gamut) ClosestPoint(p Chromaticity) Chromaticity {
	if g.Contains(p) {
		return p
	}
	candidates := [3]Chromaticity{
		closest_point_on_segment(g.Red, g.Green, p),
		closest_point_on_segment(g.Green, g.Blue, p),
		closest_point_on_segment(g.Blue, g.Red, p),
	}
	ans := candidates[0]
	best := distance_sq(p, ans)
	for _, c := range candidates[1:] {
		if d := distance_sq(p, c); d < best {
			ans, best = c, d
		}
	}
	return ans
}

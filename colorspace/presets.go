package colorspace

import (
	"github.com/kovidgoyal/rgbxyz/colorimetry"
)

// PrimarySet is the chromaticities of the three primaries of an RGB color
// space along with its reference white.
type PrimarySet struct {
	Red, Green, Blue, White colorimetry.Chromaticity
}

func (p PrimarySet) Gamut() colorimetry.Gamut {
	return colorimetry.Gamut{Red: p.Red, Green: p.Green, Blue: p.Blue}
}

// Contains reports whether c is inside the triangle spanned by the primaries.
func (p PrimarySet) Contains(c colorimetry.Chromaticity) bool { return p.Gamut().Contains(c) }

// ClosestPoint returns the chromaticity nearest to c that is inside the
// gamut of the primaries.
func (p PrimarySet) ClosestPoint(c colorimetry.Chromaticity) colorimetry.Chromaticity {
	return p.Gamut().ClosestPoint(c)
}

// A Preset names a PrimarySet from a published standard.
type Preset struct {
	Name        string
	Description string
	Primaries   PrimarySet
}

// CIE standard illuminant D65 as used by sRGB, Display P3, Adobe RGB and
// Rec. 2020.
var d65 = colorimetry.Chromaticity{X: 0.3127, Y: 0.3290}

var (
	// https://en.wikipedia.org/wiki/SRGB#Gamut
	srgb = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.6400, Y: 0.3300},
		Green: colorimetry.Chromaticity{X: 0.3000, Y: 0.6000},
		Blue:  colorimetry.Chromaticity{X: 0.1500, Y: 0.0600},
		White: d65,
	}
	// https://en.wikipedia.org/wiki/DCI-P3#P3_colorimetry
	display_p3 = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.680, Y: 0.320},
		Green: colorimetry.Chromaticity{X: 0.265, Y: 0.690},
		Blue:  colorimetry.Chromaticity{X: 0.150, Y: 0.060},
		White: d65,
	}
	adobe_rgb = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.6400, Y: 0.3300},
		Green: colorimetry.Chromaticity{X: 0.2100, Y: 0.7100},
		Blue:  colorimetry.Chromaticity{X: 0.1500, Y: 0.0600},
		White: d65,
	}
	// ITU-R BT.2020
	rec2020 = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.708, Y: 0.292},
		Green: colorimetry.Chromaticity{X: 0.170, Y: 0.797},
		Blue:  colorimetry.Chromaticity{X: 0.131, Y: 0.046},
		White: d65,
	}
	// Philips Hue gamuts, see
	// https://developers.meethue.com/develop/application-design-guidance/color-conversion-formulas-rgb-to-xy-and-back/#Gamut
	hue_gamut_a = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.704, Y: 0.296},
		Green: colorimetry.Chromaticity{X: 0.2151, Y: 0.7106},
		Blue:  colorimetry.Chromaticity{X: 0.138, Y: 0.08},
		White: d65,
	}
	hue_gamut_b = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.675, Y: 0.322},
		Green: colorimetry.Chromaticity{X: 0.409, Y: 0.518},
		Blue:  colorimetry.Chromaticity{X: 0.167, Y: 0.04},
		White: d65,
	}
	hue_gamut_c = PrimarySet{
		Red:   colorimetry.Chromaticity{X: 0.6915, Y: 0.3038},
		Green: colorimetry.Chromaticity{X: 0.17, Y: 0.7},
		Blue:  colorimetry.Chromaticity{X: 0.1532, Y: 0.0475},
		White: d65,
	}
)

// Presets returns the built-in color spaces in a fresh slice.
func Presets() []Preset {
	return []Preset{
		{"srgb", "sRGB", srgb},
		{"display-p3", "Display P3", display_p3},
		{"adobe-rgb", "Adobe RGB (1998)", adobe_rgb},
		{"rec2020", "Rec. 2020", rec2020},
		{"hue-gamut-a", "Philips Hue Gamut A", hue_gamut_a},
		{"hue-gamut-c", "Philips Hue Gamut C", hue_gamut_c},
	}
}

// HueGamutB returns the primaries of Philips Hue gamut B. D65 lies outside
// this gamut so it is not a preset, Derive fails for it with
// colorimetry.ErrWhiteOutOfGamut. It is still useful with Contains and
// ClosestPoint.
func HueGamutB() PrimarySet { return hue_gamut_b }

// D65 returns the chromaticity of CIE standard illuminant D65.
func D65() colorimetry.Chromaticity { return d65 }

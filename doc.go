/*
Package rgbxyz derives the 3x3 matrices that convert between linear RGB and
CIE XYZ for a set of well known RGB color spaces, anchored to their
reference white.

The derivation itself lives in the colorimetry package and the named color
spaces in the colorspace package. This package provides a process wide
registry of the built-in color spaces, built once on first use.
*/
package rgbxyz

import "fmt"

type RGBXYZVersion struct {
	Major, Minor, Patch uint
}

func (v RGBXYZVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v RGBXYZVersion) Equal(o RGBXYZVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v RGBXYZVersion) After(o RGBXYZVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v RGBXYZVersion) Before(o RGBXYZVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = RGBXYZVersion{1, 0, 0}

package colorspace

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kovidgoyal/rgbxyz/colorimetry"
	"github.com/kovidgoyal/rgbxyz/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestPublished(t *testing.T) {
	for _, tc := range []struct {
		name             string
		forward, inverse colorimetry.Mat3
	}{
		{"srgb",
			colorimetry.Mat3{{0.4124, 0.3576, 0.1805}, {0.2126, 0.7152, 0.0722}, {0.0193, 0.1192, 0.9505}},
			colorimetry.Mat3{{3.2406255, -1.537208, -0.4986286}, {-0.9689307, 1.8757561, 0.0415175}, {0.0557101, -0.2040211, 1.0569959}},
		},
		{"display-p3",
			colorimetry.Mat3{{0.4866, 0.2657, 0.1982}, {0.2290, 0.6917, 0.0793}, {0, 0.0451, 1.0439}},
			colorimetry.Mat3{{2.4934778, -0.9315558, -0.4026582}, {-0.8296208, 1.7628536, 0.0236005}, {0.0358424, -0.0761612, 0.9569265}},
		},
		{"adobe-rgb",
			colorimetry.Mat3{{0.5767, 0.1856, 0.1882}, {0.2973, 0.6274, 0.0753}, {0.0270, 0.0707, 0.9913}},
			colorimetry.Mat3{{2.0414446, -0.5650709, -0.3446485}, {-0.9689806, 1.875854, 0.0414711}, {0.0135054, -0.118396, 1.0152058}},
		},
		{"rec2020",
			colorimetry.Mat3{{0.6370, 0.1446, 0.1689}, {0.2627, 0.6780, 0.0593}, {0, 0.0281, 1.0610}},
			colorimetry.Mat3{{1.7165025, -0.3555847, -0.2533752}, {-0.6666256, 1.6164466, 0.0157755}, {0.0176552, -0.0428107, 0.9420893}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var p PrimarySet
			for _, x := range Presets() {
				if x.Name == tc.name {
					p = x.Primaries
				}
			}
			d, err := Derive(tc.name, p)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.forward, d.Forward, approx); diff != "" {
				t.Fatalf("forward matrix mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.inverse, d.Inverse, approx); diff != "" {
				t.Fatalf("inverse matrix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEveryPresetSatisfiesInvariants(t *testing.T) {
	for _, p := range Presets() {
		t.Run(p.Name, func(t *testing.T) {
			d, err := Derive(p.Name, p.Primaries)
			require.NoError(t, err)
			require.NoError(t, d.Verify())
			assert.True(t, p.Primaries.Contains(p.Primaries.White))
			white, err := colorimetry.ToTristimulus(p.Primaries.White, 1)
			require.NoError(t, err)
			// each column is a primary scaled by a positive factor, so it
			// has the chromaticity of that primary
			for i, c := range []colorimetry.Chromaticity{p.Primaries.Red, p.Primaries.Green, p.Primaries.Blue} {
				col := d.Forward.Column(i)
				got, _ := colorimetry.FromTristimulus(colorimetry.Tristimulus{X: col[0], Y: col[1], Z: col[2]})
				assert.InDelta(t, c.X, got.X, 1e-3, "column %d", i)
				assert.InDelta(t, c.Y, got.Y, 1e-3, "column %d", i)
			}
			w := d.Forward.MulVec(colorimetry.Vec3{1, 1, 1})
			for i, v := range white.Vec() {
				assert.InDelta(t, v, w[i], WhitePointTolerance)
			}
		})
	}
}

func TestDeriveErrors(t *testing.T) {
	t.Run("ZeroY", func(t *testing.T) {
		p := srgb
		p.Green = colorimetry.Chromaticity{X: 0.3, Y: 0}
		d, err := Derive("bad", p)
		require.ErrorIs(t, err, colorimetry.ErrInvalidChromaticity)
		var de *DerivationError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "bad", de.Space)
		assert.Equal(t, StageChromaticity, de.Stage)
		assert.Contains(t, err.Error(), "green")
		assert.Equal(t, Definition{}, d, "no partial definition on failure")
	})
	t.Run("IdenticalPrimaries", func(t *testing.T) {
		c := colorimetry.Chromaticity{X: 0.3, Y: 0.3}
		_, err := Derive("flat", PrimarySet{c, c, c, d65})
		require.ErrorIs(t, err, colorimetry.ErrSingularMatrix)
		var de *DerivationError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, StageSolve, de.Stage)
		assert.True(t, strings.HasPrefix(err.Error(), "flat: white point solve failed: primaries are degenerate: "), err.Error())
	})
	t.Run("HueGamutB", func(t *testing.T) {
		assert.False(t, HueGamutB().Contains(D65()))
		_, err := Derive("hue-gamut-b", HueGamutB())
		require.ErrorIs(t, err, colorimetry.ErrWhiteOutOfGamut)
	})
}

func TestDerivationLogging(t *testing.T) {
	h := logging.NewBufferedHandler(nil)
	logging.SetLogger(slog.New(h))
	t.Cleanup(func() { logging.SetLogger(nil) })
	_, err := Derive("srgb", srgb)
	require.NoError(t, err)
	assert.True(t, h.Contains("DEBUG derived color space space=srgb"), h.String())
	_, err = Derive("hue-gamut-b", hue_gamut_b)
	require.Error(t, err)
	assert.True(t, h.Contains("ERROR color space derivation failed space=hue-gamut-b stage=white point solve"), h.String())
}

func TestRegistry(t *testing.T) {
	serial, err := NewRegistry(Presets(), WithParallelism(1))
	require.NoError(t, err)
	parallel, err := NewRegistry(Presets(), WithParallelism(0))
	require.NoError(t, err)
	if diff := cmp.Diff(serial.Definitions(), parallel.Definitions()); diff != "" {
		t.Fatalf("parallel derivation differs from serial (-serial +parallel):\n%s", diff)
	}
	assert.Equal(t, []string{"srgb", "display-p3", "adobe-rgb", "rec2020", "hue-gamut-a", "hue-gamut-c"}, serial.Names())

	d, found := serial.Lookup("display-p3")
	require.True(t, found)
	assert.Equal(t, "Display P3", d.Description)
	assert.Equal(t, display_p3, d.Primaries)
	_, found = serial.Lookup("display-p4")
	assert.False(t, found)
	assert.Equal(t, d, serial.MustLookup("display-p3"))
	assert.Panics(t, func() { serial.MustLookup("display-p4") })

	defs := serial.Definitions()
	defs[0].Forward[0][0] = 42
	assert.Equal(t, 0.4124, serial.MustLookup("srgb").Forward[0][0], "registry must not be mutable through Definitions")
}

func TestRegistryErrors(t *testing.T) {
	_, err := NewRegistry([]Preset{{Name: "a", Primaries: srgb}, {Name: "a", Primaries: display_p3}})
	require.ErrorIs(t, err, ErrDuplicateName)
	_, err = NewRegistry([]Preset{{Primaries: srgb}})
	require.ErrorIs(t, err, ErrEmptyName)

	h := logging.NewBufferedHandler(slog.LevelError)
	presets := append(Presets(), Preset{Name: "hue-gamut-b", Primaries: hue_gamut_b}, Preset{Name: "broken", Primaries: PrimarySet{}})
	r, err := NewRegistry(presets, WithLogger(slog.New(h)))
	assert.Nil(t, r)
	var de *DerivationError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "hue-gamut-b", de.Space, "first failing preset is reported")
	assert.Len(t, h.Lines(), 2)

	empty, err := NewRegistry(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Names())
}

func TestVerify(t *testing.T) {
	d, err := Derive("srgb", srgb)
	require.NoError(t, err)
	bad := d
	bad.Forward[0][0] += 0.001
	require.ErrorIs(t, bad.Verify(), ErrVerification)
	bad = d
	bad.Inverse[2][2] += 1e-5
	err = bad.Verify()
	require.ErrorIs(t, err, ErrVerification)
	assert.Contains(t, err.Error(), "identity")

	nan_matrix := func() (m colorimetry.Mat3) {
		for i := range 3 {
			for j := range 3 {
				m[i][j] = math.NaN()
			}
		}
		return
	}
	bad = d
	bad.Forward = nan_matrix()
	require.ErrorIs(t, bad.Verify(), ErrVerification)
	bad = d
	bad.Inverse = nan_matrix()
	err = bad.Verify()
	require.ErrorIs(t, err, ErrVerification)
	assert.Contains(t, err.Error(), "identity")
	bad = d
	bad.Inverse[1][2] = math.NaN()
	require.ErrorIs(t, bad.Verify(), ErrVerification)
	require.NoError(t, d.Verify())
}

func TestFormat(t *testing.T) {
	d, err := Derive("srgb", srgb)
	require.NoError(t, err)
	d.Description = "sRGB"
	expected := `sRGB Forward:
[ 0.4124,  0.3576,  0.1805]
[ 0.2126,  0.7152,  0.0722]
[ 0.0193,  0.1192,  0.9505]

sRGB Inverse:
[ 3.2406255, -1.5372080, -0.4986286]
[-0.9689307,  1.8757561,  0.0415175]
[ 0.0557101, -0.2040211,  1.0569959]
`
	assert.Equal(t, expected, d.String())
	var b strings.Builder
	require.NoError(t, d.Format(&b))
	assert.Equal(t, expected, b.String())
}

func TestClosestPoint(t *testing.T) {
	outside := colorimetry.Chromaticity{X: 0.1, Y: 0.8}
	require.False(t, srgb.Contains(outside))
	p := srgb.ClosestPoint(outside)
	assert.Equal(t, srgb.Green, p)
	assert.Equal(t, d65, srgb.ClosestPoint(d65))
}

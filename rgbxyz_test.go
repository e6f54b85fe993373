package rgbxyz

import (
	"testing"

	"github.com/kovidgoyal/rgbxyz/colorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	r2, err := Default()
	require.NoError(t, err)
	assert.Same(t, r, r2, "registry must be built only once")

	d, err := Lookup("srgb")
	require.NoError(t, err)
	assert.Equal(t, 0.2126, d.Forward[1][0])
	require.NoError(t, d.Verify())

	_, err = Lookup("no-such-space")
	require.ErrorIs(t, err, colorspace.ErrUnknownSpace)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", Version.String())
	assert.True(t, Version.After(RGBXYZVersion{0, 9, 9}))
	assert.True(t, Version.Before(RGBXYZVersion{1, 0, 1}))
	assert.False(t, Version.Before(Version))
	assert.True(t, Version.Equal(RGBXYZVersion{1, 0, 0}))
}

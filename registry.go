package rgbxyz

import (
	"fmt"
	"sync"

	"github.com/kovidgoyal/rgbxyz/colorspace"
)

// Default returns the registry of built-in color spaces. It is derived on
// the first call and the same registry, or error, is returned thereafter.
var Default = sync.OnceValues(func() (*colorspace.Registry, error) {
	return colorspace.NewRegistry(colorspace.Presets())
})

// Lookup returns the definition of the named built-in color space.
func Lookup(name string) (colorspace.Definition, error) {
	r, err := Default()
	if err != nil {
		return colorspace.Definition{}, err
	}
	d, found := r.Lookup(name)
	if !found {
		return d, fmt.Errorf("%w: %s", colorspace.ErrUnknownSpace, name)
	}
	return d, nil
}

package colorspace

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kovidgoyal/go-parallel"
	"github.com/kovidgoyal/rgbxyz/logging"
)

var (
	ErrEmptyName     = errors.New("color space name must not be empty")
	ErrDuplicateName = errors.New("duplicate color space name")
	ErrUnknownSpace  = errors.New("unknown color space")
)

// Registry holds the derived definitions of a set of presets. It is
// immutable once created and safe for concurrent use.
type Registry struct {
	definitions []Definition
	by_name     map[string]int
}

type options struct {
	parallelism int
	logger      *slog.Logger
}

type Option func(*options)

// WithParallelism sets the number of goroutines used to derive presets.
// Zero, the default, means one per CPU and one derives serially.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = max(0, n) }
}

// WithLogger sets the logger used while building the registry, replacing
// logging.Logger() for this registry.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewRegistry derives the matrices for every preset. Derivation stops at
// the first preset, in order, that fails and no registry is returned.
func NewRegistry(presets []Preset, opts ...Option) (*Registry, error) {
	o := options{}
	for _, f := range opts {
		f(&o)
	}
	log := o.logger
	if log == nil {
		log = logging.Logger()
	}
	r := &Registry{definitions: make([]Definition, len(presets)), by_name: make(map[string]int, len(presets))}
	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: %w", i, ErrEmptyName)
		}
		if _, found := r.by_name[p.Name]; found {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		r.by_name[p.Name] = i
	}
	errs := make([]error, len(presets))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			p := presets[i]
			d, err := derive(p.Name, p.Primaries, log)
			if err != nil {
				errs[i] = err
				continue
			}
			d.Description = p.Description
			r.definitions[i] = d
		}
	}
	if o.parallelism == 1 || len(presets) < 2 {
		f(0, len(presets))
	} else if err := parallel.Run_in_parallel_over_range(o.parallelism, f, 0, len(presets)); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	log.Debug("built color space registry", "count", len(presets))
	return r, nil
}

// Lookup returns the definition for the named color space.
func (r *Registry) Lookup(name string) (Definition, bool) {
	if i, found := r.by_name[name]; found {
		return r.definitions[i], true
	}
	return Definition{}, false
}

// MustLookup is like Lookup but panics if there is no such color space.
func (r *Registry) MustLookup(name string) Definition {
	d, found := r.Lookup(name)
	if !found {
		panic(fmt.Sprintf("%s: %s", ErrUnknownSpace, name))
	}
	return d
}

// Names returns the names of all color spaces in preset order.
func (r *Registry) Names() []string {
	ans := make([]string, len(r.definitions))
	for i, d := range r.definitions {
		ans[i] = d.Name
	}
	return ans
}

// Definitions returns a copy of all definitions in preset order.
func (r *Registry) Definitions() []Definition {
	return append([]Definition(nil), r.definitions...)
}

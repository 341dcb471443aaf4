// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import "sync"

// Factory creates a surface of one kind. Implementations validate the
// options and return descriptive errors.
type Factory func(opts Options) (Surface, error)

// registry maps surface kinds to factories.
//
// The built-in kinds (image, svg, pdf) register themselves in init below.
// Third-party backends register additional kinds the same way, without
// changes to the core:
//
//	func init() {
//	    surface.Register("tiff", newTIFFSurface)
//	}
type registry struct {
	mu        sync.RWMutex
	factories map[Kind]Factory
}

var global = &registry{}

// Register adds a factory for a kind to the global registry.
// Registering a kind that already exists replaces the previous factory.
func Register(kind Kind, factory Factory) {
	global.register(kind, factory)
}

// Kinds returns the registered kind names.
func Kinds() []Kind {
	return global.kinds()
}

// New creates a surface of the given kind.
func New(kind Kind, opts Options) (Surface, error) {
	return global.new(kind, opts)
}

func (r *registry) register(kind Kind, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.factories == nil {
		r.factories = make(map[Kind]Factory)
	}
	r.factories[kind] = factory
}

func (r *registry) kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	return out
}

func (r *registry) new(kind Kind, opts Options) (Surface, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, &KindNotFoundError{Kind: kind}
	}
	return factory(opts)
}

// KindNotFoundError indicates a surface kind with no registered factory.
type KindNotFoundError struct {
	Kind Kind
}

func (e *KindNotFoundError) Error() string {
	return "surface: no factory for kind: " + string(e.Kind)
}

// InvalidSizeError indicates non-positive surface dimensions.
type InvalidSizeError struct {
	Width, Height int
}

func (e *InvalidSizeError) Error() string {
	return "surface: invalid dimensions"
}

func checkSize(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return &InvalidSizeError{Width: opts.Width, Height: opts.Height}
	}
	return nil
}

// init registers the built-in surface kinds.
func init() {
	Register(KindImage, newRasterSurface)
	Register(KindSVG, newSVGSurface)
	Register(KindPDF, newPDFSurface)
}

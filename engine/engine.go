// Package engine holds the per-canvas chart engine state: the plugin
// registry and the font registry.
//
// Each canvas owns one Engine. Nothing in this package is process-global, so
// two canvases configured with different plugins or fonts never observe each
// other's registrations.
package engine

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/golang/freetype/truetype"
)

// Engine is the mutable registration state behind one canvas.
//
// Engine is safe for concurrent use: registries are lock-guarded, and the
// render path only reads.
type Engine struct {
	mu sync.RWMutex

	log *slog.Logger

	plugins []Plugin

	fonts       map[fontKey]*truetype.Font
	defaultFont *truetype.Font
}

// Option configures an Engine during creation.
type Option func(*Engine)

// WithLogger sets the logger the engine reports registrations to.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		fonts: make(map[fontKey]*truetype.Font),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ErrNilPlugin is returned when a nil plugin is registered.
var ErrNilPlugin = errors.New("engine: plugin must not be nil")

// RegisterPlugin adds a plugin to the engine. Plugins run in registration
// order; registering a plugin whose Name matches an existing one replaces it
// in place.
func (e *Engine) RegisterPlugin(p Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, existing := range e.plugins {
		if existing.Name() == p.Name() {
			e.plugins[i] = p
			e.log.Debug("plugin replaced", "name", p.Name())
			return nil
		}
	}
	e.plugins = append(e.plugins, p)
	e.log.Debug("plugin registered", "name", p.Name())
	return nil
}

// Plugins returns the registered plugins in registration order.
func (e *Engine) Plugins() []Plugin {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Plugin, len(e.plugins))
	copy(out, e.plugins)
	return out
}

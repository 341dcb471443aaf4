package chartcanvas

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chartcanvas/chartcanvas/engine"
	"github.com/chartcanvas/chartcanvas/internal/dataurl"
	"github.com/chartcanvas/chartcanvas/surface"
)

// Render errors.
var (
	// ErrNilConfiguration is returned when a render call receives no chart.
	ErrNilConfiguration = errors.New("chartcanvas: configuration must not be nil")

	// ErrSurfaceDetached reports that the chart engine returned without
	// ever attaching to the render surface. This signals an internal bug
	// or a broken Configuration implementation, not a user error.
	ErrSurfaceDetached = errors.New("chartcanvas: chart engine never attached to the render surface")

	// ErrRawDataURL is returned when raw pixel output is requested as a
	// data URL; raw output has no container format to declare.
	ErrRawDataURL = errors.New("chartcanvas: raw pixel output cannot be a data URL")
)

// Canvas renders chart configurations at fixed dimensions. Each Canvas owns
// its engine state (plugins, fonts); instances never share registrations.
//
// Render calls are independent and allocate a fresh surface each time, so a
// Canvas is safe for concurrent use once constructed.
type Canvas struct {
	width   int
	height  int
	kind    surface.Kind
	quality int
	engine  *engine.Engine
	log     *slog.Logger
}

// New creates a Canvas. It fails with ErrInvalidWidth or ErrInvalidHeight
// before anything else happens; on success the engine is initialized once:
// declared plugins are registered, the EngineInit hook runs, and the
// background-fill plugin is registered last.
func New(opts Options) (*Canvas, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	log := Logger()
	eng := engine.New(engine.WithLogger(log))

	for _, p := range opts.Plugins {
		if err := eng.RegisterPlugin(p); err != nil {
			return nil, err
		}
	}
	if opts.EngineInit != nil {
		if err := opts.EngineInit(eng); err != nil {
			return nil, fmt.Errorf("chartcanvas: engine init: %w", err)
		}
	}
	if err := eng.RegisterPlugin(NewBackgroundFill(opts.Width, opts.Height, opts.BackgroundColor)); err != nil {
		return nil, err
	}

	return &Canvas{
		width:   opts.Width,
		height:  opts.Height,
		kind:    surface.ParseKind(opts.Type),
		quality: opts.JPEGQuality,
		engine:  eng,
		log:     log,
	}, nil
}

// Width returns the render width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the render height in pixels.
func (c *Canvas) Height() int { return c.height }

// Kind returns the canvas's surface kind.
func (c *Canvas) Kind() Kind { return c.kind }

// Engine returns the canvas's engine for further registrations.
func (c *Canvas) Engine() *engine.Engine { return c.engine }

// RegisterFont registers a TrueType font file with the canvas's font
// registry so chart text can reference the family by name. Register fonts
// before rendering charts that need them.
func (c *Canvas) RegisterFont(path string, opts engine.FontOptions) error {
	return c.engine.RegisterFont(path, opts)
}

// RenderToBuffer paints cfg and returns the encoded bytes. An empty mime
// selects the canvas kind's default encoding (PNG for raster canvases).
// Painting and encoding complete before the call returns.
func (c *Canvas) RenderToBuffer(cfg Configuration, mime MimeType) ([]byte, error) {
	return c.RenderToBufferContext(context.Background(), cfg, mime)
}

// RenderToBufferContext is RenderToBuffer observing ctx. Painting itself is
// uninterruptible once started; cancellation is checked between the
// allocate, paint, and encode stages.
func (c *Canvas) RenderToBufferContext(ctx context.Context, cfg Configuration, mime MimeType) ([]byte, error) {
	data, _, err := c.render(ctx, cfg, mime)
	return data, err
}

// RenderToDataURL paints cfg and returns a base64 data URL declaring the
// encoded mime type. Raw pixel output is rejected.
func (c *Canvas) RenderToDataURL(cfg Configuration, mime MimeType) (string, error) {
	return c.RenderToDataURLContext(context.Background(), cfg, mime)
}

// RenderToDataURLContext is RenderToDataURL observing ctx.
func (c *Canvas) RenderToDataURLContext(ctx context.Context, cfg Configuration, mime MimeType) (string, error) {
	data, used, err := c.render(ctx, cfg, mime)
	if err != nil {
		return "", err
	}
	if used == MimeRaw {
		return "", ErrRawDataURL
	}
	return dataurl.Encode(string(used), data), nil
}

// render is the whole pipeline: allocate a surface, paint the sized
// configuration copy through the engine, verify the engine attached, and
// encode. Engine and encoder failures propagate unchanged.
func (c *Canvas) render(ctx context.Context, cfg Configuration, mime MimeType) ([]byte, MimeType, error) {
	if cfg == nil {
		return nil, "", ErrNilConfiguration
	}
	if mime == "" {
		mime = c.kind.DefaultMime()
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	s, err := surface.New(c.kind, surface.Options{
		Width:       c.width,
		Height:      c.height,
		JPEGQuality: c.quality,
	})
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = s.Close()
	}()

	sized := sizedConfig(cfg, c.width, c.height, c.engine.DefaultFont())
	if err := sized.Render(s.Provider(c.hooks()), s.Sink()); err != nil {
		return nil, "", err
	}
	if !s.Painted() {
		return nil, "", ErrSurfaceDetached
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	data, err := s.Encode(mime)
	if err != nil {
		return nil, "", err
	}
	c.log.Debug("render complete",
		"kind", string(c.kind), "mime", string(mime), "bytes", len(data))
	return data, mime, nil
}

// hooks flattens the engine's plugins into surface lifecycle hooks.
func (c *Canvas) hooks() surface.Hooks {
	plugins := c.engine.Plugins()
	h := surface.Hooks{
		Before: make([]surface.Hook, 0, len(plugins)),
		After:  make([]surface.Hook, 0, len(plugins)),
	}
	for _, p := range plugins {
		h.Before = append(h.Before, p.BeforeDraw)
		h.After = append(h.After, p.AfterDraw)
	}
	return h
}

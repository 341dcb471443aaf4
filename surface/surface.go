// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Surface is a single-use, fixed-size render target for one chart paint.
//
// Lifecycle: create via New, hand Provider to the chart definition's Render
// call (painting happens inside that call), check Painted, then Encode.
// A surface is never reused across renders.
type Surface interface {
	// Kind returns the surface kind.
	Kind() Kind

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Provider returns the renderer provider the chart engine paints
	// through. The hooks run inside the paint: Before hooks as soon as the
	// engine attaches (ahead of any chart drawing), After hooks once the
	// chart has finished but before any engine-side save step.
	Provider(hooks Hooks) chart.RendererProvider

	// Sink is the writer handed to the engine's Render call. Raster
	// surfaces keep their pixels and discard the engine's save output;
	// vector surfaces capture it here.
	Sink() io.Writer

	// Painted reports whether the chart engine attached to this surface.
	// False after a Render call means the engine never requested a
	// renderer, which callers treat as an internal invariant violation.
	Painted() bool

	// Encode returns the surface contents in the given encoding.
	// An empty mime selects the kind's default.
	Encode(mime MimeType) ([]byte, error)

	// Close releases the surface's buffers. Close is idempotent; using a
	// surface after Close is invalid.
	Close() error
}

// Rasterized is an optional interface for surfaces with pixel access.
type Rasterized interface {
	Surface

	// Snapshot returns a copy of the current pixels.
	Snapshot() *image.RGBA
}

// DrawContext is the drawing API exposed to plugin hooks. It is a deliberate
// sliver of a full drawing context: enough to paint backgrounds and overlays
// without reaching into backend-specific state.
type DrawContext interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Save snapshots the drawing state. Restore undoes everything done
	// since the matching Save, so hooks leave no residual style behind.
	Save()

	// Restore restores the state captured by the matching Save.
	Restore()

	// SetFill sets the fill color for subsequent FillRect calls.
	SetFill(c color.Color)

	// FillRect fills the axis-aligned rectangle with the current fill.
	FillRect(x, y, w, h float64)
}

// Hook is a plugin lifecycle callback. A non-nil error aborts the render.
type Hook func(dc DrawContext) error

// Hooks carries the lifecycle callbacks a surface runs around a chart paint.
type Hooks struct {
	Before []Hook
	After  []Hook
}

func (h Hooks) runBefore(dc DrawContext) error {
	for _, fn := range h.Before {
		if err := fn(dc); err != nil {
			return err
		}
	}
	return nil
}

func (h Hooks) runAfter(dc DrawContext) error {
	for _, fn := range h.After {
		if err := fn(dc); err != nil {
			return err
		}
	}
	return nil
}

// Errors.
var (
	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrNotPainted is returned by Encode when no chart was painted onto
	// the surface.
	ErrNotPainted = errors.New("surface: nothing painted")
)

// UnsupportedMimeError indicates a mime type the surface kind cannot encode.
type UnsupportedMimeError struct {
	Kind Kind
	Mime MimeType
}

func (e *UnsupportedMimeError) Error() string {
	return "surface: kind " + string(e.Kind) + " cannot encode " + string(e.Mime)
}

package chartcanvas

import (
	"errors"
	"image/color"

	"github.com/chartcanvas/chartcanvas/engine"
	"github.com/chartcanvas/chartcanvas/surface"
)

// Options configure a Canvas. Width and Height are required; everything
// else has a usable zero value.
type Options struct {
	// Width is the render width in pixels. Must be positive.
	Width int

	// Height is the render height in pixels. Must be positive.
	Height int

	// Type selects the output surface: "pdf", "svg", or anything else
	// (including empty) for raster. Matching is case-insensitive.
	Type string

	// EngineInit, when set, runs once during New with the canvas's engine,
	// before the background-fill plugin is registered. Use it to register
	// fonts or additional plugins. A non-nil error fails construction.
	EngineInit func(e *engine.Engine) error

	// Plugins are registered on the engine during New, in order, before
	// EngineInit runs.
	Plugins []engine.Plugin

	// BackgroundColor is the fill painted behind every chart.
	// Nil means opaque white.
	BackgroundColor color.Color

	// JPEGQuality is used when encoding MimeJPEG, 1..100.
	// Zero selects surface.DefaultJPEGQuality.
	JPEGQuality int
}

// Construction errors.
var (
	// ErrInvalidWidth is returned by New when Options.Width is not positive.
	ErrInvalidWidth = errors.New("chartcanvas: width must be a positive number of pixels")

	// ErrInvalidHeight is returned by New when Options.Height is not positive.
	ErrInvalidHeight = errors.New("chartcanvas: height must be a positive number of pixels")
)

func (o Options) validate() error {
	if o.Width <= 0 {
		return ErrInvalidWidth
	}
	if o.Height <= 0 {
		return ErrInvalidHeight
	}
	return nil
}

// Kind re-exports the surface kind type for callers that only import the
// root package.
type Kind = surface.Kind

// MimeType re-exports the surface mime type.
type MimeType = surface.MimeType

// Re-exported output encodings.
const (
	MimePNG  = surface.MimePNG
	MimeJPEG = surface.MimeJPEG
	MimeRaw  = surface.MimeRaw
	MimeSVG  = surface.MimeSVG
	MimePDF  = surface.MimePDF
)

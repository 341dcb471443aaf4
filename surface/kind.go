// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import "strings"

// Kind identifies a surface backend.
type Kind string

const (
	// KindImage is the default raster surface.
	KindImage Kind = "image"

	// KindSVG produces SVG markup through the chart engine's vector renderer.
	KindSVG Kind = "svg"

	// KindPDF rasterizes the chart and wraps it into a single-page PDF.
	KindPDF Kind = "pdf"
)

// ParseKind maps a caller-supplied type string to a surface kind.
// Matching is case-insensitive; anything other than "pdf" or "svg"
// (including the empty string) selects the raster surface.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindPDF):
		return KindPDF
	case string(KindSVG):
		return KindSVG
	default:
		return KindImage
	}
}

// MimeType selects the encoding of a surface's output.
type MimeType string

const (
	// MimePNG encodes lossless PNG bytes.
	MimePNG MimeType = "image/png"

	// MimeJPEG encodes lossy JPEG bytes.
	MimeJPEG MimeType = "image/jpeg"

	// MimeRaw returns unencoded RGBA pixel data, 4 bytes per pixel in row
	// order. Raw output has no container format and cannot become a data URL.
	MimeRaw MimeType = "raw"

	// MimeSVG returns SVG markup.
	MimeSVG MimeType = "image/svg+xml"

	// MimePDF returns a PDF document.
	MimePDF MimeType = "application/pdf"
)

// DefaultMime returns the encoding a kind produces when the caller does not
// ask for one.
func (k Kind) DefaultMime() MimeType {
	switch k {
	case KindSVG:
		return MimeSVG
	case KindPDF:
		return MimePDF
	default:
		return MimePNG
	}
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels. Must be positive.
	Width int

	// Height is the surface height in pixels. Must be positive.
	Height int

	// JPEGQuality is the quality used for JPEG encoding, 1..100.
	// Zero selects DefaultJPEGQuality.
	JPEGQuality int
}

// DefaultJPEGQuality is used when Options.JPEGQuality is zero.
const DefaultJPEGQuality = 90

func (o Options) jpegQuality() int {
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		return DefaultJPEGQuality
	}
	return o.JPEGQuality
}

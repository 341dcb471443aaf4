// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

// Package surface provides the off-screen drawing surfaces charts render to.
//
// A Surface is a fixed-size render target the chart engine attaches to
// through a renderer provider, and which can afterwards encode its contents
// to bytes. Three kinds are built in:
//
//   - KindImage: a raster surface backed by a fogleman/gg drawing context.
//     Encodes PNG, JPEG, or raw RGBA pixels.
//   - KindSVG: the chart engine's own vector renderer, captured to markup.
//   - KindPDF: a raster surface whose encode step wraps the pixels into a
//     single-page PDF.
//
// Additional kinds can be registered:
//
//	surface.Register("tiff", func(opts surface.Options) (surface.Surface, error) {
//	    return newTIFFSurface(opts)
//	})
//
// Surfaces are single-use: one chart paint, one encode. They are not safe
// for concurrent use; callers allocate a fresh surface per render.
package surface

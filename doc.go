// Package chartcanvas renders declarative chart definitions to image bytes
// without a display.
//
// # Overview
//
// chartcanvas is a thin façade over two collaborators: the go-chart engine
// (layout and painting) and an off-screen drawing surface (rasterization and
// encoding). It allocates a fixed-size surface, lets the engine paint onto
// it, and hands back encoded bytes or a data URL. There is no scheduler, no
// persistent state, and no network surface.
//
// # Quick Start
//
//	import (
//	    "github.com/chartcanvas/chartcanvas"
//	    chart "github.com/wcharczuk/go-chart/v2"
//	)
//
//	cv, err := chartcanvas.New(chartcanvas.Options{Width: 400, Height: 300})
//	if err != nil {
//	    // invalid dimensions
//	}
//
//	png, err := cv.RenderToBuffer(chart.Chart{
//	    Series: []chart.Series{
//	        chart.ContinuousSeries{
//	            XValues: []float64{1, 2, 3},
//	            YValues: []float64{1, 4, 9},
//	        },
//	    },
//	}, chartcanvas.MimePNG)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Options, BackgroundFill
//   - engine: per-canvas plugin and font registries
//   - surface: drawing surfaces (raster, SVG, PDF) and their kind registry
//
// Each Canvas owns its engine state. Two Canvas instances never share plugin
// or font registrations, so they can be configured and used independently in
// the same process, including concurrently.
//
// # Output
//
// Raster canvases encode PNG (default), JPEG, or raw RGBA pixels. The "svg"
// and "pdf" canvas kinds produce SVG markup and single-page PDF documents.
// Any output can also be returned as a base64 data URL.
package chartcanvas

// Version is the current version of the library.
const Version = "0.1.0"

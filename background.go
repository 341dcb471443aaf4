package chartcanvas

import (
	"image/color"

	"github.com/chartcanvas/chartcanvas/surface"
)

// BackgroundFillName is the registration name of the background plugin.
// Registering another plugin under this name replaces the default fill.
const BackgroundFillName = "background-fill"

// BackgroundFill paints an opaque rectangle behind every chart. Off-screen
// surfaces start transparent; this restores an opaque default for raster
// export. The fill runs before the chart draws, so any background styling in
// the chart configuration itself paints over it.
type BackgroundFill struct {
	width  int
	height int
	fill   color.Color
}

// NewBackgroundFill creates a background plugin covering (0,0)-(width,height)
// with fill. A nil fill means opaque white.
func NewBackgroundFill(width, height int, fill color.Color) *BackgroundFill {
	if fill == nil {
		fill = color.White
	}
	return &BackgroundFill{width: width, height: height, fill: fill}
}

// Name implements engine.Plugin.
func (p *BackgroundFill) Name() string { return BackgroundFillName }

// BeforeDraw fills the full surface area, restoring the drawing state
// afterwards so no style change leaks into the chart's own drawing.
func (p *BackgroundFill) BeforeDraw(dc surface.DrawContext) error {
	dc.Save()
	defer dc.Restore()

	dc.SetFill(p.fill)
	dc.FillRect(0, 0, float64(p.width), float64(p.height))
	return nil
}

// AfterDraw implements engine.Plugin.
func (p *BackgroundFill) AfterDraw(surface.DrawContext) error { return nil }

// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	xfont "golang.org/x/image/font"
)

// chartRenderer adapts a gg drawing context to the chart engine's Renderer
// contract, so the engine paints directly onto the raster surface's pixels.
//
// The engine sets style state (colors, widths, fonts) ahead of each drawing
// call; the adapter holds that state and applies it to gg per operation,
// since gg keeps a single current color rather than separate stroke/fill/
// font colors.
type chartRenderer struct {
	dc *gg.Context

	dpi float64

	strokeColor drawing.Color
	fillColor   drawing.Color
	strokeWidth float64
	dash        []float64

	font      *truetype.Font
	fontColor drawing.Color
	fontSize  float64

	rotation float64
	rotated  bool

	// face cache; rebuilt when font, size, or DPI change.
	faceFont *truetype.Font
	faceSize float64
	faceDPI  float64
}

func newChartRenderer(dc *gg.Context) *chartRenderer {
	return &chartRenderer{dc: dc, dpi: chart.DefaultDPI}
}

func (r *chartRenderer) ResetStyle() {
	r.strokeColor = drawing.Color{}
	r.fillColor = drawing.Color{}
	r.strokeWidth = 0
	r.dash = nil
	r.fontColor = drawing.Color{}
	r.ClearTextRotation()
}

func (r *chartRenderer) GetDPI() float64 { return r.dpi }

func (r *chartRenderer) SetDPI(dpi float64) { r.dpi = dpi }

// SetClassName is an SVG concept; the raster surface ignores it.
func (r *chartRenderer) SetClassName(string) {}

func (r *chartRenderer) SetStrokeColor(c drawing.Color) { r.strokeColor = c }

func (r *chartRenderer) SetFillColor(c drawing.Color) { r.fillColor = c }

func (r *chartRenderer) SetStrokeWidth(width float64) { r.strokeWidth = width }

func (r *chartRenderer) SetStrokeDashArray(dashArray []float64) {
	r.dash = append(r.dash[:0], dashArray...)
}

func (r *chartRenderer) MoveTo(x, y int) {
	r.dc.MoveTo(float64(x), float64(y))
}

func (r *chartRenderer) LineTo(x, y int) {
	r.dc.LineTo(float64(x), float64(y))
}

func (r *chartRenderer) QuadCurveTo(cx, cy, x, y int) {
	r.dc.QuadraticTo(float64(cx), float64(cy), float64(x), float64(y))
}

func (r *chartRenderer) ArcTo(cx, cy int, rx, ry, startAngle, delta float64) {
	r.dc.DrawEllipticalArc(float64(cx), float64(cy), rx, ry, startAngle, startAngle+delta)
}

func (r *chartRenderer) Close() {
	r.dc.ClosePath()
}

func (r *chartRenderer) Stroke() {
	r.applyStroke()
	r.dc.Stroke()
}

func (r *chartRenderer) Fill() {
	r.dc.SetColor(nrgba(r.fillColor))
	r.dc.Fill()
}

func (r *chartRenderer) FillStroke() {
	r.dc.SetColor(nrgba(r.fillColor))
	r.dc.FillPreserve()
	r.applyStroke()
	r.dc.Stroke()
}

func (r *chartRenderer) Circle(radius float64, x, y int) {
	r.dc.DrawCircle(float64(x), float64(y), radius)
}

func (r *chartRenderer) SetFont(f *truetype.Font) { r.font = f }

func (r *chartRenderer) SetFontColor(c drawing.Color) { r.fontColor = c }

func (r *chartRenderer) SetFontSize(size float64) { r.fontSize = size }

func (r *chartRenderer) Text(body string, x, y int) {
	r.ensureFace()
	r.dc.SetColor(nrgba(r.fontColor))
	fx, fy := float64(x), float64(y)
	if r.rotated {
		r.dc.Push()
		r.dc.RotateAbout(r.rotation, fx, fy)
		r.dc.DrawString(body, fx, fy)
		r.dc.Pop()
		return
	}
	r.dc.DrawString(body, fx, fy)
}

func (r *chartRenderer) MeasureText(body string) chart.Box {
	r.ensureFace()
	w, h := r.dc.MeasureString(body)
	box := chart.Box{
		Right:  int(math.Ceil(w)),
		Bottom: int(math.Ceil(h)),
	}
	if r.rotated {
		box = box.Corners().Rotate(r.rotation * 180 / math.Pi).Box()
	}
	return box
}

func (r *chartRenderer) SetTextRotation(radians float64) {
	r.rotation = radians
	r.rotated = true
}

func (r *chartRenderer) ClearTextRotation() {
	r.rotation = 0
	r.rotated = false
}

// Save satisfies the engine's save step. The surface owns its pixels and
// encodes them after plugin hooks have run, so nothing is written here.
func (r *chartRenderer) Save(io.Writer) error { return nil }

func (r *chartRenderer) applyStroke() {
	r.dc.SetColor(nrgba(r.strokeColor))
	width := r.strokeWidth
	if width <= 0 {
		width = 1
	}
	r.dc.SetLineWidth(width)
	if len(r.dash) > 0 {
		r.dc.SetDash(r.dash...)
	} else {
		r.dc.SetDash()
	}
}

// ensureFace installs a font face matching the current font, size, and DPI.
// Without a registered font the gg context keeps its built-in face, so text
// still measures and draws.
func (r *chartRenderer) ensureFace() {
	if r.font == nil {
		return
	}
	size := r.fontSize
	if size <= 0 {
		size = chart.DefaultFontSize
	}
	if r.faceFont == r.font && r.faceSize == size && r.faceDPI == r.dpi {
		return
	}
	face := truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     r.dpi,
		Hinting: xfont.HintingFull,
	})
	r.dc.SetFontFace(face)
	r.faceFont = r.font
	r.faceSize = size
	r.faceDPI = r.dpi
}

func nrgba(c drawing.Color) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

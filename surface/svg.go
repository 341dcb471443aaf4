// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"image/color"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// svgSurface captures the chart engine's own vector renderer. The engine
// accumulates vector elements and writes the complete markup during its save
// step, so the surface's sink is the byte buffer Encode later returns.
type svgSurface struct {
	width, height int
	buf           bytes.Buffer
	painted       bool
	closed        bool
}

func newSVGSurface(opts Options) (Surface, error) {
	if err := checkSize(opts); err != nil {
		return nil, err
	}
	return &svgSurface{width: opts.Width, height: opts.Height}, nil
}

func (s *svgSurface) Kind() Kind { return KindSVG }

func (s *svgSurface) Width() int { return s.width }

func (s *svgSurface) Height() int { return s.height }

func (s *svgSurface) Provider(hooks Hooks) chart.RendererProvider {
	return func(width, height int) (chart.Renderer, error) {
		if s.closed {
			return nil, ErrClosed
		}
		inner, err := chart.SVG(width, height)
		if err != nil {
			return nil, err
		}
		s.painted = true
		dc := &vectorDraw{r: inner, width: s.width, height: s.height}
		if err := hooks.runBefore(dc); err != nil {
			return nil, err
		}
		return &afterHookRenderer{Renderer: inner, hooks: hooks, dc: dc}, nil
	}
}

func (s *svgSurface) Sink() io.Writer { return &s.buf }

func (s *svgSurface) Painted() bool { return s.painted }

func (s *svgSurface) Encode(mime MimeType) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if mime == "" {
		mime = MimeSVG
	}
	if mime != MimeSVG {
		return nil, &UnsupportedMimeError{Kind: KindSVG, Mime: mime}
	}
	if s.buf.Len() == 0 {
		return nil, ErrNotPainted
	}
	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	return out, nil
}

func (s *svgSurface) Close() error {
	s.closed = true
	s.buf.Reset()
	return nil
}

// vectorDraw exposes the plugin drawing API over an engine vector renderer.
// The renderer keeps no state stack, so Restore maps to a style reset; the
// net effect is the same, no residual style leaks into the chart's drawing.
type vectorDraw struct {
	r             chart.Renderer
	width, height int
}

func (d *vectorDraw) Size() (int, int) { return d.width, d.height }

func (d *vectorDraw) Save() {}

func (d *vectorDraw) Restore() { d.r.ResetStyle() }

func (d *vectorDraw) SetFill(c color.Color) {
	r, g, b, a := c.RGBA()
	d.r.SetFillColor(drawing.Color{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	})
}

func (d *vectorDraw) FillRect(x, y, w, h float64) {
	d.r.MoveTo(int(x), int(y))
	d.r.LineTo(int(x+w), int(y))
	d.r.LineTo(int(x+w), int(y+h))
	d.r.LineTo(int(x), int(y+h))
	d.r.Close()
	d.r.Fill()
}

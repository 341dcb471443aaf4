// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	chart "github.com/wcharczuk/go-chart/v2"
)

// rasterSurface is the default surface: a gg drawing context over an
// in-memory RGBA buffer. The chart engine paints through the chartRenderer
// adapter; encoding reads the pixels back out.
type rasterSurface struct {
	width, height int
	quality       int
	dc            *gg.Context
	painted       bool
	closed        bool
}

func newRasterSurface(opts Options) (Surface, error) {
	if err := checkSize(opts); err != nil {
		return nil, err
	}
	return &rasterSurface{
		width:   opts.Width,
		height:  opts.Height,
		quality: opts.jpegQuality(),
		dc:      gg.NewContext(opts.Width, opts.Height),
	}, nil
}

func (s *rasterSurface) Kind() Kind { return KindImage }

func (s *rasterSurface) Width() int { return s.width }

func (s *rasterSurface) Height() int { return s.height }

func (s *rasterSurface) Provider(hooks Hooks) chart.RendererProvider {
	return func(int, int) (chart.Renderer, error) {
		if s.closed {
			return nil, ErrClosed
		}
		s.painted = true
		dc := &rasterDraw{s: s}
		if err := hooks.runBefore(dc); err != nil {
			return nil, err
		}
		return &afterHookRenderer{Renderer: newChartRenderer(s.dc), hooks: hooks, dc: dc}, nil
	}
}

// Sink discards the engine's save output; pixels are encoded from the
// surface itself.
func (s *rasterSurface) Sink() io.Writer { return io.Discard }

func (s *rasterSurface) Painted() bool { return s.painted }

func (s *rasterSurface) Encode(mime MimeType) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if mime == "" {
		mime = MimePNG
	}
	pm := FromImage(s.dc.Image())
	switch mime {
	case MimePNG:
		return pm.EncodePNG()
	case MimeJPEG:
		return pm.EncodeJPEG(s.quality)
	case MimeRaw:
		return pm.Data(), nil
	default:
		return nil, &UnsupportedMimeError{Kind: KindImage, Mime: mime}
	}
}

func (s *rasterSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	return FromImage(s.dc.Image()).Image()
}

func (s *rasterSurface) Close() error {
	s.closed = true
	s.dc = nil
	return nil
}

// rasterDraw exposes the plugin drawing API over the gg context.
type rasterDraw struct {
	s *rasterSurface
}

func (d *rasterDraw) Size() (int, int) { return d.s.width, d.s.height }

func (d *rasterDraw) Save() { d.s.dc.Push() }

func (d *rasterDraw) Restore() { d.s.dc.Pop() }

func (d *rasterDraw) SetFill(c color.Color) { d.s.dc.SetColor(c) }

func (d *rasterDraw) FillRect(x, y, w, h float64) {
	d.s.dc.DrawRectangle(x, y, w, h)
	d.s.dc.Fill()
}

// afterHookRenderer wraps a chart renderer so the After hooks run when the
// engine saves, which is the first moment the chart is fully painted.
type afterHookRenderer struct {
	chart.Renderer
	hooks Hooks
	dc    DrawContext
	done  bool
}

func (r *afterHookRenderer) Save(w io.Writer) error {
	if !r.done {
		r.done = true
		if err := r.hooks.runAfter(r.dc); err != nil {
			return err
		}
	}
	return r.Renderer.Save(w)
}

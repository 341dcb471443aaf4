// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// pdfSurface rasterizes the chart and wraps the pixels into a single-page
// PDF sized to the surface, one PDF point per pixel.
type pdfSurface struct {
	*rasterSurface
}

func newPDFSurface(opts Options) (Surface, error) {
	raster, err := newRasterSurface(opts)
	if err != nil {
		return nil, err
	}
	return &pdfSurface{rasterSurface: raster.(*rasterSurface)}, nil
}

func (s *pdfSurface) Kind() Kind { return KindPDF }

func (s *pdfSurface) Encode(mime MimeType) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if mime == "" {
		mime = MimePDF
	}
	if mime != MimePDF {
		return nil, &UnsupportedMimeError{Kind: KindPDF, Mime: mime}
	}

	png, err := s.rasterSurface.Encode(MimePNG)
	if err != nil {
		return nil, err
	}

	w := float64(s.width)
	h := float64(s.height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.AddPage()
	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("chart", opt, bytes.NewReader(png))
	pdf.ImageOptions("chart", 0, 0, w, h, false, opt, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

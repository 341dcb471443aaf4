// Copyright 2026 The chartcanvas Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// Pixmap is a rectangular RGBA pixel buffer with encode helpers.
// The raster surface exposes its contents through a Pixmap; tests use it to
// probe individual pixels of rendered output.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates an empty (transparent) pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies an image into a new pixmap.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect == pm.img.Rect && rgba.Stride == pm.img.Stride {
		copy(pm.img.Pix, rgba.Pix)
		return pm
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pm.img.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return pm
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.img.Rect.Dx() }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// At returns the color of a single pixel.
func (p *Pixmap) At(x, y int) color.Color { return p.img.At(x, y) }

// Data returns a copy of the raw pixel data, RGBA, 4 bytes per pixel,
// in row order.
func (p *Pixmap) Data() []byte {
	out := make([]byte, len(p.img.Pix))
	copy(out, p.img.Pix)
	return out
}

// Image returns the pixmap contents as a copied image.RGBA.
func (p *Pixmap) Image() *image.RGBA {
	out := image.NewRGBA(p.img.Rect)
	copy(out.Pix, p.img.Pix)
	return out
}

// EncodePNG returns the pixmap as PNG bytes.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJPEG returns the pixmap as JPEG bytes with the given quality (1..100).
func (p *Pixmap) EncodeJPEG(quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, p.img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
)

// FontOptions describe a font registration. All fields are optional: an
// empty Family is read from the font's own name table, and empty Weight or
// Style default to "normal".
type FontOptions struct {
	Family string
	Weight string
	Style  string
}

// ErrUnknownFamily is returned when a font carries no family name and the
// registration did not supply one.
var ErrUnknownFamily = errors.New("engine: font family name missing")

type fontKey struct {
	family string
	weight string
	style  string
}

func newFontKey(family, weight, style string) fontKey {
	norm := func(s, def string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			return def
		}
		return s
	}
	return fontKey{
		family: norm(family, ""),
		weight: norm(weight, "normal"),
		style:  norm(style, "normal"),
	}
}

// RegisterFont parses the TrueType font file at path and registers it under
// the given options. Fonts must be registered before rendering charts whose
// styles reference the family. There is no unregister operation.
func (e *Engine) RegisterFont(path string, opts FontOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("engine: read font %s: %w", path, err)
	}
	return e.RegisterFontData(data, opts)
}

// RegisterFontData registers a font from raw TrueType bytes.
// The first font registered on an engine becomes its default, applied to
// chart configurations that carry no font of their own.
func (e *Engine) RegisterFontData(data []byte, opts FontOptions) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("engine: parse font: %w", err)
	}

	family := opts.Family
	if family == "" {
		family = f.Name(truetype.NameIDFontFamily)
	}
	if family == "" {
		return ErrUnknownFamily
	}

	key := newFontKey(family, opts.Weight, opts.Style)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.fonts[key] = f
	if e.defaultFont == nil {
		e.defaultFont = f
	}
	e.log.Debug("font registered",
		"family", key.family, "weight", key.weight, "style", key.style)
	return nil
}

// Font looks up a registered font. Family matching is case-insensitive;
// empty weight and style mean "normal".
func (e *Engine) Font(family, weight, style string) (*truetype.Font, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	f, ok := e.fonts[newFontKey(family, weight, style)]
	return f, ok
}

// DefaultFont returns the first font registered on this engine, or nil.
func (e *Engine) DefaultFont() *truetype.Font {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.defaultFont
}

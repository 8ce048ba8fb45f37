package graphics

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontMetrics holds the vertical metrics of a font at a given size.
// Descent is positive below the baseline.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m FontMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Font measures text. Canvases that can rasterize glyphs type-assert
// to the concrete implementations they understand.
type Font interface {
	Metrics() FontMetrics
	Advance(s string) float64
	Size() float64
}

// Face is a Font backed by a parsed TrueType/OpenType source.
type Face struct {
	face text.Face
}

// NewFace parses font data and returns a face at the given size in points.
func NewFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("graphics: invalid font size %v", size)
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("graphics: parse font: %w", err)
	}
	return &Face{face: source.Face(size)}, nil
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *text.FontSource
	defaultSourceErr  error
)

// DefaultFace returns the bundled Go Regular font at the given size.
func DefaultFace(size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("graphics: invalid font size %v", size)
	}
	defaultSourceOnce.Do(func() {
		defaultSource, defaultSourceErr = text.NewFontSource(goregular.TTF)
	})
	if defaultSourceErr != nil {
		return nil, fmt.Errorf("graphics: parse default font: %w", defaultSourceErr)
	}
	return &Face{face: defaultSource.Face(size)}, nil
}

// Metrics implements Font.
func (f *Face) Metrics() FontMetrics {
	m := f.face.Metrics()
	return FontMetrics{Ascent: m.Ascent, Descent: m.Descent, LineGap: m.LineGap}
}

// Advance implements Font.
func (f *Face) Advance(s string) float64 {
	return f.face.Advance(s)
}

// Size implements Font.
func (f *Face) Size() float64 {
	return f.face.Size()
}

// FixedFont is a Font with fixed metrics and a constant advance per rune.
// It measures text without font data and draws nothing on raster canvases.
type FixedFont struct {
	PointSize float64
	Ascent    float64
	Descent   float64
	RuneWidth float64
}

// Metrics implements Font.
func (f FixedFont) Metrics() FontMetrics {
	return FontMetrics{Ascent: f.Ascent, Descent: f.Descent}
}

// Advance implements Font.
func (f FixedFont) Advance(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.RuneWidth
}

// Size implements Font.
func (f FixedFont) Size() float64 {
	return f.PointSize
}

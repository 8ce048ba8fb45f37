package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PaintStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Paint describes how to draw a shape on the canvas.
//
// When Gradient is set and valid it takes precedence over Color.
type Paint struct {
	Color       Color           `yaml:"color"`
	Gradient    *LinearGradient `yaml:"gradient,omitempty"`
	Style       PaintStyle      `yaml:"style"`
	StrokeWidth float64         `yaml:"strokeWidth,omitempty"`
}

// FillPaint returns a solid fill paint of the given color.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

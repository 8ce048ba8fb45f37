package graphics

import "image"

// FilterQuality controls image sampling quality during scaling.
type FilterQuality int

const (
	FilterQualityNone   FilterQuality = iota // Nearest neighbor (pixelated)
	FilterQualityLow                         // Bilinear
	FilterQualityMedium                      // Bilinear
	FilterQualityHigh                        // Bicubic
)

// String returns a human-readable representation of the filter quality.
func (q FilterQuality) String() string {
	switch q {
	case FilterQualityNone:
		return "none"
	case FilterQualityLow:
		return "low"
	case FilterQualityMedium:
		return "medium"
	case FilterQualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (q FilterQuality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// Canvas records or renders drawing commands.
//
// Coordinates are in pixels with the origin at the top left of the
// current translation. Clips only ever shrink the drawable area until
// the matching Restore.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() call will be composited with this opacity.
	SaveLayerAlpha(bounds Rect, alpha float64)

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the provided offsets.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawImageRect draws the srcRect portion of an image scaled into dstRect.
	// An empty srcRect uses the whole image.
	DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality)

	// DrawText draws a single line of text with its baseline at origin.Y.
	DrawText(text string, origin Offset, font Font, color Color)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

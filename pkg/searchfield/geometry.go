package searchfield

import "github.com/go-drift/searchfield/pkg/graphics"

// Layout constants in pixels.
const (
	// ButtonMargin separates the round button from the top and bottom edges.
	ButtonMargin = 5.0
	// ButtonShift moves the button right from width-height.
	ButtonShift = 3.0
	// IconMargin insets the action icon inside the button.
	IconMargin = 5.0
	// LoadingIconOffset places the loading icon right of the slider.
	LoadingIconOffset = 5.0
	// HintBaselineShift raises the hint baseline.
	HintBaselineShift = 2.0
)

// ButtonGeometry returns the round action button for a field of the given
// size. Hit testing and painting both use it.
func ButtonGeometry(size graphics.Size) graphics.Circle {
	d := size.Height - 2*ButtonMargin
	if d <= 0 || size.Width <= 0 {
		return graphics.Circle{}
	}
	left := size.Width - size.Height + ButtonShift
	return graphics.Circle{
		Center: graphics.Offset{X: left + d/2, Y: ButtonMargin + d/2},
		Radius: d / 2,
	}
}

// ActionIconRect returns where the search or close icon is drawn.
// The rect is empty when the button is too small to hold an icon.
func ActionIconRect(size graphics.Size) graphics.Rect {
	button := ButtonGeometry(size)
	side := 2*button.Radius - 2*IconMargin
	if side <= 0 {
		return graphics.Rect{}
	}
	b := button.Bounds()
	return graphics.RectFromLTWH(b.Left+IconMargin, b.Top+IconMargin, side, side)
}

// HitTest reports whether p lies strictly inside the button.
func HitTest(size graphics.Size, p graphics.Offset) bool {
	return ButtonGeometry(size).Contains(p)
}

// FadeAlpha is the loading icon opacity for a slider location:
// 1 at the left edge, falling linearly to 0 at half the width.
func FadeAlpha(location, width float64) float64 {
	half := width / 2
	if half <= 0 {
		return 0
	}
	return graphics.Clamp01(1 - location/half)
}

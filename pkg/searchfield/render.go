package searchfield

import (
	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/platform"
)

// State is a read-only snapshot of a Field taken for painting.
type State struct {
	Expanded       bool
	SliderPosition float64
	Width          float64
	Height         float64
	Text           string
	Background     graphics.Color
	Accent         graphics.Color
	Phase          Phase
}

// Size returns the field size.
func (s State) Size() graphics.Size {
	return graphics.Size{Width: s.Width, Height: s.Height}
}

// Style carries what Render needs beyond the state.
type Style struct {
	Foreground graphics.Color
	HintText   string
	Insets     graphics.EdgeInsets
	Font       graphics.Font
	Icons      icons.Set
	// Text paints the surface's own text. Optional.
	Text platform.TextPainter
}

// Render paints the field. It never mutates state and draws nothing for an
// empty size.
//
// Paint order: background pill, surface text, button, reveal mask with the
// fading loading icon, action icon, hint. Later steps overpaint earlier ones.
func Render(canvas graphics.Canvas, s State, style Style) {
	w, h := s.Width, s.Height
	if canvas == nil || w <= 0 || h <= 0 {
		return
	}
	size := s.Size()
	bounds := graphics.RectFromLTWH(0, 0, w, h)
	pill := graphics.PillRRect(bounds)
	background := graphics.FillPaint(s.Background)

	canvas.DrawRRect(pill, background)

	if style.Text != nil {
		style.Text.PaintText(canvas, bounds.Deflate(style.Insets))
	}

	button := ButtonGeometry(size)
	if button.Radius > 0 {
		gradient := graphics.NewLinearGradient(
			graphics.Offset{X: 0, Y: 0},
			graphics.Offset{X: w, Y: 0},
			graphics.GradientStop{Position: 0, Color: graphics.ColorWhite},
			graphics.GradientStop{Position: 1, Color: s.Accent},
		)
		canvas.DrawCircle(button.Center, button.Radius, graphics.Paint{Gradient: gradient})
	}

	if s.SliderPosition > -1 {
		renderReveal(canvas, s, style, pill, background)
	}

	if dst := ActionIconRect(size); !dst.IsEmpty() {
		icon := style.Icons.Search
		if s.Expanded {
			icon = style.Icons.Close
		}
		if icon != nil {
			canvas.DrawImageRect(icon, graphics.Rect{}, dst, graphics.FilterQualityLow)
		}
	}

	if !s.Expanded && s.Text == "" && style.HintText != "" && style.Font != nil {
		baseline := h/2 + style.Font.Metrics().Ascent/2 - HintBaselineShift
		hint := graphics.BlendHalf(s.Background, style.Foreground)
		canvas.DrawText(style.HintText, graphics.Offset{X: style.Insets.Left, Y: baseline}, style.Font, hint)
	}
}

func renderReveal(canvas graphics.Canvas, s State, style Style, pill graphics.RRect, background graphics.Paint) {
	w, h := s.Width, s.Height
	slider := s.SliderPosition

	canvas.Save()
	canvas.ClipRRect(pill)
	mask := graphics.Rect{Left: slider, Top: 0, Right: w, Bottom: h}
	if !mask.IsEmpty() {
		canvas.DrawRRect(graphics.RRectFromRectAndRadius(mask, graphics.CircularRadius(h/2)), background)
	}

	if loading := style.Icons.Loading; loading != nil {
		if alpha := FadeAlpha(slider, w); alpha > 0 {
			b := loading.Bounds()
			iw, ih := float64(b.Dx()), float64(b.Dy())
			dst := graphics.RectFromLTWH(slider+LoadingIconOffset, (h-ih)/2, iw, ih)
			canvas.SaveLayerAlpha(dst, alpha)
			canvas.DrawImageRect(loading, graphics.Rect{}, dst, graphics.FilterQualityLow)
			canvas.Restore()
		}
	}
	canvas.Restore()
}

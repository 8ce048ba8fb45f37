package graphics

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/go-drift/searchfield/pkg/errors"
)

// RasterCanvas is a software Canvas backed by a gg.Context.
//
// Translation and clipping are tracked by the canvas itself. Clipped draws
// are rendered to a scratch surface and composited through an alpha mask
// built from every active clip; layers map onto gg layers.
type RasterCanvas struct {
	dc     *gg.Context
	width  int
	height int
	state  rasterState
	stack  []rasterSave
}

type rasterState struct {
	dx, dy float64
	clips  []RRect
}

type rasterSave struct {
	state rasterState
	layer bool
}

func (s rasterState) clone() rasterState {
	clips := make([]RRect, len(s.clips))
	copy(clips, s.clips)
	return rasterState{dx: s.dx, dy: s.dy, clips: clips}
}

// NewRasterCanvas creates a transparent canvas of the given pixel size.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &RasterCanvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Clear fills the whole canvas with color, ignoring clips.
func (c *RasterCanvas) Clear(color Color) {
	c.dc.ClearWithColor(toGG(color))
}

// Save implements Canvas.
func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, rasterSave{state: c.state.clone()})
}

// SaveLayerAlpha implements Canvas.
func (c *RasterCanvas) SaveLayerAlpha(_ Rect, alpha float64) {
	c.stack = append(c.stack, rasterSave{state: c.state.clone(), layer: true})
	c.dc.PushLayer(gg.BlendNormal, Clamp01(alpha))
}

// Restore implements Canvas. Unbalanced calls are ignored.
func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if top.layer {
		c.dc.PopLayer()
	}
	c.state = top.state
}

// Translate implements Canvas.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipRect implements Canvas.
func (c *RasterCanvas) ClipRect(rect Rect) {
	c.state.clips = append(c.state.clips, RRect{Rect: rect.Translate(c.state.dx, c.state.dy)})
}

// ClipRRect implements Canvas.
func (c *RasterCanvas) ClipRRect(rrect RRect) {
	c.state.clips = append(c.state.clips, rrect.Translate(c.state.dx, c.state.dy))
}

// DrawRect implements Canvas.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	r := rect.Translate(c.state.dx, c.state.dy)
	c.drawShape(paint, func(dc *gg.Context) {
		dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
	})
}

// DrawRRect implements Canvas.
func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	rr := rrect.Translate(c.state.dx, c.state.dy)
	c.drawShape(paint, func(dc *gg.Context) {
		traceRRect(dc, rr)
	})
}

// DrawCircle implements Canvas.
func (c *RasterCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	if radius <= 0 {
		return
	}
	x, y := center.X+c.state.dx, center.Y+c.state.dy
	c.drawShape(paint, func(dc *gg.Context) {
		dc.DrawCircle(x, y, radius)
	})
}

// DrawImageRect implements Canvas.
func (c *RasterCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	if img == nil || dstRect.IsEmpty() {
		return
	}
	dst := dstRect.Translate(c.state.dx, c.state.dy)
	opts := gg.DrawImageOptions{
		X:             dst.Left,
		Y:             dst.Top,
		DstWidth:      dst.Width(),
		DstHeight:     dst.Height(),
		Interpolation: interpolation(quality),
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	}
	if !srcRect.IsEmpty() {
		b := img.Bounds()
		src := image.Rect(
			b.Min.X+int(srcRect.Left), b.Min.Y+int(srcRect.Top),
			b.Min.X+int(srcRect.Right), b.Min.Y+int(srcRect.Bottom),
		)
		opts.SrcRect = &src
	}
	buf := gg.ImageBufFromImage(img)
	c.draw(func(dc *gg.Context) {
		dc.DrawImageEx(buf, opts)
	})
}

// DrawText implements Canvas. Only fonts of type *Face are rasterized.
func (c *RasterCanvas) DrawText(s string, origin Offset, font Font, color Color) {
	face, ok := font.(*Face)
	if !ok || s == "" || color.Alpha() == 0 {
		return
	}
	x, y := origin.X+c.state.dx, origin.Y+c.state.dy
	c.draw(func(dc *gg.Context) {
		dc.SetFont(face.face)
		dc.SetFillBrush(gg.Solid(toGG(color)))
		dc.DrawString(s, x, y)
	})
}

// Size implements Canvas.
func (c *RasterCanvas) Size() Size {
	return Size{Width: float64(c.width), Height: float64(c.height)}
}

// Image returns a snapshot of the canvas pixels.
func (c *RasterCanvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas pixels as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the underlying context.
func (c *RasterCanvas) Close() error {
	return c.dc.Close()
}

func (c *RasterCanvas) drawShape(paint Paint, trace func(dc *gg.Context)) {
	dx, dy := c.state.dx, c.state.dy
	c.draw(func(dc *gg.Context) {
		applyPaint(dc, paint, dx, dy)
		trace(dc)
		var err error
		if paint.Style == PaintStyleStroke {
			err = dc.Stroke()
		} else {
			err = dc.Fill()
		}
		if err != nil {
			errors.Report(&errors.WidgetError{
				Op:   "graphics.draw",
				Kind: errors.KindRender,
				Err:  err,
			})
		}
	})
}

// draw runs fn against the canvas, honoring the active clips.
func (c *RasterCanvas) draw(fn func(dc *gg.Context)) {
	if len(c.state.clips) == 0 {
		fn(c.dc)
		return
	}
	mask := c.clipMask()
	if mask == nil {
		return
	}

	scratch := gg.NewContext(c.width, c.height)
	defer func() { _ = scratch.Close() }()
	fn(scratch)

	bounds := image.Rect(0, 0, c.width, c.height)
	clipped := image.NewRGBA(bounds)
	draw.DrawMask(clipped, bounds, scratch.Image(), image.Point{}, mask, image.Point{}, draw.Over)
	c.dc.DrawImageEx(gg.ImageBufFromImage(clipped), gg.DrawImageOptions{
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// clipMask intersects every active clip into a single alpha mask.
// It returns nil when the intersection is provably empty.
func (c *RasterCanvas) clipMask() *image.Alpha {
	bounds := image.Rect(0, 0, c.width, c.height)
	var mask *image.Alpha
	for _, clip := range c.state.clips {
		if clip.Rect.IsEmpty() {
			return nil
		}
		m := gg.NewContext(c.width, c.height)
		m.SetColor(color.White)
		traceRRect(m, clip)
		err := m.Fill()
		coverage := image.NewAlpha(bounds)
		draw.Draw(coverage, bounds, m.Image(), image.Point{}, draw.Src)
		_ = m.Close()
		if err != nil {
			errors.Report(&errors.WidgetError{Op: "graphics.clip", Kind: errors.KindRender, Err: err})
			return nil
		}
		if mask == nil {
			mask = coverage
			continue
		}
		for i, a := range coverage.Pix {
			if a < mask.Pix[i] {
				mask.Pix[i] = a
			}
		}
	}
	return mask
}

func traceRRect(dc *gg.Context, rr RRect) {
	r := rr.Rect
	if radius := rr.UniformRadius(); radius > 0 {
		dc.DrawRoundedRectangle(r.Left, r.Top, r.Width(), r.Height(), radius)
		return
	}
	dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
}

func applyPaint(dc *gg.Context, paint Paint, dx, dy float64) {
	if g := paint.Gradient; g.IsValid() {
		moved := g.Translate(dx, dy)
		brush := gg.NewLinearGradientBrush(moved.Start.X, moved.Start.Y, moved.End.X, moved.End.Y)
		for _, stop := range moved.Stops {
			brush.AddColorStop(stop.Position, toGG(stop.Color))
		}
		dc.SetFillBrush(brush)
		dc.SetStrokeBrush(brush)
	} else {
		dc.SetFillBrush(gg.Solid(toGG(paint.Color)))
		dc.SetStrokeBrush(gg.Solid(toGG(paint.Color)))
	}
	if paint.Style == PaintStyleStroke {
		width := paint.StrokeWidth
		if width <= 0 {
			width = 1
		}
		dc.SetLineWidth(width)
	}
}

func toGG(c Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA2(r, g, b, a)
}

func interpolation(q FilterQuality) gg.InterpolationMode {
	switch q {
	case FilterQualityNone:
		return gg.InterpNearest
	case FilterQualityHigh:
		return gg.InterpBicubic
	default:
		return gg.InterpBilinear
	}
}

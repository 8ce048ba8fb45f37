package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func alphaAt(img image.Image, x, y int) uint8 {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}

func TestRasterCanvas_FillRect(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	defer c.Close()
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))

	img := c.Image()
	px := color.NRGBAModel.Convert(img.At(5, 5)).(color.NRGBA)
	if px.R < 250 || px.A < 250 {
		t.Fatalf("inside pixel = %+v, want opaque red", px)
	}
	if a := alphaAt(img, 15, 15); a != 0 {
		t.Fatalf("outside alpha = %d, want 0", a)
	}
}

func TestRasterCanvas_TranslateAndClip(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	defer c.Close()
	c.Save()
	c.Translate(10, 10)
	c.ClipRect(RectFromLTWH(0, 0, 5, 5))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorBlue))
	c.Restore()

	img := c.Image()
	if a := alphaAt(img, 12, 12); a < 250 {
		t.Fatalf("alpha inside clip = %d", a)
	}
	if a := alphaAt(img, 20, 20); a != 0 {
		t.Fatalf("alpha outside clip = %d, want 0", a)
	}
	if a := alphaAt(img, 5, 5); a != 0 {
		t.Fatalf("alpha before translation = %d, want 0", a)
	}

	// The clip is gone after Restore.
	c.DrawRect(RectFromLTWH(30, 30, 5, 5), FillPaint(ColorBlue))
	if a := alphaAt(c.Image(), 32, 32); a < 250 {
		t.Fatalf("alpha after restore = %d", a)
	}
}

func TestRasterCanvas_NestedClipsIntersect(t *testing.T) {
	c := NewRasterCanvas(40, 40)
	defer c.Close()
	c.ClipRect(RectFromLTWH(0, 0, 20, 20))
	c.ClipRect(RectFromLTWH(10, 10, 20, 20))
	c.DrawRect(RectFromLTWH(0, 0, 40, 40), FillPaint(ColorGreen))

	img := c.Image()
	if a := alphaAt(img, 15, 15); a < 250 {
		t.Fatalf("alpha in intersection = %d", a)
	}
	for _, p := range []image.Point{{5, 5}, {25, 25}, {5, 25}} {
		if a := alphaAt(img, p.X, p.Y); a != 0 {
			t.Fatalf("alpha at %v = %d, want 0", p, a)
		}
	}
}

func TestRasterCanvas_LayerAlpha(t *testing.T) {
	c := NewRasterCanvas(10, 10)
	defer c.Close()
	c.SaveLayerAlpha(RectFromLTWH(0, 0, 10, 10), 0.5)
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorBlack))
	c.Restore()

	if a := alphaAt(c.Image(), 5, 5); a < 100 || a > 155 {
		t.Fatalf("layer alpha = %d, want about 128", a)
	}
}

func TestRasterCanvas_DrawImageRect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	c := NewRasterCanvas(20, 20)
	defer c.Close()
	c.DrawImageRect(src, Rect{}, RectFromLTWH(4, 4, 8, 8), FilterQualityLow)

	img := c.Image()
	if a := alphaAt(img, 8, 8); a < 200 {
		t.Fatalf("image alpha = %d", a)
	}
	if a := alphaAt(img, 16, 16); a != 0 {
		t.Fatalf("alpha outside image = %d", a)
	}
}

func TestRasterCanvas_EncodePNG(t *testing.T) {
	c := NewRasterCanvas(8, 4)
	defer c.Close()
	c.Clear(ColorWhite)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
}

func TestRasterCanvas_UnbalancedRestore(t *testing.T) {
	c := NewRasterCanvas(4, 4)
	defer c.Close()
	c.Restore()
	c.Restore()
	if c.Size() != (Size{Width: 4, Height: 4}) {
		t.Fatalf("size = %v", c.Size())
	}
}

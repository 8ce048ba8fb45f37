package icons

import (
	"image"

	"golang.org/x/image/draw"
)

// Fit scales img down with bilinear sampling so neither side exceeds max
// pixels, keeping its aspect ratio. Images that already fit are returned
// unchanged.
func Fit(img image.Image, max int) image.Image {
	if img == nil || max <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}
	var dw, dh int
	if w >= h {
		dw, dh = max, h*max/w
	} else {
		dw, dh = w*max/h, max
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

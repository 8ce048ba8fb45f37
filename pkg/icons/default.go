package icons

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"

	"github.com/go-drift/searchfield/pkg/errors"
)

// Built-in icon colors.
var (
	DefaultIconColor    = gg.RGBA2(1, 1, 1, 1)
	DefaultSpinnerColor = gg.RGBA2(3.0/255, 175.0/255, 1, 1)
)

// Default draws the built-in icon set with each icon size pixels square.
func Default(size int) (Set, error) {
	if size < 4 {
		return Set{}, &errors.WidgetError{
			Op:   "icons.Default",
			Kind: errors.KindResource,
			Err:  fmt.Errorf("%w: icon size %d too small", ErrMissingIcon, size),
		}
	}
	search, err := render(size, drawSearch)
	if err != nil {
		return Set{}, err
	}
	closeIcon, err := render(size, drawClose)
	if err != nil {
		return Set{}, err
	}
	loading, err := render(size, drawSpinner)
	if err != nil {
		return Set{}, err
	}
	return Set{Search: search, Close: closeIcon, Loading: loading}, nil
}

func render(size int, paint func(dc *gg.Context, s float64) error) (image.Image, error) {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()
	if err := paint(dc, float64(size)); err != nil {
		return nil, &errors.WidgetError{Op: "icons.Default", Kind: errors.KindRender, Err: err}
	}
	return dc.Image(), nil
}

func strokeStyle(dc *gg.Context, s float64) {
	dc.SetStrokeBrush(gg.Solid(DefaultIconColor))
	dc.SetLineWidth(math.Max(1, s/10))
	dc.SetLineCap(gg.LineCapRound)
}

func drawSearch(dc *gg.Context, s float64) error {
	strokeStyle(dc, s)
	dc.DrawCircle(s*0.42, s*0.42, s*0.27)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.DrawLine(s*0.62, s*0.62, s*0.86, s*0.86)
	return dc.Stroke()
}

func drawClose(dc *gg.Context, s float64) error {
	strokeStyle(dc, s)
	dc.DrawLine(s*0.2, s*0.2, s*0.8, s*0.8)
	if err := dc.Stroke(); err != nil {
		return err
	}
	dc.DrawLine(s*0.8, s*0.2, s*0.2, s*0.8)
	return dc.Stroke()
}

func drawSpinner(dc *gg.Context, s float64) error {
	const dots = 8
	c := s / 2
	ring := s * 0.36
	r := math.Max(1, s/12)
	for i := range dots {
		angle := 2 * math.Pi * float64(i) / dots
		col := DefaultSpinnerColor
		col.A = float64(i+1) / dots
		dc.SetFillBrush(gg.Solid(col))
		dc.DrawCircle(c+ring*math.Cos(angle), c+ring*math.Sin(angle), r)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

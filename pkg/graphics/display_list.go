package graphics

import "image"

// Display op names.
const (
	OpSave          = "save"
	OpSaveLayer     = "saveLayer"
	OpRestore       = "restore"
	OpTranslate     = "translate"
	OpClipRect      = "clipRect"
	OpClipRRect     = "clipRRect"
	OpDrawRect      = "drawRect"
	OpDrawRRect     = "drawRRect"
	OpDrawCircle    = "drawCircle"
	OpDrawImageRect = "drawImageRect"
	OpDrawText      = "drawText"
)

// DisplayOp is a single recorded drawing command.
//
// Only the fields relevant to Op are set. Rect holds the target rectangle
// of rect, rrect, clip, layer and image ops; Radius holds the uniform corner
// radius of rrect ops and the radius of circles.
type DisplayOp struct {
	Op      string        `yaml:"op"`
	Rect    Rect          `yaml:"rect,omitempty"`
	Radius  float64       `yaml:"radius,omitempty"`
	Center  Offset        `yaml:"center,omitempty"`
	Offset  Offset        `yaml:"offset,omitempty"`
	Source  Rect          `yaml:"source,omitempty"`
	Alpha   float64       `yaml:"alpha,omitempty"`
	Paint   *Paint        `yaml:"paint,omitempty"`
	Color   Color         `yaml:"color,omitempty"`
	Text    string        `yaml:"text,omitempty"`
	Quality FilterQuality `yaml:"quality,omitempty"`

	RRect RRect       `yaml:"-"`
	Image image.Image `yaml:"-"`
	Font  Font        `yaml:"-"`
}

func (op DisplayOp) execute(canvas Canvas) {
	switch op.Op {
	case OpSave:
		canvas.Save()
	case OpSaveLayer:
		canvas.SaveLayerAlpha(op.Rect, op.Alpha)
	case OpRestore:
		canvas.Restore()
	case OpTranslate:
		canvas.Translate(op.Offset.X, op.Offset.Y)
	case OpClipRect:
		canvas.ClipRect(op.Rect)
	case OpClipRRect:
		canvas.ClipRRect(op.RRect)
	case OpDrawRect:
		canvas.DrawRect(op.Rect, *op.Paint)
	case OpDrawRRect:
		canvas.DrawRRect(op.RRect, *op.Paint)
	case OpDrawCircle:
		canvas.DrawCircle(op.Center, op.Radius, *op.Paint)
	case OpDrawImageRect:
		canvas.DrawImageRect(op.Image, op.Source, op.Rect, op.Quality)
	case OpDrawText:
		canvas.DrawText(op.Text, op.Offset, op.Font, op.Color)
	}
}

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []DisplayOp
	size Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Ops returns a copy of the recorded operations.
func (d *DisplayList) Ops() []DisplayOp {
	ops := make([]DisplayOp, len(d.ops))
	copy(ops, d.ops)
	return ops
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []DisplayOp
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]DisplayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op DisplayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     Size
}

func clonePaint(p Paint) *Paint {
	if p.Gradient != nil {
		g := *p.Gradient
		g.Stops = cloneGradientStops(p.Gradient.Stops)
		p.Gradient = &g
	}
	return &p
}

func (c *recordingCanvas) Save() {
	c.recorder.append(DisplayOp{Op: OpSave})
}

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.recorder.append(DisplayOp{Op: OpSaveLayer, Rect: bounds, Alpha: alpha})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(DisplayOp{Op: OpRestore})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(DisplayOp{Op: OpTranslate, Offset: Offset{X: dx, Y: dy}})
}

func (c *recordingCanvas) ClipRect(rect Rect) {
	c.recorder.append(DisplayOp{Op: OpClipRect, Rect: rect})
}

func (c *recordingCanvas) ClipRRect(rrect RRect) {
	c.recorder.append(DisplayOp{Op: OpClipRRect, Rect: rrect.Rect, Radius: rrect.UniformRadius(), RRect: rrect})
}

func (c *recordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.recorder.append(DisplayOp{Op: OpDrawRect, Rect: rect, Paint: clonePaint(paint)})
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.recorder.append(DisplayOp{Op: OpDrawRRect, Rect: rrect.Rect, Radius: rrect.UniformRadius(), RRect: rrect, Paint: clonePaint(paint)})
}

func (c *recordingCanvas) DrawCircle(center Offset, radius float64, paint Paint) {
	c.recorder.append(DisplayOp{Op: OpDrawCircle, Center: center, Radius: radius, Paint: clonePaint(paint)})
}

func (c *recordingCanvas) DrawImageRect(img image.Image, srcRect, dstRect Rect, quality FilterQuality) {
	c.recorder.append(DisplayOp{Op: OpDrawImageRect, Rect: dstRect, Source: srcRect, Quality: quality, Image: img})
}

func (c *recordingCanvas) DrawText(text string, origin Offset, font Font, color Color) {
	c.recorder.append(DisplayOp{Op: OpDrawText, Text: text, Offset: origin, Font: font, Color: color})
}

func (c *recordingCanvas) Size() Size {
	return c.size
}

package testing

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/go-drift/searchfield/pkg/animation"
	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/platform"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

const (
	// DefaultTestWidth is the default field width.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default field height.
	DefaultTestHeight = 40
	// FrameDuration is how far the clock moves per settled frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: field did not settle")

// TestFont has fixed metrics so layout assertions are exact.
var TestFont = graphics.FixedFont{PointSize: 14, Ascent: 11, Descent: 3, RuneWidth: 7}

// FieldTester drives a Field with a fake clock, its own scheduler and a
// run loop standing in for the UI thread.
type FieldTester struct {
	clock     *FakeClock
	scheduler *animation.Scheduler
	loop      *platform.Loop
	surface   *platform.TextEditingController
	field     *searchfield.Field
	recorder  *graphics.PictureRecorder
	repaints  int
	cursors   []platform.Cursor
}

// NewFieldTester builds a 200x40 field with test icons. Options are applied
// after the tester's own, so they may override them.
func NewFieldTester(listener searchfield.Listener, opts ...searchfield.Option) (*FieldTester, error) {
	clk := NewFakeClock()
	t := &FieldTester{
		clock:     clk,
		scheduler: animation.NewScheduler(clk),
		loop:      platform.NewLoop(),
		surface:   platform.NewTextEditingController(""),
		recorder:  &graphics.PictureRecorder{},
	}
	t.surface.SetFont(TestFont)

	base := []searchfield.Option{
		searchfield.WithScheduler(t.scheduler),
		searchfield.WithDispatcher(t.loop.Post),
		searchfield.WithRepaint(func() { t.repaints++ }),
		searchfield.WithCursorSink(func(c platform.Cursor) { t.cursors = append(t.cursors, c) }),
	}
	if listener != nil {
		base = append(base, searchfield.WithListener(listener))
	}
	field, err := searchfield.New(t.surface, TestIcons(), append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	t.field = field
	field.SetSize(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
	return t, nil
}

// NewFieldTesterWithT creates a tester that fails the test on error and
// closes the field via t.Cleanup().
func NewFieldTesterWithT(t *testing.T, listener searchfield.Listener, opts ...searchfield.Option) *FieldTester {
	t.Helper()
	tester, err := NewFieldTester(listener, opts...)
	if err != nil {
		t.Fatalf("NewFieldTester: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup closes the field and the loop.
func (t *FieldTester) Cleanup() {
	t.field.Close()
	_ = t.loop.Close()
}

// Clock returns the fake clock for advancing time in tests.
func (t *FieldTester) Clock() *FakeClock {
	return t.clock
}

// Field returns the field under test.
func (t *FieldTester) Field() *searchfield.Field {
	return t.field
}

// Surface returns the text surface the field decorates.
func (t *FieldTester) Surface() *platform.TextEditingController {
	return t.surface
}

// Loop returns the run loop standing in for the UI thread.
func (t *FieldTester) Loop() *platform.Loop {
	return t.loop
}

// Scheduler returns the scheduler ticking the field.
func (t *FieldTester) Scheduler() *animation.Scheduler {
	return t.scheduler
}

// Pump runs one frame: pending UI callbacks, then tickers.
func (t *FieldTester) Pump() {
	t.loop.RunPending()
	t.scheduler.Step()
}

// PumpFor runs frames for d, advancing the clock by FrameDuration each frame.
func (t *FieldTester) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += FrameDuration {
		t.Pump()
		t.clock.Advance(FrameDuration)
	}
	t.Pump()
}

// PumpAndSettle runs frames until no animation or callback is pending.
// Returns ErrSettleTimeout if that takes longer than timeout of fake time.
func (t *FieldTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *FieldTester) needsWork() bool {
	return t.scheduler.HasActiveTickers() || t.loop.Pending() > 0
}

// WaitForDispatch blocks up to timeout of real time for a callback posted
// from another goroutine, then runs pending callbacks.
func (t *FieldTester) WaitForDispatch(timeout time.Duration) bool {
	if !t.loop.WaitPending(timeout) {
		return false
	}
	return t.loop.RunPending() > 0
}

// TapButton presses the primary button at the center of the round button.
func (t *FieldTester) TapButton() {
	t.TapAt(searchfield.ButtonGeometry(t.field.Size()).Center)
}

// TapAt presses the primary button at pos.
func (t *FieldTester) TapAt(pos graphics.Offset) {
	t.Press(pos, platform.ButtonPrimary)
}

// Press sends a pointer-down with the given button.
func (t *FieldTester) Press(pos graphics.Offset, button platform.PointerButton) {
	t.field.HandlePointer(platform.PointerEvent{Phase: platform.PointerPhaseDown, Position: pos, Button: button})
}

// MoveTo sends a pointer-move to pos.
func (t *FieldTester) MoveTo(pos graphics.Offset) {
	t.field.HandlePointer(platform.PointerEvent{Phase: platform.PointerPhaseMove, Position: pos})
}

// Paint records the field at its current state.
func (t *FieldTester) Paint() *graphics.DisplayList {
	canvas := t.recorder.BeginRecording(t.field.Size())
	t.field.Paint(canvas)
	return t.recorder.EndRecording()
}

// Repaints returns how many repaints the field has requested.
func (t *FieldTester) Repaints() int {
	return t.repaints
}

// Cursors returns the cursor changes pushed by the field, oldest first.
func (t *FieldTester) Cursors() []platform.Cursor {
	return t.cursors
}

// TestIcons returns solid-color icons: 30x30 search and close, 16x16 loading.
func TestIcons() icons.Set {
	return icons.Set{
		Search:  solid(30, 30, color.NRGBA{R: 0xFF, A: 0xFF}),
		Close:   solid(30, 30, color.NRGBA{G: 0xFF, A: 0xFF}),
		Loading: solid(16, 16, color.NRGBA{B: 0xFF, A: 0xFF}),
	}
}

func solid(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Package searchfield implements an animated search box.
//
// A Field starts as a collapsed pill with a round search button. Pressing
// the button slides a mask across the text area, shows a fading loading
// indicator, swaps the icon for a close button and starts the registered
// search on its own goroutine. Pressing again, or the search signalling
// completion, slides back.
//
// All methods must be called from the host's UI thread. The only work that
// runs elsewhere is Listener.OnActivated; its completion is marshalled back
// through the dispatcher.
package searchfield

import (
	"context"
	"log/slog"

	"github.com/go-drift/searchfield/pkg/animation"
	"github.com/go-drift/searchfield/pkg/errors"
	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/platform"
	"github.com/go-drift/searchfield/pkg/task"
)

// Field is the search box state machine.
type Field struct {
	surface  platform.TextSurface
	icons    icons.Set
	cfg      Config
	listener Listener
	dispatch func(callback func()) bool
	repaint  func()
	cursorFn func(platform.Cursor)
	logger   *slog.Logger
	ctx      context.Context

	animator *animation.Animator
	phase    Phase
	expanded bool
	slider   float64
	size     graphics.Size
	cursor   platform.Cursor

	task    *task.Task
	taskGen uint64
	closed  bool
}

// Option configures a Field.
type Option func(*Field)

// WithListener registers the search listener. Without one, presses only
// toggle editability and animate.
func WithListener(l Listener) Option {
	return func(f *Field) { f.listener = l }
}

// WithDispatcher sets how completion signals reach the UI thread.
// The default is platform.Dispatch.
func WithDispatcher(dispatch func(callback func()) bool) Option {
	return func(f *Field) {
		if dispatch != nil {
			f.dispatch = dispatch
		}
	}
}

// WithRepaint sets the callback invoked whenever the field needs painting.
func WithRepaint(repaint func()) Option {
	return func(f *Field) { f.repaint = repaint }
}

// WithCursorSink sets the callback that receives cursor changes.
func WithCursorSink(sink func(platform.Cursor)) Option {
	return func(f *Field) { f.cursorFn = sink }
}

// WithScheduler sets the scheduler that ticks the reveal animation.
// The default is animation.DefaultScheduler.
func WithScheduler(s *animation.Scheduler) Option {
	return func(f *Field) { f.animator.Scheduler = s }
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(f *Field) {
		scheduler := f.animator.Scheduler
		f.cfg = cfg
		f.animator = cfg.newAnimator(scheduler)
	}
}

// WithLogger sets the field's logger. The default is Logger().
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithContext sets the parent context of search tasks.
func WithContext(ctx context.Context) Option {
	return func(f *Field) {
		if ctx != nil {
			f.ctx = ctx
		}
	}
}

type fontSetter interface {
	SetFont(graphics.Font)
}

type colorSetter interface {
	SetColors(text, selection graphics.Color)
}

// New creates a collapsed field decorating surface. The icon set and the
// configuration are validated here; a missing icon is a KindResource error.
func New(surface platform.TextSurface, set icons.Set, opts ...Option) (*Field, error) {
	if surface == nil {
		return nil, &errors.WidgetError{
			Op:   "searchfield.New",
			Kind: errors.KindInit,
			Err:  errNoSurface,
		}
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	f := &Field{
		surface:  surface,
		icons:    set,
		cfg:      cfg,
		dispatch: platform.Dispatch,
		logger:   Logger(),
		ctx:      context.Background(),
		animator: cfg.newAnimator(nil),
		phase:    PhaseIdle,
		slider:   -1,
		cursor:   platform.CursorDefault,
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.cfg.Validate(); err != nil {
		return nil, err
	}

	if fs, ok := surface.(fontSetter); ok && surface.Font() == nil {
		face, err := graphics.DefaultFace(f.cfg.FontSize)
		if err != nil {
			return nil, &errors.WidgetError{Op: "searchfield.New", Kind: errors.KindResource, Resource: "font", Err: err}
		}
		fs.SetFont(face)
	}
	f.applyTextColors()
	return f, nil
}

// HandlePointer routes a host pointer event.
func (f *Field) HandlePointer(ev platform.PointerEvent) {
	switch ev.Phase {
	case platform.PointerPhaseDown:
		f.OnPointerPressed(ev)
	case platform.PointerPhaseMove:
		f.OnPointerMoved(ev)
	}
}

// OnPointerMoved updates the cursor: a hand over the button, a text cursor
// elsewhere. The sink only hears about changes.
func (f *Field) OnPointerMoved(ev platform.PointerEvent) {
	if f.closed {
		return
	}
	cursor := platform.CursorText
	if HitTest(f.size, ev.Position) {
		cursor = platform.CursorHand
	}
	if cursor == f.cursor {
		return
	}
	f.cursor = cursor
	if f.cursorFn != nil {
		f.cursorFn(cursor)
	}
}

// OnPointerPressed toggles the field when the primary button is pressed
// inside the round button. Presses during an animation are ignored.
func (f *Field) OnPointerPressed(ev platform.PointerEvent) {
	if f.closed || ev.Button != platform.ButtonPrimary {
		return
	}
	if !HitTest(f.size, ev.Position) {
		return
	}
	if f.animator.IsRunning() {
		f.logger.Debug("searchfield: press ignored while animating", "phase", f.phase)
		return
	}
	if f.expanded {
		f.collapse()
	} else {
		f.expand()
	}
}

func (f *Field) expand() {
	if !f.startAnimation() {
		return
	}
	f.surface.SetEditable(false)
	f.expanded = true
	f.slider = f.size.Width
	f.setPhase(PhaseExpanding)

	if f.listener != nil {
		f.taskGen++
		gen := f.taskGen
		listener := f.listener
		done := task.NewCompletion(func() { f.signalDone(gen) })
		f.task = task.Spawn(f.ctx, done, func(ctx context.Context, done *task.Completion) {
			listener.OnActivated(ctx, done)
		})
	}
	f.requestRepaint()
}

func (f *Field) collapse() {
	if !f.startAnimation() {
		return
	}
	f.surface.SetEditable(true)
	f.expanded = false
	f.slider = 0
	f.setPhase(PhaseCollapsing)

	if f.task != nil {
		f.task.Cancel()
		f.task = nil
	}
	if f.listener != nil {
		f.listener.OnCancelled()
	}
	f.requestRepaint()
}

func (f *Field) startAnimation() bool {
	if err := f.animator.Start(f.onTick, f.onAnimationDone); err != nil {
		f.logger.Debug("searchfield: animation not started", "phase", f.phase, "err", err)
		return false
	}
	return true
}

// onTick moves the slider for the current direction.
func (f *Field) onTick(fraction float64) {
	w := f.size.Width
	switch f.phase {
	case PhaseExpanding:
		f.slider = w * (1 - fraction)
	case PhaseCollapsing:
		f.slider = w * fraction
	}
	f.requestRepaint()
}

func (f *Field) onAnimationDone() {
	switch f.phase {
	case PhaseExpanding:
		f.slider = 0
		f.setPhase(PhaseActive)
	case PhaseCollapsing:
		f.slider = -1
		f.setPhase(PhaseIdle)
	}
	f.requestRepaint()
}

// signalDone runs on the task goroutine.
func (f *Field) signalDone(gen uint64) {
	if !f.dispatch(func() { f.onTaskDone(gen) }) {
		f.logger.Warn("searchfield: completion dropped", "err", platform.ErrDispatchRefused)
		errors.Report(&errors.WidgetError{
			Op:   "searchfield.done",
			Kind: errors.KindDispatch,
			Err:  platform.ErrDispatchRefused,
		})
	}
}

// onTaskDone collapses the field from the left edge when the current task
// finishes. It neither cancels nor notifies the listener.
func (f *Field) onTaskDone(gen uint64) {
	if f.closed || f.task == nil || gen != f.taskGen {
		f.logger.Debug("searchfield: stale completion ignored", "phase", f.phase)
		return
	}
	f.task = nil
	if f.animator.IsRunning() {
		f.animator.Stop()
	}
	if !f.startAnimation() {
		return
	}
	f.surface.SetEditable(true)
	f.expanded = false
	f.slider = 0
	f.setPhase(PhaseCollapsing)
	f.requestRepaint()
}

func (f *Field) setPhase(p Phase) {
	if f.phase != p {
		f.logger.Debug("searchfield: phase", "from", f.phase, "to", p)
	}
	f.phase = p
}

func (f *Field) requestRepaint() {
	if f.repaint != nil {
		f.repaint()
	}
}

func (f *Field) applyTextColors() {
	if cs, ok := f.surface.(colorSetter); ok {
		cs.SetColors(f.cfg.Foreground, f.cfg.SelectionColor)
	}
}

// SetSize sets the field size in pixels. Ticks use the size current at tick time.
func (f *Field) SetSize(size graphics.Size) {
	f.size = size
	f.requestRepaint()
}

// Size returns the field size.
func (f *Field) Size() graphics.Size {
	return f.size
}

// Phase returns the current phase.
func (f *Field) Phase() Phase {
	return f.phase
}

// Expanded reports whether the field shows the close button.
func (f *Field) Expanded() bool {
	return f.expanded
}

// SliderPosition returns the mask's left edge, or -1 when inactive.
func (f *Field) SliderPosition() float64 {
	return f.slider
}

// Cursor returns the cursor last chosen by OnPointerMoved.
func (f *Field) Cursor() platform.Cursor {
	return f.cursor
}

// HintText returns the placeholder shown when collapsed and empty.
func (f *Field) HintText() string {
	return f.cfg.HintText
}

// SetHintText sets the placeholder.
func (f *Field) SetHintText(hint string) {
	f.cfg.HintText = hint
	f.requestRepaint()
}

// AccentColor returns the button gradient's end color.
func (f *Field) AccentColor() graphics.Color {
	return f.cfg.Accent
}

// SetAccentColor sets the button gradient's end color.
func (f *Field) SetAccentColor(c graphics.Color) {
	f.cfg.Accent = c
	f.requestRepaint()
}

// Background returns the pill color.
func (f *Field) Background() graphics.Color {
	return f.cfg.Background
}

// SetBackground sets the pill color.
func (f *Field) SetBackground(c graphics.Color) {
	f.cfg.Background = c
	f.requestRepaint()
}

// Foreground returns the text color.
func (f *Field) Foreground() graphics.Color {
	return f.cfg.Foreground
}

// SetForeground sets the text color. The hint color follows it.
func (f *Field) SetForeground(c graphics.Color) {
	f.cfg.Foreground = c
	f.applyTextColors()
	f.requestRepaint()
}

// State returns a snapshot for painting.
func (f *Field) State() State {
	return State{
		Expanded:       f.expanded,
		SliderPosition: f.slider,
		Width:          f.size.Width,
		Height:         f.size.Height,
		Text:           f.surface.Text(),
		Background:     f.cfg.Background,
		Accent:         f.cfg.Accent,
		Phase:          f.phase,
	}
}

// Style returns the painting style derived from the configuration and surface.
func (f *Field) Style() Style {
	style := Style{
		Foreground: f.cfg.Foreground,
		HintText:   f.cfg.HintText,
		Insets:     f.cfg.Insets,
		Font:       f.surface.Font(),
		Icons:      f.icons,
	}
	if tp, ok := f.surface.(platform.TextPainter); ok {
		style.Text = tp
	}
	return style
}

// Paint renders the field onto canvas.
func (f *Field) Paint(canvas graphics.Canvas) {
	defer errors.Recover("searchfield.Paint")
	Render(canvas, f.State(), f.Style())
}

// Close stops the animation, cancels any running search and detaches the
// field from its callbacks. Later events are ignored.
func (f *Field) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.animator.Stop()
	if f.task != nil {
		f.task.Cancel()
		f.task = nil
	}
	f.repaint = nil
	f.cursorFn = nil
}

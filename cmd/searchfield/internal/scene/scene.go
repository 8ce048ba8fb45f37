// Package scene wires a Field to a stepped clock, a run loop and a search
// listener, and plays scripts against it frame by frame.
package scene

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-drift/searchfield/cmd/searchfield/internal/config"
	"github.com/go-drift/searchfield/cmd/searchfield/internal/script"
	"github.com/go-drift/searchfield/cmd/searchfield/internal/search"
	"github.com/go-drift/searchfield/pkg/animation"
	"github.com/go-drift/searchfield/pkg/graphics"
	"github.com/go-drift/searchfield/pkg/icons"
	"github.com/go-drift/searchfield/pkg/platform"
	"github.com/go-drift/searchfield/pkg/searchfield"
)

// DispatchTimeout bounds how long a done step waits for the search.
const DispatchTimeout = 5 * time.Second

// Frame is called after every rendered step with its index.
type Frame func(index int, field *searchfield.Field) error

// Scene is a field driven by fake time.
type Scene struct {
	cfg       *config.File
	timeout   time.Duration
	logger    *slog.Logger
	clock     *animation.ManualClock
	scheduler *animation.Scheduler
	loop      *platform.Loop
	surface   *platform.TextEditingController
	field     *searchfield.Field
	search    *search.Listener
	frame     int
}

// New builds a scene from cfg. Search tasks run under ctx.
func New(ctx context.Context, cfg *config.File, logger *slog.Logger) (*Scene, error) {
	if logger == nil {
		logger = searchfield.Logger()
	}
	set, err := LoadIcons(cfg)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		cfg:     cfg,
		timeout: DispatchTimeout,
		logger:  logger,
		clock:   animation.NewManualClock(time.Unix(0, 0)),
		loop:    platform.NewLoop(),
		surface: platform.NewTextEditingController(cfg.Text),
	}
	s.scheduler = animation.NewScheduler(s.clock)
	s.search = search.NewListener(cfg.Corpus, s.surface.Text, logger)

	s.field, err = searchfield.New(s.surface, set,
		searchfield.WithConfig(cfg.Widget()),
		searchfield.WithScheduler(s.scheduler),
		searchfield.WithDispatcher(s.loop.Post),
		searchfield.WithListener(s.search),
		searchfield.WithLogger(logger),
		searchfield.WithContext(ctx),
		searchfield.WithCursorSink(func(c platform.Cursor) {
			logger.Debug("cursor", "cursor", c)
		}),
	)
	if err != nil {
		_ = s.loop.Close()
		return nil, err
	}
	s.field.SetSize(graphics.Size{Width: float64(cfg.Width), Height: float64(cfg.Height)})
	return s, nil
}

// LoadIcons reads the configured icon directory, or draws the built-in
// set sized to the button when none is configured. The loading icon is
// scaled down to fit the field.
func LoadIcons(cfg *config.File) (icons.Set, error) {
	var set icons.Set
	var err error
	if dir := cfg.Resolve(cfg.Icons); dir != "" {
		set, err = icons.Load(os.DirFS(dir), cfg.IconNames)
	} else {
		set, err = icons.Default(cfg.Height - 2*searchfield.ButtonMargin - 2*searchfield.IconMargin)
	}
	if err != nil {
		return icons.Set{}, err
	}
	set.Loading = icons.Fit(set.Loading, cfg.Height-2*searchfield.ButtonMargin)
	return set, nil
}

// Field returns the scene's field.
func (s *Scene) Field() *searchfield.Field {
	return s.field
}

// Results returns the matches of the last finished search.
func (s *Scene) Results() []search.Result {
	return s.search.Results()
}

// SetDispatchTimeout bounds how long a done step waits for the search to
// park its completion and for the completion to reach the loop.
func (s *Scene) SetDispatchTimeout(d time.Duration) {
	s.timeout = d
}

// Close shuts the field and the loop down.
func (s *Scene) Close() {
	s.field.Close()
	_ = s.loop.Close()
}

// Play runs steps, calling emit for the initial frame and after every
// step or tick that can change the picture.
func (s *Scene) Play(ctx context.Context, steps []script.Step, emit Frame) error {
	if err := s.emit(emit); err != nil {
		return err
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.logger.Debug("step", "step", step.String(), "phase", s.field.Phase())
		if err := s.apply(step, emit); err != nil {
			return fmt.Errorf("%s: %w", step, err)
		}
	}
	return nil
}

func (s *Scene) apply(step script.Step, emit Frame) error {
	switch step.Kind {
	case script.KindType:
		s.surface.SetCaretVisible(true)
		if !s.surface.Insert(step.Text) {
			s.logger.Warn("text ignored, field not editable", "text", step.Text)
			return nil
		}
		return s.emit(emit)
	case script.KindClick:
		center := searchfield.ButtonGeometry(s.field.Size()).Center
		s.field.HandlePointer(platform.PointerEvent{Phase: platform.PointerPhaseMove, Position: center})
		s.field.HandlePointer(platform.PointerEvent{Phase: platform.PointerPhaseDown, Position: center, Button: platform.ButtonPrimary})
		return s.tick(emit)
	case script.KindMove:
		s.field.HandlePointer(platform.PointerEvent{Phase: platform.PointerPhaseMove, Position: graphics.Offset{X: step.X, Y: step.Y}})
		return nil
	case script.KindWait:
		frame := s.cfg.FrameDuration()
		for elapsed := time.Duration(0); elapsed < step.Wait; elapsed += frame {
			s.clock.Advance(frame)
			if err := s.tick(emit); err != nil {
				return err
			}
		}
		return nil
	case script.KindDone:
		if err := s.search.Finish(s.timeout); err != nil {
			return err
		}
		if !s.waitForDispatch(s.timeout) {
			return platform.ErrDispatchRefused
		}
		return s.tick(emit)
	default:
		return fmt.Errorf("unknown step kind %v", step.Kind)
	}
}

// tick drains the loop, steps tickers and emits a frame.
func (s *Scene) tick(emit Frame) error {
	s.loop.RunPending()
	s.scheduler.Step()
	return s.emit(emit)
}

func (s *Scene) waitForDispatch(timeout time.Duration) bool {
	if !s.loop.WaitPending(timeout) {
		return false
	}
	return s.loop.RunPending() > 0
}

func (s *Scene) emit(emit Frame) error {
	if emit == nil {
		return nil
	}
	i := s.frame
	s.frame++
	return emit(i, s.field)
}

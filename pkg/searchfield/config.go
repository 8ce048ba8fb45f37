package searchfield

import (
	"fmt"
	"time"

	"github.com/go-drift/searchfield/pkg/animation"
	"github.com/go-drift/searchfield/pkg/errors"
	"github.com/go-drift/searchfield/pkg/graphics"
)

// Config holds the appearance and timing of a Field.
type Config struct {
	HintText       string
	Accent         graphics.Color
	Background     graphics.Color
	Foreground     graphics.Color
	SelectionColor graphics.Color
	Insets         graphics.EdgeInsets
	FontSize       float64

	Duration     time.Duration
	Resolution   time.Duration
	Acceleration float64
	Deceleration float64
	// Curve overrides the acceleration curve, e.g. animation.EaseInOut.
	Curve func(float64) float64
}

// DefaultConfig returns the stock look: a white pill with a blue button.
func DefaultConfig() Config {
	return Config{
		HintText:       "Search ...",
		Accent:         graphics.Color(0xFF03AFFF),
		Background:     graphics.ColorWhite,
		Foreground:     graphics.ColorBlack,
		SelectionColor: graphics.Color(0xFF50C7FF),
		Insets:         graphics.EdgeInsets{Top: 10, Left: 10, Bottom: 10, Right: 50},
		FontSize:       14,
		Duration:       300 * time.Millisecond,
		Resolution:     0,
		Acceleration:   0.5,
		Deceleration:   0.5,
	}
}

// Validate checks the timing and font values.
func (c Config) Validate() error {
	var err error
	switch {
	case c.Duration < 0:
		err = fmt.Errorf("negative duration %v", c.Duration)
	case c.Resolution < 0:
		err = fmt.Errorf("negative resolution %v", c.Resolution)
	case c.FontSize <= 0:
		err = fmt.Errorf("font size must be positive, got %v", c.FontSize)
	default:
		err = animation.ValidateEasing(c.Acceleration, c.Deceleration)
	}
	if err != nil {
		return &errors.WidgetError{Op: "searchfield.Config", Kind: errors.KindConfig, Err: err}
	}
	return nil
}

func (c Config) newAnimator(scheduler *animation.Scheduler) *animation.Animator {
	a := animation.NewAnimator(c.Duration)
	a.Resolution = c.Resolution
	a.Acceleration = c.Acceleration
	a.Deceleration = c.Deceleration
	a.Curve = c.Curve
	a.Scheduler = scheduler
	return a
}

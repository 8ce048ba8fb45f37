package testing

import (
	"time"

	"github.com/go-drift/searchfield/pkg/animation"
)

// Epoch is where every FakeClock starts.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is the tester's time source. It embeds an animation.ManualClock,
// so Advance and Set are safe for concurrent use.
type FakeClock struct {
	*animation.ManualClock
}

// NewFakeClock returns a FakeClock starting at Epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{ManualClock: animation.NewManualClock(Epoch)}
}

// Elapsed returns how far the clock has moved since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

package animation

import (
	"errors"
	"testing"
	"time"
)

func newFakeClock() *ManualClock {
	return NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func newTestAnimator() (*Animator, *Scheduler, *ManualClock) {
	clk := newFakeClock()
	sched := NewScheduler(clk)
	a := NewAnimator(300 * time.Millisecond)
	a.Acceleration = 0.5
	a.Deceleration = 0.5
	a.Scheduler = sched
	return a, sched, clk
}

// run steps the scheduler every frame until the animator stops.
func run(t *testing.T, sched *Scheduler, clk *ManualClock, frame time.Duration) {
	t.Helper()
	for i := 0; i < 1000 && sched.HasActiveTickers(); i++ {
		sched.Step()
		clk.Advance(frame)
	}
	if sched.HasActiveTickers() {
		t.Fatal("animation never finished")
	}
}

func TestAnimator_FractionsAreMonotonicAndEndAtOne(t *testing.T) {
	a, sched, clk := newTestAnimator()

	var fractions []float64
	stops := 0
	if err := a.Start(func(f float64) { fractions = append(fractions, f) }, func() { stops++ }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	run(t, sched, clk, 16*time.Millisecond)

	if stops != 1 {
		t.Fatalf("onStop called %d times, want 1", stops)
	}
	if len(fractions) < 2 {
		t.Fatalf("expected several ticks, got %d", len(fractions))
	}
	if fractions[0] != 0 {
		t.Errorf("first fraction = %v, want 0", fractions[0])
	}
	if last := fractions[len(fractions)-1]; last != 1 {
		t.Errorf("last fraction = %v, want 1", last)
	}
	for i := 1; i < len(fractions); i++ {
		if fractions[i] < fractions[i-1] {
			t.Fatalf("fraction decreased at %d: %v -> %v", i, fractions[i-1], fractions[i])
		}
		if fractions[i] < 0 || fractions[i] > 1 {
			t.Fatalf("fraction %v out of range", fractions[i])
		}
	}
	if a.IsRunning() {
		t.Error("animator should be stopped after completion")
	}
}

func TestAnimator_StartWhileRunningIsRejected(t *testing.T) {
	a, _, _ := newTestAnimator()
	if err := a.Start(nil, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := a.Start(nil, nil); !errors.Is(err, ErrRunning) {
		t.Fatalf("second Start error = %v, want ErrRunning", err)
	}
}

func TestAnimator_StopSkipsOnStopAndAllowsRestart(t *testing.T) {
	a, sched, clk := newTestAnimator()

	stops := 0
	if err := a.Start(nil, func() { stops++ }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sched.Step()
	clk.Advance(50 * time.Millisecond)
	a.Stop()

	if a.IsRunning() {
		t.Fatal("animator still running after Stop")
	}
	if sched.HasActiveTickers() {
		t.Fatal("ticker still registered after Stop")
	}
	if stops != 0 {
		t.Fatalf("Stop triggered onStop %d times", stops)
	}

	if err := a.Start(nil, func() { stops++ }); err != nil {
		t.Fatalf("restart: %v", err)
	}
	run(t, sched, clk, 16*time.Millisecond)
	if stops != 1 {
		t.Fatalf("onStop called %d times after restart, want 1", stops)
	}
}

func TestAnimator_OnStopMayRestart(t *testing.T) {
	a, sched, clk := newTestAnimator()

	runs := 0
	var onStop func()
	onStop = func() {
		runs++
		if runs == 1 {
			if err := a.Start(nil, onStop); err != nil {
				t.Errorf("restart from onStop: %v", err)
			}
		}
	}
	if err := a.Start(nil, onStop); err != nil {
		t.Fatalf("Start: %v", err)
	}
	run(t, sched, clk, 20*time.Millisecond)
	if runs != 2 {
		t.Fatalf("runs = %d, want 2", runs)
	}
}

func TestAnimator_Resolution(t *testing.T) {
	a, sched, clk := newTestAnimator()
	a.Resolution = 100 * time.Millisecond

	ticks := 0
	if err := a.Start(func(float64) { ticks++ }, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	run(t, sched, clk, 10*time.Millisecond)

	// Ticks at 0, 100, 200 and the unthrottled final tick at 300.
	if ticks != 4 {
		t.Fatalf("ticks = %d, want 4", ticks)
	}
}

func TestAnimator_ZeroDurationCompletesOnFirstTick(t *testing.T) {
	a, sched, _ := newTestAnimator()
	a.Duration = 0

	var got []float64
	done := false
	if err := a.Start(func(f float64) { got = append(got, f) }, func() { done = true }); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sched.Step()
	if !done || len(got) != 1 || got[0] != 1 {
		t.Fatalf("got fractions %v done=%v, want [1] true", got, done)
	}
}

func TestAnimator_InvalidEasing(t *testing.T) {
	tests := []struct {
		name         string
		accel, decel float64
	}{
		{"negative accel", -0.1, 0},
		{"accel above one", 1.1, 0},
		{"sum above one", 0.6, 0.6},
		{"negative decel", 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestAnimator()
			a.Acceleration = tt.accel
			a.Deceleration = tt.decel
			if err := a.Start(nil, nil); !errors.Is(err, ErrInvalidEasing) {
				t.Fatalf("Start error = %v, want ErrInvalidEasing", err)
			}
			if a.IsRunning() {
				t.Fatal("animator should not run with invalid easing")
			}
		})
	}
}

func TestScheduler_StepWithoutTickers(t *testing.T) {
	sched := NewScheduler(newFakeClock())
	sched.Step()
	if sched.HasActiveTickers() {
		t.Fatal("empty scheduler reports active tickers")
	}
}

func TestTicker_Elapsed(t *testing.T) {
	clk := newFakeClock()
	sched := NewScheduler(clk)
	var got time.Duration
	ticker := sched.CreateTicker(func(elapsed time.Duration) { got = elapsed })
	ticker.Start()
	clk.Advance(40 * time.Millisecond)
	sched.Step()

	if got != 40*time.Millisecond {
		t.Fatalf("elapsed = %v, want 40ms", got)
	}
	if ticker.Elapsed() != 40*time.Millisecond {
		t.Fatalf("Elapsed() = %v, want 40ms", ticker.Elapsed())
	}
	ticker.Stop()
	if ticker.Elapsed() != 0 {
		t.Fatal("stopped ticker should report zero elapsed")
	}
}

func TestAnimator_DefaultSchedulerUsesPackageClock(t *testing.T) {
	clk := newFakeClock()
	defer SetClock(SetClock(clk))

	stops := 0
	a := NewAnimator(100 * time.Millisecond)
	if err := a.Start(nil, func() { stops++ }); err != nil {
		t.Fatal(err)
	}
	if !HasActiveTickers() {
		t.Fatal("default scheduler has no active ticker")
	}
	for i := 0; i < 100 && HasActiveTickers(); i++ {
		clk.Advance(16 * time.Millisecond)
		StepTickers()
	}
	if HasActiveTickers() {
		a.Stop()
		t.Fatal("run did not finish on the package clock")
	}
	if stops != 1 {
		t.Fatalf("onStop called %d times, want 1", stops)
	}
}

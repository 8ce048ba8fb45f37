package testing

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-drift/searchfield/pkg/searchfield"
)

func TestFieldTester_Defaults(t *testing.T) {
	tester := NewFieldTesterWithT(t, nil)
	size := tester.Field().Size()
	if size.Width != DefaultTestWidth || size.Height != DefaultTestHeight {
		t.Fatalf("size = %v", size)
	}
	if tester.Field().Phase() != searchfield.PhaseIdle {
		t.Fatalf("phase = %v", tester.Field().Phase())
	}
	if tester.Surface().Font() != TestFont {
		t.Fatal("surface font was replaced")
	}
}

func TestFieldTester_PumpAndSettle(t *testing.T) {
	tester := NewFieldTesterWithT(t, nil)
	start := tester.Clock().Now()
	tester.TapButton()
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if tester.Field().Phase() != searchfield.PhaseActive {
		t.Fatalf("phase = %v, want active", tester.Field().Phase())
	}
	if took := tester.Clock().Now().Sub(start); took < 300*time.Millisecond || took > 400*time.Millisecond {
		t.Fatalf("settled after %v of fake time", took)
	}
}

func TestFieldTester_SettleTimeout(t *testing.T) {
	tester := NewFieldTesterWithT(t, nil)
	tester.TapButton()
	if err := tester.PumpAndSettle(50 * time.Millisecond); !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("err = %v, want ErrSettleTimeout", err)
	}
}

func TestFieldTester_PaintRecordsOps(t *testing.T) {
	tester := NewFieldTesterWithT(t, nil)
	if ops := tester.Paint().Ops(); len(ops) == 0 {
		t.Fatal("no ops recorded")
	}
}

func TestFieldTester_WaitForDispatchAfterEarlierPost(t *testing.T) {
	tester := NewFieldTesterWithT(t, nil)
	tester.Loop().Post(func() {})
	tester.Pump()

	var ran atomic.Bool
	go func() {
		time.Sleep(20 * time.Millisecond)
		tester.Loop().Post(func() { ran.Store(true) })
	}()
	if !tester.WaitForDispatch(5 * time.Second) {
		t.Fatal("WaitForDispatch gave up on a leftover wake")
	}
	if !ran.Load() {
		t.Fatal("posted callback did not run")
	}
}

// Package testing provides helpers for driving a search field in tests.
//
// # Quick Start
//
// Create a tester, tap the button, and advance time:
//
//	func TestReveal(t *testing.T) {
//	    tester := fieldtest.NewFieldTesterWithT(t, nil)
//	    tester.TapButton()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if !tester.Field().Expanded() {
//	        t.Error("expected the field to expand")
//	    }
//	}
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Paint Inspection
//
// Paint records the field into a display list whose ops can be asserted:
//
//	ops := tester.Paint().Ops()
package testing

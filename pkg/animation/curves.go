package animation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Easing curves transform linear animation progress into natural-feeling motion.
//
// Each curve is a function that takes a value t in [0, 1] and returns a
// transformed value. [Animator] builds its curve from its Acceleration and
// Deceleration fields via [AccelerationCurve]; set Animator.Curve to override.
//
// Standard curves: [LinearCurve], [Ease], [EaseIn], [EaseOut], [EaseInOut].
// Use [CubicBezier] to create custom curves matching CSS cubic-bezier().

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Use for elements exiting the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements entering the screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Use for elements that stay on screen but change state.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

// ParseCurve resolves a curve by name: "linear", "ease", "ease-in",
// "ease-out", "ease-in-out" or "cubic-bezier(x1, y1, x2, y2)". The empty
// name returns nil, leaving the Animator on its acceleration curve.
func ParseCurve(name string) (func(float64) float64, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return nil, nil
	case "linear":
		return LinearCurve, nil
	case "ease":
		return Ease, nil
	case "ease-in":
		return EaseIn, nil
	case "ease-out":
		return EaseOut, nil
	case "ease-in-out":
		return EaseInOut, nil
	}
	args, ok := strings.CutPrefix(name, "cubic-bezier(")
	if !ok || !strings.HasSuffix(args, ")") {
		return nil, fmt.Errorf("animation: unknown curve %q", name)
	}
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("animation: cubic-bezier needs 4 values, got %d", len(parts))
	}
	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("animation: cubic-bezier value %d: %w", i+1, err)
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, fmt.Errorf("animation: cubic-bezier x values must lie in [0, 1]")
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// AccelerationCurve returns a curve whose velocity ramps up linearly over the
// first accel fraction of the run, stays constant, then ramps down linearly
// over the last decel fraction. The average velocity is scaled so the curve
// still ends at 1.
//
// accel and decel must each lie in [0, 1] with accel+decel <= 1; see
// ValidateEasing. Out-of-range input is clamped rather than rejected.
func AccelerationCurve(accel, decel float64) func(float64) float64 {
	accel = clampUnit(accel)
	decel = clampUnit(decel)
	if accel+decel > 1 {
		decel = 1 - accel
	}
	if accel == 0 && decel == 0 {
		return LinearCurve
	}
	runRate := 1 / (1 - accel/2 - decel/2)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		var v float64
		switch {
		case t < accel:
			v = t * runRate * (t / accel) / 2
		case t > 1-decel:
			tdec := t - (1 - decel)
			pdec := tdec / decel
			v = runRate * (1 - accel/2 - decel + tdec*(2-pdec)/2)
		default:
			v = runRate * (t - accel/2)
		}
		return clampUnit(v)
	}
}

// ValidateEasing reports whether accel and decel describe a usable
// acceleration curve.
func ValidateEasing(accel, decel float64) error {
	if accel < 0 || accel > 1 || decel < 0 || decel > 1 || accel+decel > 1 {
		return ErrInvalidEasing
	}
	return nil
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

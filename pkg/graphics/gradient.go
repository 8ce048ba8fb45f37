package graphics

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
// Colors outside the Start-End span take the nearest stop.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops ...GradientStop) *LinearGradient {
	return &LinearGradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *LinearGradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Translate returns a copy of the gradient moved by (dx, dy).
func (g *LinearGradient) Translate(dx, dy float64) *LinearGradient {
	if g == nil {
		return nil
	}
	return &LinearGradient{
		Start: Offset{X: g.Start.X + dx, Y: g.Start.Y + dy},
		End:   Offset{X: g.End.X + dx, Y: g.End.Y + dy},
		Stops: cloneGradientStops(g.Stops),
	}
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}

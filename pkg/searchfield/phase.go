package searchfield

import "fmt"

// Phase is the reveal state of a Field.
type Phase int

const (
	// PhaseIdle is the collapsed search box. The slider is inactive.
	PhaseIdle Phase = iota
	// PhaseExpanding is the reveal animation from the right edge to the left.
	PhaseExpanding
	// PhaseActive is the expanded box while the search task runs.
	PhaseActive
	// PhaseCollapsing is the animation back to the collapsed box.
	PhaseCollapsing
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseExpanding:
		return "expanding"
	case PhaseActive:
		return "active"
	case PhaseCollapsing:
		return "collapsing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

package platform

import (
	"fmt"

	"github.com/go-drift/searchfield/pkg/graphics"
)

// PointerPhase describes the stage of a pointer interaction.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerButton identifies the button that produced a pointer event.
// Touch input reports ButtonPrimary.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// String returns a human-readable representation of the button.
func (b PointerButton) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("PointerButton(%d)", int(b))
	}
}

// PointerEvent is a pointer event in widget-local coordinates.
type PointerEvent struct {
	Phase    PointerPhase
	Position graphics.Offset
	Button   PointerButton
}

// Cursor is the mouse cursor shape a widget requests.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorText
	CursorHand
)

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorText:
		return "text"
	case CursorHand:
		return "hand"
	default:
		return fmt.Sprintf("Cursor(%d)", int(c))
	}
}

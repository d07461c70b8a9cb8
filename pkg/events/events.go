// Package events defines the normalized input vocabulary and the
// three-phase dispatcher that delivers events to widgets.
//
// Platform layers translate native input into this vocabulary before
// calling the dispatcher. Delivery follows the capture, target, bubble
// phases along the root-to-target element path; a handler may stop
// propagation at any step.
package events

import "github.com/go-quill/quill/pkg/geometry"

// Result indicates how a handler responded to an event.
type Result int

const (
	// Unhandled indicates the handler ignored the event.
	Unhandled Result = iota

	// Handled indicates the handler consumed the event but allows
	// propagation to continue.
	Handled

	// Stopped indicates the handler consumed the event and halts all
	// remaining propagation.
	Stopped
)

// String returns a readable name for the result.
func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case Stopped:
		return "stopped"
	default:
		return "unhandled"
	}
}

// Phase identifies where along the dispatch path a handler is invoked.
type Phase int

const (
	// PhaseCapture runs ancestors root-down, before the target.
	PhaseCapture Phase = iota

	// PhaseTarget runs the target itself.
	PhaseTarget

	// PhaseBubble runs ancestors target-up, after the target.
	PhaseBubble
)

// String returns a readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCapture:
		return "capture"
	case PhaseBubble:
		return "bubble"
	default:
		return "target"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	// ButtonPrimary is the primary (usually left) button.
	ButtonPrimary MouseButton = iota

	// ButtonSecondary is the secondary (usually right) button.
	ButtonSecondary

	// ButtonMiddle is the middle button or wheel press.
	ButtonMiddle
)

// Key identifies a physical key in layout-independent terms.
type Key int

// Common key codes. Printable input arrives as TextInputEvent, not as
// key codes.
const (
	KeyUnknown Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers int

const (
	// ModShift indicates a shift key was held.
	ModShift Modifiers = 1 << iota

	// ModControl indicates a control key was held.
	ModControl

	// ModAlt indicates an alt or option key was held.
	ModAlt

	// ModMeta indicates a command or windows key was held.
	ModMeta
)

// Has reports whether all the given modifier bits are set.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask == mask
}

// Event is the closed union of input events the dispatcher understands.
type Event interface {
	isEvent()
}

// PointerDownEvent reports a button press at a screen position.
type PointerDownEvent struct {
	Position geometry.Offset
	Button   MouseButton
}

// PointerUpEvent reports a button release at a screen position.
type PointerUpEvent struct {
	Position geometry.Offset
	Button   MouseButton
}

// PointerMoveEvent reports pointer motion. Moving across element
// boundaries additionally produces leave and enter notifications.
type PointerMoveEvent struct {
	Position geometry.Offset
}

// ScrollEvent reports wheel or trackpad scrolling at a position.
type ScrollEvent struct {
	Position geometry.Offset
	Delta    geometry.Offset
}

// KeyDownEvent reports a key press delivered to the focused element.
type KeyDownEvent struct {
	Key       Key
	Modifiers Modifiers
}

// KeyUpEvent reports a key release delivered to the focused element.
type KeyUpEvent struct {
	Key       Key
	Modifiers Modifiers
}

// TextInputEvent carries committed text for the focused element.
type TextInputEvent struct {
	Text string
}

// FocusEvent notifies an element that it gained focus.
type FocusEvent struct{}

// BlurEvent notifies an element that it lost focus.
type BlurEvent struct{}

// PointerEnterEvent notifies an element that the pointer moved onto it.
type PointerEnterEvent struct {
	Position geometry.Offset
}

// PointerLeaveEvent notifies an element that the pointer moved off it.
type PointerLeaveEvent struct {
	Position geometry.Offset
}

func (PointerDownEvent) isEvent()  {}
func (PointerUpEvent) isEvent()    {}
func (PointerMoveEvent) isEvent()  {}
func (ScrollEvent) isEvent()       {}
func (KeyDownEvent) isEvent()      {}
func (KeyUpEvent) isEvent()        {}
func (TextInputEvent) isEvent()    {}
func (FocusEvent) isEvent()        {}
func (BlurEvent) isEvent()         {}
func (PointerEnterEvent) isEvent() {}
func (PointerLeaveEvent) isEvent() {}

// eventPosition extracts the screen position from positional events.
func eventPosition(event Event) (geometry.Offset, bool) {
	switch e := event.(type) {
	case PointerDownEvent:
		return e.Position, true
	case PointerUpEvent:
		return e.Position, true
	case PointerMoveEvent:
		return e.Position, true
	case ScrollEvent:
		return e.Position, true
	default:
		return geometry.Offset{}, false
	}
}

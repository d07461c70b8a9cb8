package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/events"
)

// Listener invokes callbacks for input events reaching its element. Only
// callbacks that are set participate; an unset callback leaves the event
// Unhandled so propagation continues.
//
// By default callbacks fire in the target and bubble phases. Set Capture
// to intercept events on the way down instead, before descendants see
// them.
type Listener struct {
	ChildWidget core.Widget

	// Capture moves the callbacks to the capturing phase.
	Capture bool

	OnPointerDown  func(events.PointerDownEvent, *events.Context) events.Result
	OnPointerUp    func(events.PointerUpEvent, *events.Context) events.Result
	OnPointerMove  func(events.PointerMoveEvent, *events.Context) events.Result
	OnScroll       func(events.ScrollEvent, *events.Context) events.Result
	OnKeyDown      func(events.KeyDownEvent, *events.Context) events.Result
	OnKeyUp        func(events.KeyUpEvent, *events.Context) events.Result
	OnTextInput    func(events.TextInputEvent, *events.Context) events.Result
	OnFocus        func()
	OnBlur         func()
	OnPointerEnter func(events.PointerEnterEvent)
	OnPointerLeave func(events.PointerLeaveEvent)
}

func (l Listener) Build(ctx *core.BuildContext) core.WidgetNode {
	if l.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(l.ChildWidget)
}

func (l Listener) HandleEvent(event events.Event, ctx *events.Context) events.Result {
	if l.Capture {
		if ctx.Phase != events.PhaseCapture && ctx.Phase != events.PhaseTarget {
			return events.Unhandled
		}
	} else if ctx.Phase == events.PhaseCapture {
		return events.Unhandled
	}

	switch e := event.(type) {
	case events.PointerDownEvent:
		if l.OnPointerDown != nil {
			return l.OnPointerDown(e, ctx)
		}
	case events.PointerUpEvent:
		if l.OnPointerUp != nil {
			return l.OnPointerUp(e, ctx)
		}
	case events.PointerMoveEvent:
		if l.OnPointerMove != nil {
			return l.OnPointerMove(e, ctx)
		}
	case events.ScrollEvent:
		if l.OnScroll != nil {
			return l.OnScroll(e, ctx)
		}
	case events.KeyDownEvent:
		if l.OnKeyDown != nil {
			return l.OnKeyDown(e, ctx)
		}
	case events.KeyUpEvent:
		if l.OnKeyUp != nil {
			return l.OnKeyUp(e, ctx)
		}
	case events.TextInputEvent:
		if l.OnTextInput != nil {
			return l.OnTextInput(e, ctx)
		}
	case events.FocusEvent:
		if l.OnFocus != nil {
			l.OnFocus()
			return events.Handled
		}
	case events.BlurEvent:
		if l.OnBlur != nil {
			l.OnBlur()
			return events.Handled
		}
	case events.PointerEnterEvent:
		if l.OnPointerEnter != nil {
			l.OnPointerEnter(e)
			return events.Handled
		}
	case events.PointerLeaveEvent:
		if l.OnPointerLeave != nil {
			l.OnPointerLeave(e)
			return events.Handled
		}
	}
	return events.Unhandled
}

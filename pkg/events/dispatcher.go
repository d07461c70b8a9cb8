package events

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
)

// Handler is implemented by widgets that want input. Widgets without it
// are transparent to dispatch; they still appear on the path but receive
// nothing.
type Handler interface {
	HandleEvent(event Event, ctx *Context) Result
}

// Context describes one handler invocation during dispatch.
type Context struct {
	// Phase is the dispatch phase this invocation belongs to.
	Phase Phase

	// Target is the element the event was aimed at.
	Target core.ElementID

	// Element is the element whose handler is being invoked.
	Element core.ElementID

	// LocalPosition is the event position in the invoked element's
	// coordinate space. Zero for non-positional events.
	LocalPosition geometry.Offset

	tree *core.Tree
}

// Tree returns the element tree the event is dispatched against.
func (c *Context) Tree() *core.Tree {
	return c.tree
}

// Dispatcher hit-tests events against the element tree and propagates
// them capture-target-bubble. The only state it retains between events is
// the focused and the hovered element.
type Dispatcher struct {
	focused core.ElementID
	hovered core.ElementID
}

// NewDispatcher creates a dispatcher with nothing focused or hovered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Focused returns the currently focused element, or NoElement.
func (d *Dispatcher) Focused() core.ElementID {
	return d.focused
}

// Hovered returns the element currently under the pointer, or NoElement.
func (d *Dispatcher) Hovered() core.ElementID {
	return d.hovered
}

// Dispatch resolves the event's target and propagates it. Pointer events
// target the deepest element under the position; key, text, focus and
// blur events target the focused element. Events with no target are
// Unhandled.
func (d *Dispatcher) Dispatch(tree *core.Tree, event Event) Result {
	target := d.resolveTarget(tree, event)

	if move, ok := event.(PointerMoveEvent); ok {
		d.updateHover(tree, target, move.Position)
	}
	if target == core.NoElement {
		return Unhandled
	}
	return d.propagate(tree, event, target)
}

// SetFocus moves focus to the given element, or clears it with
// NoElement. The old element observes a blur before the new one observes
// a focus; both are delivered as separate dispatches.
func (d *Dispatcher) SetFocus(tree *core.Tree, id core.ElementID) {
	if id == d.focused {
		return
	}
	if id != core.NoElement {
		if _, ok := tree.Get(id); !ok {
			id = core.NoElement
		}
	}
	previous := d.focused
	d.focused = id
	if previous != core.NoElement {
		d.propagate(tree, BlurEvent{}, previous)
	}
	if id != core.NoElement {
		d.propagate(tree, FocusEvent{}, id)
	}
}

// ClearElement drops any focus or hover reference to a removed element.
func (d *Dispatcher) ClearElement(id core.ElementID) {
	if d.focused == id {
		d.focused = core.NoElement
	}
	if d.hovered == id {
		d.hovered = core.NoElement
	}
}

func (d *Dispatcher) resolveTarget(tree *core.Tree, event Event) core.ElementID {
	if position, ok := eventPosition(event); ok {
		return d.HitTest(tree, position)
	}
	switch event.(type) {
	case KeyDownEvent, KeyUpEvent, TextInputEvent, FocusEvent, BlurEvent:
		if d.focused != core.NoElement {
			if _, ok := tree.Get(d.focused); !ok {
				d.focused = core.NoElement
			}
		}
		return d.focused
	}
	return core.NoElement
}

// updateHover compares the element under the pointer with the previous
// hover and emits edge-triggered leave then enter notifications.
func (d *Dispatcher) updateHover(tree *core.Tree, target core.ElementID, position geometry.Offset) {
	if target == d.hovered {
		return
	}
	previous := d.hovered
	d.hovered = target
	if previous != core.NoElement {
		if _, ok := tree.Get(previous); ok {
			d.propagate(tree, PointerLeaveEvent{Position: position}, previous)
		}
	}
	if target != core.NoElement {
		d.propagate(tree, PointerEnterEvent{Position: position}, target)
	}
}

// HitTest returns the deepest element whose bounds contain the point,
// testing children in reverse order so that later siblings, painted on
// top, win. NoElement means the point missed the tree entirely.
func (d *Dispatcher) HitTest(tree *core.Tree, point geometry.Offset) core.ElementID {
	root := tree.Root()
	if root == core.NoElement {
		return core.NoElement
	}
	return d.hitTestElement(tree, root, point)
}

func (d *Dispatcher) hitTestElement(tree *core.Tree, id core.ElementID, point geometry.Offset) core.ElementID {
	element, ok := tree.Get(id)
	if !ok {
		return core.NoElement
	}
	local := point.Sub(element.Offset())

	children := element.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := d.hitTestElement(tree, children[i], local); hit != core.NoElement {
			return hit
		}
	}

	size := element.Size()
	bounds := geometry.RectFromLTWH(0, 0, size.Width, size.Height)
	if bounds.Contains(local) {
		return id
	}
	return core.NoElement
}

// propagate delivers the event along the root-to-target path: capturing
// ancestors root-down, the target, then bubbling ancestors target-up.
// Stopped terminates everything that remains.
func (d *Dispatcher) propagate(tree *core.Tree, event Event, target core.ElementID) Result {
	path := ancestorPath(tree, target)
	if len(path) == 0 {
		return Unhandled
	}
	result := Unhandled

	for _, id := range path[:len(path)-1] {
		switch d.invoke(tree, event, id, target, PhaseCapture) {
		case Stopped:
			return Stopped
		case Handled:
			result = Handled
		}
	}

	switch d.invoke(tree, event, target, target, PhaseTarget) {
	case Stopped:
		return Stopped
	case Handled:
		result = Handled
	}

	for i := len(path) - 2; i >= 0; i-- {
		switch d.invoke(tree, event, path[i], target, PhaseBubble) {
		case Stopped:
			return Stopped
		case Handled:
			result = Handled
		}
	}
	return result
}

func (d *Dispatcher) invoke(tree *core.Tree, event Event, id, target core.ElementID, phase Phase) Result {
	element, ok := tree.Get(id)
	if !ok {
		return Unhandled
	}
	handler, ok := element.Widget().(Handler)
	if !ok {
		return Unhandled
	}
	ctx := &Context{
		Phase:   phase,
		Target:  target,
		Element: id,
		tree:    tree,
	}
	if position, ok := eventPosition(event); ok {
		ctx.LocalPosition = position.Sub(tree.AbsoluteOffset(id))
	}
	return handler.HandleEvent(event, ctx)
}

// ancestorPath returns the chain root..target inclusive, in root-first
// order. Empty if the target is gone.
func ancestorPath(tree *core.Tree, target core.ElementID) []core.ElementID {
	var reversed []core.ElementID
	for id := target; id != core.NoElement; {
		element, ok := tree.Get(id)
		if !ok {
			return nil
		}
		reversed = append(reversed, id)
		id = element.Parent()
	}
	path := make([]core.ElementID, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

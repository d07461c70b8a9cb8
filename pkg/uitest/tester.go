package uitest

import (
	"testing"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/engine"
	"github.com/go-quill/quill/pkg/events"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/rendering"
	"github.com/go-quill/quill/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height of the test surface.
	DefaultTestHeight = 600
)

// Tester drives real engine frames against a recording renderer.
type Tester struct {
	t        *testing.T
	engine   *engine.Engine
	renderer *RecordingRenderer
}

// NewTester creates a tester with the default surface size and light
// theme.
func NewTester(t *testing.T) *Tester {
	renderer := NewRecordingRenderer()
	eng := engine.New(renderer, theme.DefaultLight())
	eng.SetViewport(geometry.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})
	return &Tester{t: t, engine: eng, renderer: renderer}
}

// SetViewport resizes the test surface.
func (t *Tester) SetViewport(size geometry.Size) {
	t.engine.SetViewport(size)
}

// Engine exposes the engine under test.
func (t *Tester) Engine() *engine.Engine {
	return t.engine
}

// Renderer exposes the recording renderer for error injection and frame
// inspection.
func (t *Tester) Renderer() *RecordingRenderer {
	return t.renderer
}

// Pump installs a root widget and renders one frame.
func (t *Tester) Pump(widget core.Widget) engine.FrameStats {
	t.t.Helper()
	t.engine.SetRootWidget(widget)
	return t.PumpFrame()
}

// PumpFrame renders one frame with the current root. A renderer failure
// fails the test; use the engine directly to assert on render errors.
func (t *Tester) PumpFrame() engine.FrameStats {
	t.t.Helper()
	stats, err := t.engine.RenderFrame()
	if err != nil {
		t.t.Fatalf("RenderFrame failed: %v", err)
	}
	return stats
}

// DisplayList returns the last committed display list.
func (t *Tester) DisplayList() *rendering.DisplayList {
	return t.engine.DisplayList()
}

// Dispatch delivers one event to the engine.
func (t *Tester) Dispatch(event events.Event) events.Result {
	return t.engine.Dispatch(event)
}

// TapAt dispatches a primary-button press and release at the position.
// The returned result is the press result.
func (t *Tester) TapAt(position geometry.Offset) events.Result {
	result := t.engine.Dispatch(events.PointerDownEvent{Position: position, Button: events.ButtonPrimary})
	t.engine.Dispatch(events.PointerUpEvent{Position: position, Button: events.ButtonPrimary})
	return result
}

// MoveTo dispatches a pointer move, producing hover transitions.
func (t *Tester) MoveTo(position geometry.Offset) events.Result {
	return t.engine.Dispatch(events.PointerMoveEvent{Position: position})
}

// SendKey dispatches a key press and release to the focused element.
func (t *Tester) SendKey(key events.Key, modifiers events.Modifiers) events.Result {
	result := t.engine.Dispatch(events.KeyDownEvent{Key: key, Modifiers: modifiers})
	t.engine.Dispatch(events.KeyUpEvent{Key: key, Modifiers: modifiers})
	return result
}

// TypeText dispatches committed text to the focused element.
func (t *Tester) TypeText(text string) events.Result {
	return t.engine.Dispatch(events.TextInputEvent{Text: text})
}

// FocusOn moves keyboard focus to the element.
func (t *Tester) FocusOn(id core.ElementID) {
	t.engine.SetFocus(id)
}

// Find evaluates a finder against the element tree, depth-first
// pre-order.
func (t *Tester) Find(finder Finder) FinderResult {
	var matches []core.ElementID
	t.engine.Tree().Read(func(tree *core.Tree) {
		var walk func(id core.ElementID)
		walk = func(id core.ElementID) {
			element, ok := tree.Get(id)
			if !ok {
				return
			}
			if finder.Matches(element.Widget()) {
				matches = append(matches, id)
			}
			for _, child := range element.Children() {
				walk(child)
			}
		}
		if root := tree.Root(); root != core.NoElement {
			walk(root)
		}
	})
	return FinderResult{t: t.t, ids: matches, finder: finder}
}

// ElementBounds returns the absolute bounds of an element.
func (t *Tester) ElementBounds(id core.ElementID) geometry.Rect {
	var bounds geometry.Rect
	t.engine.Tree().Read(func(tree *core.Tree) {
		if element, ok := tree.Get(id); ok {
			bounds = geometry.RectFromOffsetSize(tree.AbsoluteOffset(id), element.Size())
		}
	})
	return bounds
}

// TextContents returns the content of every text item in the last
// committed display list, in paint order.
func (t *Tester) TextContents() []string {
	var contents []string
	for _, item := range t.engine.DisplayList().Items {
		if text, ok := item.Primitive.(*rendering.TextPrimitive); ok {
			contents = append(contents, text.Content)
		}
	}
	return contents
}

// Package engine owns the frame loop: it applies queued state mutations,
// rebuilds dirty subtrees, runs layout, tracks damage, and hands the
// resulting display list to a renderer.
//
// A single logical owner drives all UI mutation. Every frame and every
// dispatched event runs under the engine's frame lock; auxiliary
// goroutines feed work in through Schedule rather than touching the tree
// directly.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/errors"
	"github.com/go-quill/quill/pkg/events"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/rendering"
	"github.com/go-quill/quill/pkg/theme"
)

// maxBuildPasses bounds the rebuild/layout convergence loop within one
// frame. Layout-dependent builds settle in two passes; anything that
// still oscillates after three is cut off until the next frame.
const maxBuildPasses = 3

// Renderer consumes the frame output. Implementations own presentation
// entirely; a failed render leaves the engine usable with its last
// committed display list.
type Renderer interface {
	Render(list *rendering.DisplayList, damage *rendering.DamageRegion) error
}

// FrameStats summarizes one RenderFrame call.
type FrameStats struct {
	// Frame is the monotonically increasing frame number.
	Frame uint64

	// BuildPasses is how many rebuild/layout passes the frame took.
	BuildPasses int

	// Elements is the element count after reconciliation.
	Elements int

	// DisplayItems is the culled display list length.
	DisplayItems int

	// BuildDuration covers rebuild and layout convergence.
	BuildDuration time.Duration

	// RenderDuration covers the backend Render call.
	RenderDuration time.Duration

	// Duration is the wall time spent producing the whole frame.
	Duration time.Duration
}

// Engine coordinates the reconciler, layout engine, dispatcher and render
// pipeline over one shared element tree.
type Engine struct {
	frameLock sync.Mutex

	tree       *core.SharedTree
	reconciler *core.Reconciler
	layouter   *core.LayoutEngine
	dispatcher *events.Dispatcher
	pipeline   *rendering.Pipeline
	renderer   Renderer

	root     core.Widget
	viewport geometry.Size

	pendingMu sync.Mutex
	pending   []func(*core.Tree)

	committed     *rendering.DisplayList
	frame         uint64
	lastRenderErr error
}

// New creates an engine rendering into the given renderer. A nil theme
// selects the default light theme.
func New(renderer Renderer, th *theme.Theme) *Engine {
	return &Engine{
		tree:       core.NewSharedTree(),
		reconciler: core.NewReconciler(th),
		layouter:   core.NewLayoutEngine(),
		dispatcher: events.NewDispatcher(),
		pipeline:   rendering.NewPipeline(geometry.Rect{}),
		renderer:   renderer,
		committed:  &rendering.DisplayList{},
	}
}

// SetRootWidget installs the widget describing the whole interface. The
// next frame reconciles it against the retained tree.
func (e *Engine) SetRootWidget(widget core.Widget) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.root = widget
	e.markRootDirty()
}

// SetViewport resizes the viewport. The whole window is damaged and the
// tree relaid out under the new constraints.
func (e *Engine) SetViewport(size geometry.Size) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.viewport = size
	e.pipeline.SetViewport(geometry.RectFromLTWH(0, 0, size.Width, size.Height))
	e.pipeline.MarkDamaged(e.pipeline.Viewport())
	e.markRootDirty()
}

// Tree returns the shared element tree handle for auxiliary subsystems.
func (e *Engine) Tree() *core.SharedTree {
	return e.tree
}

// Focused returns the currently focused element.
func (e *Engine) Focused() core.ElementID {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.dispatcher.Focused()
}

// SetFocus moves keyboard focus, delivering blur and focus notifications.
func (e *Engine) SetFocus(id core.ElementID) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	e.tree.Update(func(tree *core.Tree) {
		e.dispatcher.SetFocus(tree, id)
	})
}

// Dispatch delivers one input event. Handlers run under the frame lock
// and may mark elements dirty; the changes take effect next frame.
func (e *Engine) Dispatch(event events.Event) events.Result {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	result := events.Unhandled
	e.tree.Update(func(tree *core.Tree) {
		result = e.dispatcher.Dispatch(tree, event)
	})
	return result
}

// Schedule queues a state mutation to run at the start of the next frame.
// Safe to call from any goroutine; completions of asynchronous work enter
// the UI this way.
func (e *Engine) Schedule(mutation func(tree *core.Tree)) {
	if mutation == nil {
		return
	}
	e.pendingMu.Lock()
	e.pending = append(e.pending, mutation)
	e.pendingMu.Unlock()
}

// RenderFrame produces one frame: queued mutations, rebuild and layout to
// convergence, damage accounting, display list construction, then the
// renderer. A renderer failure is reported and returned; the previously
// committed display list stays valid.
func (e *Engine) RenderFrame() (FrameStats, error) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()

	start := time.Now()
	e.frame++
	stats := FrameStats{Frame: e.frame}

	var list *rendering.DisplayList
	e.tree.Update(func(tree *core.Tree) {
		e.applyPending(tree)
		stats.BuildPasses = e.buildAndLayout(tree)
		stats.Elements = tree.Len()
		list = e.pipeline.BuildDisplayList(e.assembleScene(tree))
	})
	stats.DisplayItems = list.Len()
	stats.BuildDuration = time.Since(start)

	var err error
	if e.renderer != nil {
		renderStart := time.Now()
		renderErr := e.renderer.Render(list, e.pipeline.Damage())
		stats.RenderDuration = time.Since(renderStart)
		if renderErr != nil {
			uiErr := &errors.UIError{
				Op:        "engine.RenderFrame",
				Kind:      errors.KindRender,
				Err:       fmt.Errorf("renderer failed: %w", renderErr),
				Timestamp: time.Now(),
			}
			errors.Report(uiErr)
			err = uiErr
		}
	}
	e.lastRenderErr = err
	if err == nil {
		e.committed = list
		e.pipeline.ClearDamage()
	}

	stats.Duration = time.Since(start)
	return stats, err
}

// LastRenderError returns the error from the most recent frame, or nil if
// the frame committed.
func (e *Engine) LastRenderError() error {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.lastRenderErr
}

// DisplayList returns the last successfully committed display list.
func (e *Engine) DisplayList() *rendering.DisplayList {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.committed
}

// Damage returns the accumulated damage region.
func (e *Engine) Damage() *rendering.DamageRegion {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	return e.pipeline.Damage()
}

func (e *Engine) markRootDirty() {
	e.tree.Update(func(tree *core.Tree) {
		if root := tree.Root(); root != core.NoElement {
			tree.MarkDirty(root)
		}
	})
}

func (e *Engine) applyPending(tree *core.Tree) {
	e.pendingMu.Lock()
	pending := e.pending
	e.pending = nil
	e.pendingMu.Unlock()
	for _, mutation := range pending {
		runMutation(mutation, tree)
	}
}

// runMutation isolates one scheduled mutation so a panic in it is reported
// and the rest of the frame still runs.
func runMutation(mutation func(*core.Tree), tree *core.Tree) {
	defer errors.Recover("engine.Schedule")
	mutation(tree)
}

// buildAndLayout reconciles the root widget and runs rebuild/layout
// passes until the dirty set settles or the pass bound is hit. Damage is
// recorded for the deepest dirty subtrees both before and after, so both
// the old and the new screen area of a change are repainted.
func (e *Engine) buildAndLayout(tree *core.Tree) int {
	if e.root == nil {
		return 0
	}
	constraints := layout.Tight(e.viewport)
	e.reconciler.EnsureRoot(tree, e.root, constraints)

	passes := 0
	for passes < maxBuildPasses {
		dirty := tree.CollectDirty()
		if len(dirty) == 0 {
			break
		}
		e.damageDirty(tree, dirty)
		// RebuildDirty consumes the flags it processes; marks raised by
		// layout below survive and drive the next pass.
		e.reconciler.RebuildDirty(tree)
		e.layouter.LayoutTree(tree, constraints)
		e.damageDirty(tree, dirty)
		passes++
	}
	return passes
}

// damageDirty adds the absolute bounds of the deepest dirty elements to
// the damage region. Ancestors are dirty only because of propagation;
// damaging them too would inflate every change to the whole window.
func (e *Engine) damageDirty(tree *core.Tree, dirty []core.ElementID) {
	dirtySet := make(map[core.ElementID]bool, len(dirty))
	for _, id := range dirty {
		dirtySet[id] = true
	}
	for _, id := range dirty {
		element, ok := tree.Get(id)
		if !ok {
			continue
		}
		deepest := true
		for _, child := range element.Children() {
			if dirtySet[child] {
				deepest = false
				break
			}
		}
		if !deepest {
			continue
		}
		origin := tree.AbsoluteOffset(id)
		e.pipeline.MarkDamaged(geometry.RectFromOffsetSize(origin, element.Size()))
	}
}

// assembleScene converts the laid-out element tree into a drawing
// primitive tree. Each element contributes its cached primitive or a
// group of its children, translated to its layout position.
func (e *Engine) assembleScene(tree *core.Tree) rendering.Primitive {
	root := tree.Root()
	if root == core.NoElement {
		return nil
	}
	return e.assembleElement(tree, root)
}

func (e *Engine) assembleElement(tree *core.Tree, id core.ElementID) rendering.Primitive {
	element, ok := tree.Get(id)
	if !ok {
		return nil
	}

	var content rendering.Primitive
	if children := element.Children(); len(children) > 0 {
		parts := make([]rendering.Primitive, 0, len(children))
		for _, child := range children {
			if part := e.assembleElement(tree, child); part != nil {
				parts = append(parts, part)
			}
		}
		switch len(parts) {
		case 0:
			content = nil
		case 1:
			content = parts[0]
		default:
			content = rendering.NewGroup(parts...)
		}
	} else {
		content = element.Primitive()
	}

	if content == nil {
		return nil
	}
	offset := element.Offset()
	if offset == (geometry.Offset{}) {
		return content
	}
	return rendering.NewTransform(geometry.Translation(offset.X, offset.Y), content)
}

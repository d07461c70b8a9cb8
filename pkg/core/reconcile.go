package core

import (
	"reflect"
	"time"

	"github.com/go-quill/quill/pkg/errors"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/theme"
)

// Reconciler diffs fresh widget descriptions against the retained tree:
// compatible elements are reused with their state intact, incompatible
// ones are torn down and replaced.
//
// Child lists are matched key-first: a keyed child is tracked across slot
// reorderings by looking its key up among the previous children, while
// unkeyed children match positionally among the remaining unkeyed slots.
// Omitting keys on a reordered list therefore re-adopts instances by
// position, not by logical identity; callers that reorder stateful
// children must key them.
type Reconciler struct {
	theme *theme.Theme
}

// NewReconciler creates a reconciler that builds widgets against the given
// theme.
func NewReconciler(th *theme.Theme) *Reconciler {
	if th == nil {
		th = theme.DefaultLight()
	}
	return &Reconciler{theme: th}
}

// EnsureRoot reconciles the root widget into the tree, mounting it on
// first use and replacing it when it becomes incompatible. The root always
// receives the viewport constraints.
func (r *Reconciler) EnsureRoot(tree *Tree, widget Widget, constraints layout.Constraints) ElementID {
	constraints = constraints.Normalize()
	if root := tree.Root(); root != NoElement {
		if element, ok := tree.Get(root); ok {
			if canUpdate(element, widget) {
				if !reflect.DeepEqual(element.widget, widget) {
					element.dirty = true
				}
				element.widget = widget
				element.constraints = constraints
				return root
			}
			r.Unmount(tree, root)
		}
	}
	id := r.mount(tree, widget, NoElement)
	if element, ok := tree.Get(id); ok {
		element.constraints = constraints
	}
	tree.SetRoot(id)
	return id
}

// RebuildDirty re-derives descriptions for every dirty subtree, starting
// from the root. Dirty marks always propagate to the root, so a single
// top-down walk reaches every dirty element; clean subtrees are skipped.
func (r *Reconciler) RebuildDirty(tree *Tree) {
	root := tree.Root()
	if root == NoElement {
		return
	}
	r.buildElement(tree, root)
}

// buildElement rebuilds one dirty element and recurses into any children
// left dirty by reconciliation.
func (r *Reconciler) buildElement(tree *Tree, id ElementID) {
	element, ok := tree.Get(id)
	if !ok || !element.dirty {
		return
	}
	element.dirty = false

	ctx := NewBuildContext(tree, id, element.constraints, r.theme)
	node := r.safeBuild(element, ctx)

	switch {
	case node.IsEmpty():
		element.primitive = nil
		r.unmountChildren(tree, element)
	case node.Primitive() != nil || len(node.Children()) == 0:
		element.primitive = node.Primitive()
		r.unmountChildren(tree, element)
	default:
		element.primitive = nil
		r.reconcileChildren(tree, element, node.Children())
		for _, child := range element.children {
			r.buildElement(tree, child)
		}
	}
}

// reconcileChildren matches the new child descriptions against the
// element's existing children, reusing what it can and unmounting the rest.
func (r *Reconciler) reconcileChildren(tree *Tree, parent *Element, widgets []Widget) {
	fresh := widgets[:0:0]
	for _, w := range widgets {
		if w != nil {
			fresh = append(fresh, w)
		}
	}

	previous := make([]ElementID, len(parent.children))
	copy(previous, parent.children)

	keyed := make(map[any]ElementID)
	var unkeyed []ElementID
	for _, childID := range previous {
		child, ok := tree.Get(childID)
		if !ok {
			continue
		}
		if child.key != nil {
			keyed[child.key] = childID
		} else {
			unkeyed = append(unkeyed, childID)
		}
	}

	used := make(map[ElementID]bool)
	result := make([]ElementID, 0, len(fresh))
	unkeyedIndex := 0

	for _, w := range fresh {
		reuse := NoElement
		if key := widgetKey(w); key != nil {
			if candidate, ok := keyed[key]; ok && !used[candidate] {
				if child, ok := tree.Get(candidate); ok && child.widgetType == widgetType(w) {
					reuse = candidate
				}
			}
		} else if unkeyedIndex < len(unkeyed) {
			candidate := unkeyed[unkeyedIndex]
			unkeyedIndex++
			if child, ok := tree.Get(candidate); ok && child.widgetType == widgetType(w) {
				reuse = candidate
			}
		}

		if reuse != NoElement {
			used[reuse] = true
			child, _ := tree.Get(reuse)
			// The parent re-described this child, so its own description
			// must be re-derived even when the config is unchanged.
			child.dirty = true
			child.widget = w
			result = append(result, reuse)
			continue
		}
		result = append(result, r.mount(tree, w, parent.id))
	}

	for _, childID := range previous {
		if !used[childID] {
			r.Unmount(tree, childID)
		}
	}

	// Rewrite the child list in description order. Every entry exists and
	// already points back at this parent.
	parent.children = result
}

// mount creates a fresh element for the widget, seeds its constraints from
// the parent so the first build sees a sensible box, and creates state for
// stateful widgets.
func (r *Reconciler) mount(tree *Tree, widget Widget, parent ElementID) ElementID {
	id := tree.Create(widget, parent, -1)
	element, _ := tree.Get(id)
	if parentElement, ok := tree.Get(parent); ok {
		element.constraints = parentElement.constraints
	}
	if stateful, ok := widget.(StatefulWidget); ok {
		element.state = stateful.CreateState()
	}
	return id
}

// Unmount tears down an element and its subtree, children before parents,
// disposing any state that asks for it.
func (r *Reconciler) Unmount(tree *Tree, id ElementID) {
	element, ok := tree.Get(id)
	if !ok {
		return
	}
	children := make([]ElementID, len(element.children))
	copy(children, element.children)
	for _, child := range children {
		r.Unmount(tree, child)
	}
	if disposer, ok := element.state.(Disposer); ok {
		disposer.Dispose()
	}
	tree.Remove(id)
}

func (r *Reconciler) unmountChildren(tree *Tree, element *Element) {
	if len(element.children) == 0 {
		return
	}
	children := make([]ElementID, len(element.children))
	copy(children, element.children)
	for _, child := range children {
		r.Unmount(tree, child)
	}
	element.children = nil
}

// safeBuild executes a widget build with panic recovery. A panicking build
// is reported through the global error handler and renders nothing; it
// never aborts the process.
func (r *Reconciler) safeBuild(element *Element, ctx *BuildContext) WidgetNode {
	var node WidgetNode
	var buildErr *errors.BuildError

	func() {
		defer func() {
			if rec := recover(); rec != nil {
				buildErr = &errors.BuildError{
					Widget:     reflect.TypeOf(element.widget).String(),
					Recovered:  rec,
					StackTrace: errors.CaptureStack(),
					Timestamp:  time.Now(),
				}
			}
		}()
		node = element.widget.Build(ctx)
	}()

	if buildErr != nil {
		errors.ReportBuildError(buildErr)
		return EmptyNode()
	}
	return node
}

// canUpdate reports whether an existing element may host the new widget:
// same type fingerprint and equal key, absent keys matching each other.
func canUpdate(element *Element, widget Widget) bool {
	if element.widgetType != widgetType(widget) {
		return false
	}
	return reflect.DeepEqual(element.key, widgetKey(widget))
}

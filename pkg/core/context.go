package core

import (
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/theme"
)

// BuildContext is the per-build bundle handed to every Build call: the
// target element's identity, the constraints it last received, the current
// theme, and access to the retained tree. Contexts are cheap to derive and
// valid only for the duration of the build that received them.
type BuildContext struct {
	tree        *Tree
	element     ElementID
	constraints layout.Constraints
	theme       *theme.Theme
}

// NewBuildContext creates a context for the given element.
func NewBuildContext(tree *Tree, element ElementID, constraints layout.Constraints, th *theme.Theme) *BuildContext {
	return &BuildContext{tree: tree, element: element, constraints: constraints, theme: th}
}

// Element returns the identity of the element being built.
func (c *BuildContext) Element() ElementID { return c.element }

// Constraints returns the constraints the element last received from
// layout. Before the first layout pass these are the root constraints.
func (c *BuildContext) Constraints() layout.Constraints { return c.constraints }

// Theme returns the ambient theme configuration.
func (c *BuildContext) Theme() *theme.Theme { return c.theme }

// State returns the element's opaque state, or nil for stateless widgets.
func (c *BuildContext) State() any {
	if element, ok := c.tree.Get(c.element); ok {
		return element.State()
	}
	return nil
}

// Parent returns the parent element's ID, or NoElement.
func (c *BuildContext) Parent() ElementID {
	if element, ok := c.tree.Get(c.element); ok {
		return element.Parent()
	}
	return NoElement
}

// FindAncestor walks up the parent chain and returns the first ancestor
// whose widget satisfies the predicate, or NoElement.
func (c *BuildContext) FindAncestor(predicate func(Widget) bool) ElementID {
	current := c.Parent()
	for current != NoElement {
		element, ok := c.tree.Get(current)
		if !ok {
			break
		}
		if predicate(element.Widget()) {
			return current
		}
		current = element.Parent()
	}
	return NoElement
}

// MarkDirty schedules the element (and its ancestor path) for rebuild.
func (c *BuildContext) MarkDirty() {
	c.tree.MarkDirty(c.element)
}

// childContext derives a context for a child element. The child inherits
// the tree and theme; constraints come from the child's own element so a
// rebuilt child sees what layout last handed it.
func (c *BuildContext) childContext(child ElementID) *BuildContext {
	constraints := c.constraints
	if element, ok := c.tree.Get(child); ok {
		constraints = element.Constraints()
	}
	return &BuildContext{tree: c.tree, element: child, constraints: constraints, theme: c.theme}
}

package core

import (
	"reflect"

	"github.com/go-quill/quill/pkg/rendering"
)

// Widget is the single capability the core consumes from a visual
// component: describe yourself. Implementations must be immutable value
// types; the runtime compares them with reflect.DeepEqual to decide
// whether a reused element needs rebuilding.
type Widget interface {
	Build(ctx *BuildContext) WidgetNode
}

// StatefulWidget is a widget whose element owns mutable state. CreateState
// runs once when the element mounts; the returned value is preserved across
// rebuilds for as long as reconciliation reuses the element.
type StatefulWidget interface {
	Widget
	CreateState() any
}

// Keyer is implemented by widgets that carry an explicit reconciliation
// key. Keys must be comparable values (strings or integers); two widgets
// are compatible only when both type and key match, with absent keys on
// both sides counting as a match.
type Keyer interface {
	Key() any
}

// Disposer is implemented by state values that need cleanup when their
// element unmounts. Unmounting cancels nothing by itself; externally
// scheduled work that outlives its element must be cancelled by whoever
// scheduled it.
type Disposer interface {
	Dispose()
}

// nodeKind discriminates the WidgetNode union.
type nodeKind int

const (
	nodeEmpty nodeKind = iota
	nodePrimitive
	nodeChildren
)

// WidgetNode is the immutable result of building a widget: a single
// drawing primitive, an ordered list of child widgets, or nothing.
type WidgetNode struct {
	kind      nodeKind
	primitive rendering.Primitive
	children  []Widget
}

// PrimitiveNode wraps a drawing primitive as a leaf description.
func PrimitiveNode(p rendering.Primitive) WidgetNode {
	return WidgetNode{kind: nodePrimitive, primitive: p}
}

// ChildrenNode wraps an ordered list of child descriptions. Nil entries
// are skipped during reconciliation.
func ChildrenNode(children ...Widget) WidgetNode {
	return WidgetNode{kind: nodeChildren, children: children}
}

// EmptyNode describes nothing.
func EmptyNode() WidgetNode {
	return WidgetNode{}
}

// IsEmpty reports whether the node describes nothing.
func (n WidgetNode) IsEmpty() bool {
	return n.kind == nodeEmpty
}

// Primitive returns the node's drawing primitive, or nil for non-leaf nodes.
func (n WidgetNode) Primitive() rendering.Primitive {
	return n.primitive
}

// Children returns the node's child descriptions, or nil for leaf nodes.
func (n WidgetNode) Children() []Widget {
	return n.children
}

// widgetKey returns the widget's explicit key, or nil.
func widgetKey(w Widget) any {
	if keyer, ok := w.(Keyer); ok {
		return keyer.Key()
	}
	return nil
}

// widgetType returns the stable type fingerprint used as the
// reconciliation compatibility tag.
func widgetType(w Widget) reflect.Type {
	return reflect.TypeOf(w)
}

package widgets

import "github.com/go-quill/quill/pkg/core"

// Keyed attaches an explicit reconciliation key to its child, so the
// retained element and its state follow the child across list
// reorderings.
type Keyed struct {
	KeyValue    any
	ChildWidget core.Widget
}

// WithKey wraps a widget in an explicit key.
func WithKey(key any, child core.Widget) Keyed {
	return Keyed{KeyValue: key, ChildWidget: child}
}

func (k Keyed) Key() any {
	return k.KeyValue
}

func (k Keyed) Build(ctx *core.BuildContext) core.WidgetNode {
	if k.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(k.ChildWidget)
}

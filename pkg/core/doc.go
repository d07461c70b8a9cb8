// Package core provides the retained element tree and the machinery that
// keeps it in sync with declarative widget descriptions.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. Widgets are
// lightweight configuration objects that can be created frequently without
// performance concerns. A widget's Build method returns a WidgetNode: a
// single drawing primitive, a list of child widgets, or nothing.
//
// Element is the instantiation of a Widget at a particular location in the
// tree. Elements live in an arena Tree indexed by ElementID, persist across
// rebuilds, and own any per-instance state.
//
// The Reconciler diffs fresh widget descriptions against the retained tree,
// reusing elements whose type tag and key match and replacing the rest.
// The LayoutEngine then runs the box-constraint protocol over the tree:
// constraints flow down, concrete sizes flow back up.
//
// # Stateful Widgets
//
// Widgets that need mutable state implement StatefulWidget. The state value
// is created once when the element mounts and survives any number of
// rebuilds as long as reconciliation keeps reusing the element:
//
//	type counter struct{}
//
//	func (counter) CreateState() any { return &counterState{} }
//
//	func (c counter) Build(ctx *core.BuildContext) core.WidgetNode {
//	    state := ctx.State().(*counterState)
//	    ...
//	}
//
// # Concurrency
//
// A single frame owner mutates the tree. SharedTree wraps the arena in a
// reader/writer lock so auxiliary subsystems can request reads or mutations
// between frames; closures passed to it must not re-enter the lock.
package core

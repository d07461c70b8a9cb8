// Package widgets provides the standard visual vocabulary: text, boxes,
// padding, alignment, flex rows and columns, stacks, and input listeners.
//
// Widgets are immutable value types. A widget describes itself by
// returning a [core.WidgetNode] from Build; widgets that need control
// over their box implement [core.Layouter] as well. Widgets never hold
// runtime state directly; state lives on the retained element and is
// reached through the build context.
package widgets

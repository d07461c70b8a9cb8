package core

import (
	"reflect"
	"sync"

	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/rendering"
)

// ElementID is an opaque handle for elements in the tree. IDs increase
// monotonically per tree and are never reused after removal. The zero
// value means "no element".
type ElementID uint64

// NoElement is the zero ElementID.
const NoElement ElementID = 0

// Element is one retained runtime instance in the tree. It owns its
// per-instance state, cached drawing output, and layout results; the tree
// owns the parent/child structure.
type Element struct {
	id         ElementID
	widget     Widget
	widgetType reflect.Type
	key        any
	parent     ElementID
	children   []ElementID
	state      any
	dirty      bool

	primitive   rendering.Primitive
	constraints layout.Constraints
	size        geometry.Size
	offset      geometry.Offset
}

// ID returns the element's stable identity.
func (e *Element) ID() ElementID { return e.id }

// Widget returns the element's current widget description.
func (e *Element) Widget() Widget { return e.widget }

// Key returns the element's reconciliation key, or nil.
func (e *Element) Key() any { return e.key }

// Parent returns the parent's ID, or NoElement for the root.
func (e *Element) Parent() ElementID { return e.parent }

// Children returns the ordered child IDs. The order is the paint and
// hit-test order. Callers must not mutate the returned slice.
func (e *Element) Children() []ElementID { return e.children }

// State returns the element's opaque state, or nil.
func (e *Element) State() any { return e.state }

// SetState replaces the element's opaque state.
func (e *Element) SetState(state any) { e.state = state }

// Dirty reports whether the element is marked for rebuild.
func (e *Element) Dirty() bool { return e.dirty }

// Primitive returns the element's cached drawing output, or nil.
func (e *Element) Primitive() rendering.Primitive { return e.primitive }

// Constraints returns the constraints received during the last layout.
func (e *Element) Constraints() layout.Constraints { return e.constraints }

// Size returns the size resolved during the last layout.
func (e *Element) Size() geometry.Size { return e.size }

// Offset returns the element's position relative to its parent.
func (e *Element) Offset() geometry.Offset { return e.offset }

// Bounds returns the element's parent-relative layout rectangle.
func (e *Element) Bounds() geometry.Rect {
	return geometry.RectFromOffsetSize(e.offset, e.size)
}

// Tree is the arena of retained elements. It manages identity and
// structure only; no rendering or layout work happens here.
type Tree struct {
	elements map[ElementID]*Element
	root     ElementID
	nextID   ElementID
}

// NewTree creates an empty element tree.
func NewTree() *Tree {
	return &Tree{
		elements: make(map[ElementID]*Element),
		nextID:   1,
	}
}

// Create allocates a new element for the widget under the given parent at
// the given child slot. A slot past the end of the parent's child list
// appends. The new element starts dirty. The first element created in an
// empty tree becomes the root.
func (t *Tree) Create(widget Widget, parent ElementID, slot int) ElementID {
	id := t.nextID
	t.nextID++

	element := &Element{
		id:         id,
		widget:     widget,
		widgetType: widgetType(widget),
		key:        widgetKey(widget),
		parent:     parent,
		dirty:      true,
	}
	t.elements[id] = element

	if parentElement, ok := t.elements[parent]; ok {
		if slot < 0 || slot >= len(parentElement.children) {
			parentElement.children = append(parentElement.children, id)
		} else {
			parentElement.children = append(parentElement.children, 0)
			copy(parentElement.children[slot+1:], parentElement.children[slot:])
			parentElement.children[slot] = id
		}
	}

	if t.root == NoElement {
		t.root = id
	}
	return id
}

// Get returns the element for the given ID. A miss returns (nil, false):
// elements can be removed between a reference being taken and being used,
// so lookups never fail hard.
func (t *Tree) Get(id ElementID) (*Element, bool) {
	element, ok := t.elements[id]
	return element, ok
}

// Root returns the root element ID, or NoElement for an empty tree.
func (t *Tree) Root() ElementID { return t.root }

// SetRoot replaces the root element ID.
func (t *Tree) SetRoot(id ElementID) { t.root = id }

// Len returns the number of elements in the tree.
func (t *Tree) Len() int { return len(t.elements) }

// MarkDirty flags the element and every ancestor for rebuild. Marking is
// idempotent and commutative: repeated marks within a frame collapse to a
// single rebuild, and the full path to the root is always marked before
// the frame's reconciliation reads the dirty set.
func (t *Tree) MarkDirty(id ElementID) {
	current := id
	for current != NoElement {
		element, ok := t.elements[current]
		if !ok {
			return
		}
		element.dirty = true
		current = element.parent
	}
}

// Remove deletes the element and its entire subtree. Children are removed
// depth-first before the element itself is unlinked from its parent, so
// no dangling parent references survive. Removing a missing ID is a no-op.
func (t *Tree) Remove(id ElementID) {
	element, ok := t.elements[id]
	if !ok {
		return
	}

	// Snapshot the child list before mutating; removal edits it underneath us.
	children := make([]ElementID, len(element.children))
	copy(children, element.children)
	for _, child := range children {
		t.Remove(child)
	}

	if parentElement, ok := t.elements[element.parent]; ok {
		kept := parentElement.children[:0]
		for _, child := range parentElement.children {
			if child != id {
				kept = append(kept, child)
			}
		}
		parentElement.children = kept
	}

	delete(t.elements, id)
	if t.root == id {
		t.root = NoElement
	}
}

// CollectDirty returns the IDs of all elements currently marked dirty.
func (t *Tree) CollectDirty() []ElementID {
	var dirty []ElementID
	for id, element := range t.elements {
		if element.dirty {
			dirty = append(dirty, id)
		}
	}
	return dirty
}

// ClearDirty resets every dirty flag.
func (t *Tree) ClearDirty() {
	for _, element := range t.elements {
		element.dirty = false
	}
}

// AbsoluteOffset returns the element's position in root coordinates by
// summing parent-relative offsets up the ancestor chain.
func (t *Tree) AbsoluteOffset(id ElementID) geometry.Offset {
	var offset geometry.Offset
	current := id
	for current != NoElement {
		element, ok := t.elements[current]
		if !ok {
			break
		}
		offset = offset.Add(element.offset)
		current = element.parent
	}
	return offset
}

// SharedTree guards a Tree with a reader/writer lock so subsystems outside
// the frame owner can safely read or request mutation. Closures must not
// block or re-enter the lock; writers never hold it across a suspension
// point.
type SharedTree struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewSharedTree creates a shared handle around a fresh tree.
func NewSharedTree() *SharedTree {
	return &SharedTree{tree: NewTree()}
}

// Read runs fn with shared read access to the tree.
func (s *SharedTree) Read(fn func(*Tree)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.tree)
}

// Update runs fn with exclusive write access to the tree.
func (s *SharedTree) Update(fn func(*Tree)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.tree)
}

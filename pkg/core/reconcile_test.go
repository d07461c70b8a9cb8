package core

import (
	"testing"

	"github.com/go-quill/quill/pkg/errors"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// counterState is opaque element state whose pointer identity proves
// reuse.
type counterState struct {
	value    int
	disposed bool
}

func (s *counterState) Dispose() {
	s.disposed = true
}

// statefulLeaf owns a counterState.
type statefulLeaf struct {
	Label string
}

func (w statefulLeaf) Build(ctx *BuildContext) WidgetNode {
	return EmptyNode()
}

func (w statefulLeaf) CreateState() any {
	return &counterState{}
}

// keyedLeaf is a stateful leaf with an explicit key.
type keyedLeaf struct {
	K     any
	Label string
}

func (w keyedLeaf) Key() any {
	return w.K
}

func (w keyedLeaf) Build(ctx *BuildContext) WidgetNode {
	return EmptyNode()
}

func (w keyedLeaf) CreateState() any {
	return &counterState{}
}

// container renders a fixed child list.
type container struct {
	Kids []Widget
}

func (w container) Build(ctx *BuildContext) WidgetNode {
	return ChildrenNode(w.Kids...)
}

// panicky fails every build.
type panicky struct{}

func (w panicky) Build(ctx *BuildContext) WidgetNode {
	panic("deliberate build failure")
}

func testConstraints() layout.Constraints {
	return layout.Tight(geometry.Size{Width: 800, Height: 600})
}

func pumpOnce(tree *Tree, r *Reconciler, widget Widget) ElementID {
	root := r.EnsureRoot(tree, widget, testConstraints())
	r.RebuildDirty(tree)
	tree.ClearDirty()
	return root
}

func TestIdentityPreservedAcrossRebuilds(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	root := pumpOnce(tree, r, container{Kids: []Widget{statefulLeaf{Label: "a"}}})
	rootElement, _ := tree.Get(root)
	child := rootElement.Children()[0]

	childElement, _ := tree.Get(child)
	state := childElement.State().(*counterState)
	state.value = 42

	for i := 0; i < 5; i++ {
		tree.MarkDirty(root)
		pumpOnce(tree, r, container{Kids: []Widget{statefulLeaf{Label: "a"}}})
	}

	rootElement, _ = tree.Get(root)
	if got := rootElement.Children()[0]; got != child {
		t.Fatalf("child element replaced: %d -> %d", child, got)
	}
	childElement, _ = tree.Get(child)
	if childElement.State().(*counterState) != state {
		t.Error("state instance replaced on compatible rebuild")
	}
	if state.value != 42 {
		t.Errorf("state value = %d, want 42", state.value)
	}
}

func TestKeyedReorderReusesElements(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	root := pumpOnce(tree, r, container{Kids: []Widget{
		keyedLeaf{K: 1, Label: "A"},
		keyedLeaf{K: 2, Label: "B"},
	}})
	rootElement, _ := tree.Get(root)
	idA := rootElement.Children()[0]
	idB := rootElement.Children()[1]
	elementA, _ := tree.Get(idA)
	elementB, _ := tree.Get(idB)
	stateA := elementA.State().(*counterState)
	stateB := elementB.State().(*counterState)
	stateA.value = 1
	stateB.value = 2

	tree.MarkDirty(root)
	pumpOnce(tree, r, container{Kids: []Widget{
		keyedLeaf{K: 2, Label: "B"},
		keyedLeaf{K: 1, Label: "A"},
	}})

	rootElement, _ = tree.Get(root)
	children := rootElement.Children()
	if children[0] != idB || children[1] != idA {
		t.Fatalf("children = %v, want [%d %d]", children, idB, idA)
	}
	elementA, _ = tree.Get(idA)
	elementB, _ = tree.Get(idB)
	if elementA.State().(*counterState) != stateA || stateA.value != 1 {
		t.Error("state of A lost across reorder")
	}
	if elementB.State().(*counterState) != stateB || stateB.value != 2 {
		t.Error("state of B lost across reorder")
	}
	if stateA.disposed || stateB.disposed {
		t.Error("reordered elements must not be disposed")
	}
}

func TestIncompatibleChildIsReplacedAndDisposed(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	root := pumpOnce(tree, r, container{Kids: []Widget{statefulLeaf{Label: "a"}}})
	rootElement, _ := tree.Get(root)
	old := rootElement.Children()[0]
	oldElement, _ := tree.Get(old)
	state := oldElement.State().(*counterState)

	tree.MarkDirty(root)
	pumpOnce(tree, r, container{Kids: []Widget{keyedLeaf{K: 1, Label: "a"}}})

	if _, ok := tree.Get(old); ok {
		t.Error("incompatible child should be unmounted")
	}
	if !state.disposed {
		t.Error("unmounted state should be disposed")
	}
	rootElement, _ = tree.Get(root)
	if len(rootElement.Children()) != 1 || rootElement.Children()[0] == old {
		t.Errorf("children = %v, want one fresh element", rootElement.Children())
	}
}

func TestDroppedChildrenAreUnmounted(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	root := pumpOnce(tree, r, container{Kids: []Widget{
		statefulLeaf{Label: "a"},
		statefulLeaf{Label: "b"},
		statefulLeaf{Label: "c"},
	}})
	rootElement, _ := tree.Get(root)
	dropped := rootElement.Children()[2]

	tree.MarkDirty(root)
	pumpOnce(tree, r, container{Kids: []Widget{
		statefulLeaf{Label: "a"},
		statefulLeaf{Label: "b"},
	}})

	if _, ok := tree.Get(dropped); ok {
		t.Error("dropped child should be removed from the tree")
	}
	rootElement, _ = tree.Get(root)
	if len(rootElement.Children()) != 2 {
		t.Errorf("children count = %d, want 2", len(rootElement.Children()))
	}
}

func TestNilChildrenAreSkipped(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	root := pumpOnce(tree, r, container{Kids: []Widget{
		statefulLeaf{Label: "a"},
		nil,
		statefulLeaf{Label: "b"},
	}})
	rootElement, _ := tree.Get(root)
	if got := len(rootElement.Children()); got != 2 {
		t.Errorf("children count = %d, want 2", got)
	}
}

// buildCounter counts how often its Build runs.
type buildCounter struct {
	Label  string
	Builds *int
}

func (w buildCounter) Build(ctx *BuildContext) WidgetNode {
	*w.Builds += 1
	return EmptyNode()
}

func TestReusedChildRebuildsWithParent(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	builds := 0
	describe := func(label string) Widget {
		return container{Kids: []Widget{buildCounter{Label: label, Builds: &builds}}}
	}

	root := pumpOnce(tree, r, describe("same"))
	rootElement, _ := tree.Get(root)
	child := rootElement.Children()[0]
	if builds != 1 {
		t.Fatalf("builds after mount = %d, want 1", builds)
	}

	// A rebuilding parent re-derives reused children even when their
	// configuration is unchanged.
	tree.MarkDirty(root)
	pumpOnce(tree, r, describe("same"))
	if builds != 2 {
		t.Errorf("builds after identical redescription = %d, want 2", builds)
	}
	rootElement, _ = tree.Get(root)
	if got := rootElement.Children()[0]; got != child {
		t.Fatalf("child element replaced: %d -> %d", child, got)
	}

	tree.MarkDirty(root)
	pumpOnce(tree, r, describe("changed"))
	childElement, _ := tree.Get(child)
	if childElement.Widget().(buildCounter).Label != "changed" {
		t.Error("child widget not updated")
	}
	if builds != 3 {
		t.Errorf("builds after changed redescription = %d, want 3", builds)
	}
}

func TestRootReplacementOnIncompatibleWidget(t *testing.T) {
	tree := NewTree()
	r := NewReconciler(nil)

	oldRoot := pumpOnce(tree, r, statefulLeaf{Label: "old"})
	newRoot := pumpOnce(tree, r, container{})

	if oldRoot == newRoot {
		t.Error("incompatible root should be replaced")
	}
	if _, ok := tree.Get(oldRoot); ok {
		t.Error("old root should be unmounted")
	}
	if tree.Root() != newRoot {
		t.Errorf("tree root = %d, want %d", tree.Root(), newRoot)
	}
}

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(err *errors.UIError)  {}
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) {
	h.builds = append(h.builds, err)
}

func TestBuildPanicIsRecoveredAndReported(t *testing.T) {
	handler := &recordingHandler{}
	previous := errors.SetHandler(handler)
	defer errors.SetHandler(previous)

	tree := NewTree()
	r := NewReconciler(nil)
	root := pumpOnce(tree, r, container{Kids: []Widget{panicky{}}})

	rootElement, _ := tree.Get(root)
	if len(rootElement.Children()) != 1 {
		t.Fatalf("children count = %d, want 1", len(rootElement.Children()))
	}
	if len(handler.builds) == 0 {
		t.Fatal("expected a reported build error")
	}
	if handler.builds[0].Recovered != "deliberate build failure" {
		t.Errorf("recovered value = %v", handler.builds[0].Recovered)
	}
}

package uitest

import (
	"errors"
	"testing"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/rendering"
)

// probe is a leaf widget with a distinguishing tag.
type probe struct {
	Tag string
}

func (p probe) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.PrimitiveNode(rendering.NewText(p.Tag, ctx.Theme().TextTheme.Body, geometry.Offset{Y: 12}))
}

// pair renders two probes.
type pair struct{}

func (pair) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.ChildrenNode(probe{Tag: "one"}, probe{Tag: "two"})
}

func TestFindByType(t *testing.T) {
	tester := NewTester(t)
	tester.Pump(pair{})

	result := tester.Find(ByType[probe]())
	if result.Count() != 2 {
		t.Fatalf("found %d probes, want 2", result.Count())
	}
	if !tester.Find(ByType[pair]()).Exists() {
		t.Error("root widget not found")
	}
}

func TestFindByPredicate(t *testing.T) {
	tester := NewTester(t)
	tester.Pump(pair{})

	result := tester.Find(ByPredicate("probe two", func(w core.Widget) bool {
		p, ok := w.(probe)
		return ok && p.Tag == "two"
	}))
	if result.Count() != 1 {
		t.Fatalf("found %d matches, want 1", result.Count())
	}
}

func TestRecordingRendererErrorInjection(t *testing.T) {
	r := NewRecordingRenderer()
	list := &rendering.DisplayList{}
	damage := &rendering.DamageRegion{}

	if err := r.Render(list, damage); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	r.SetError(boom)
	if err := r.Render(list, damage); !errors.Is(err, boom) {
		t.Errorf("err = %v, want injected failure", err)
	}
	if r.FrameCount() != 1 {
		t.Errorf("frame count = %d, want 1 (failed frames are not recorded)", r.FrameCount())
	}
	r.SetError(nil)
	if err := r.Render(list, damage); err != nil {
		t.Fatal(err)
	}
	if r.FrameCount() != 2 {
		t.Errorf("frame count = %d, want 2", r.FrameCount())
	}
}

func TestTextContentsInPaintOrder(t *testing.T) {
	tester := NewTester(t)
	tester.Pump(pair{})

	got := tester.TextContents()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("text contents = %v, want [one two]", got)
	}
}

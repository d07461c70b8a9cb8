// Command quill-demo drives the runtime headlessly: it builds a small
// counter UI, synthesizes a few pointer taps, and prints what each frame
// produced. Useful for eyeballing reconciliation, damage, and the display
// list without a rasterizer backend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/engine"
	"github.com/go-quill/quill/pkg/events"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/rendering"
	"github.com/go-quill/quill/pkg/theme"
	"github.com/go-quill/quill/pkg/widgets"
)

func main() {
	var (
		themeDir = flag.String("theme-dir", ".", "directory searched for quill.yaml")
		width    = flag.Float64("width", 800, "viewport width")
		height   = flag.Float64("height", 600, "viewport height")
		taps     = flag.Int("taps", 3, "number of synthetic taps on the button")
	)
	flag.Parse()

	th, err := theme.Load(*themeDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill-demo: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(&printRenderer{}, th)
	eng.SetViewport(geometry.Size{Width: *width, Height: *height})
	eng.SetRootWidget(counterApp{})

	runFrame(eng, "initial")
	for i := 0; i < *taps; i++ {
		at := geometry.Offset{X: *width / 2, Y: *height / 2}
		eng.Dispatch(events.PointerDownEvent{Position: at, Button: events.ButtonPrimary})
		eng.Dispatch(events.PointerUpEvent{Position: at, Button: events.ButtonPrimary})
		runFrame(eng, fmt.Sprintf("after tap %d", i+1))
	}
}

func runFrame(eng *engine.Engine, label string) {
	stats, err := eng.RenderFrame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "quill-demo: %s: %v\n", label, err)
		os.Exit(1)
	}
	fmt.Printf("frame %d (%s): %d elements, %d passes, %d items, %s\n",
		stats.Frame, label, stats.Elements, stats.BuildPasses, stats.DisplayItems, stats.Duration)
}

// counterApp is a centered button that counts its own taps.
type counterApp struct{}

func (counterApp) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.ChildrenNode(widgets.Center(widgets.Surface{ChildWidget: counterButton{}}))
}

type counterButton struct{}

type counterButtonState struct {
	count int
}

func (counterButton) CreateState() any { return &counterButtonState{} }

func (counterButton) Build(ctx *core.BuildContext) core.WidgetNode {
	state := ctx.State().(*counterButtonState)
	id := ctx.Element()
	label := fmt.Sprintf("taps: %d", state.count)
	return core.ChildrenNode(widgets.Listener{
		OnPointerUp: func(e events.PointerUpEvent, ec *events.Context) events.Result {
			state.count++
			ec.Tree().MarkDirty(id)
			return events.Handled
		},
		ChildWidget: widgets.ColoredBox{
			Color: ctx.Theme().ColorScheme.Primary,
			ChildWidget: widgets.Padding{
				Padding:     geometry.EdgeInsets{Left: 16, Top: 8, Right: 16, Bottom: 8},
				ChildWidget: widgets.Text{Content: label},
			},
		},
	})
}

// printRenderer summarizes each frame on stdout instead of rasterizing.
type printRenderer struct{}

func (*printRenderer) Render(list *rendering.DisplayList, damage *rendering.DamageRegion) error {
	if merged, ok := damage.Merge(); ok {
		fmt.Printf("  damage: (%.0f,%.0f)-(%.0f,%.0f)\n", merged.Left, merged.Top, merged.Right, merged.Bottom)
	}
	for _, item := range list.Items {
		switch p := item.Primitive.(type) {
		case *rendering.RectPrimitive:
			fmt.Printf("  rect %gx%g fill=%s\n", p.Bounds.Width(), p.Bounds.Height(), p.Fill.Color)
		case *rendering.TextPrimitive:
			fmt.Printf("  text %q\n", p.Content)
		}
	}
	return nil
}

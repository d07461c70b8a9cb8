package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/rendering"
)

// Text displays a run of styled text.
//
// With a nil Style the theme's body style applies:
//
//	Text{Content: "hello"}
//	Text{Content: "hello", Style: &rendering.TextStyle{FontSize: 24}}
type Text struct {
	Content string
	Style   *rendering.TextStyle
}

func (t Text) Build(ctx *core.BuildContext) core.WidgetNode {
	style := ctx.Theme().TextTheme.Body
	if t.Style != nil {
		style = *t.Style
	}
	baseline := geometry.Offset{Y: rendering.TextAscent(style)}
	return core.PrimitiveNode(rendering.NewText(t.Content, style, baseline))
}

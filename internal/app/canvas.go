package app

import (
	"image/color"

	"github.com/Faultbox/unitcircle/internal/engine/ui2d"
	"github.com/Faultbox/unitcircle/internal/view"
)

// glCanvas draws view scenes through the batched ui2d renderer.
type glCanvas struct {
	r *ui2d.Renderer
}

var _ view.Canvas = glCanvas{}

func (c glCanvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	c.r.DrawLine(float32(x1), float32(y1), float32(x2), float32(y2), float32(width), ui2d.FromColor(col))
}

func (c glCanvas) Circle(cx, cy, r, width float64, col color.Color) {
	c.r.DrawCircleOutline(float32(cx), float32(cy), float32(r), float32(width), ui2d.FromColor(col))
}

func (c glCanvas) Disc(cx, cy, r float64, col color.Color) {
	c.r.DrawCircle(float32(cx), float32(cy), float32(r), ui2d.FromColor(col))
}

func (c glCanvas) Rect(x, y, w, h float64, col color.Color) {
	c.r.DrawRect(float32(x), float32(y), float32(w), float32(h), ui2d.FromColor(col))
}

func (c glCanvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	w, h := c.r.MeasureText(s, 1)
	c.r.DrawText(float32(x)-float32(ax)*w, float32(y)-float32(ay)*h, s, 1, ui2d.FromColor(col))
}

func (c glCanvas) TextSize(s string) (float64, float64) {
	w, h := c.r.MeasureText(s, 1)
	return float64(w), float64(h)
}

// styleFor derives the widget palette from a view theme.
func styleFor(t view.Theme) ui2d.Style {
	field := ui2d.FromColor(t.FieldBg)
	return ui2d.Style{
		PanelBg:      ui2d.FromColor(t.PanelBg).WithAlpha(0.95),
		PanelBorder:  ui2d.FromColor(t.PanelBorder),
		Button:       field,
		ButtonHover:  field.Lighten(0.15),
		ButtonActive: ui2d.FromColor(t.Selected).Darken(0.3),
		InputBg:      field,
		Text:         ui2d.FromColor(t.Text),
		TextDim:      ui2d.FromColor(t.TextDim),
		Highlight:    ui2d.FromColor(t.Selected),
	}
}

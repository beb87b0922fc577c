package view

import (
	"image/color"
	gomath "math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/unitcircle/pkg/trig"
)

type op struct {
	kind           string
	x1, y1, x2, y2 float64
	r              float64
	text           string
	c              color.Color
}

type recordingCanvas struct {
	ops []op
}

func (c *recordingCanvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, r: width, c: col})
}

func (c *recordingCanvas) Circle(cx, cy, r, width float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "circle", x1: cx, y1: cy, r: r, c: col})
}

func (c *recordingCanvas) Disc(cx, cy, r float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "disc", x1: cx, y1: cy, r: r, c: col})
}

func (c *recordingCanvas) Rect(x, y, w, h float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "rect", x1: x, y1: y, x2: w, y2: h, c: col})
}

func (c *recordingCanvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	c.ops = append(c.ops, op{kind: "text", x1: x, y1: y, text: s, c: col})
}

func (c *recordingCanvas) TextSize(s string) (float64, float64) {
	return float64(len([]rune(s))) * 8, 16
}

func (c *recordingCanvas) count(kind string, col color.Color) int {
	n := 0
	for _, o := range c.ops {
		if o.kind == kind && (col == nil || o.c == col) {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) hasText(s string) bool {
	for _, o := range c.ops {
		if o.kind == "text" && o.text == s {
			return true
		}
	}
	return false
}

func near(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-9
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(700, 700, 100)
	cx, cy, r, ok := l.Circle()
	if !ok || cx != 350 || cy != 350 || r != 250 {
		t.Errorf("Circle() = %v, %v, %v, %v", cx, cy, r, ok)
	}
	if l.Scale() != 1 {
		t.Errorf("Scale() = %v", l.Scale())
	}
	if !l.Panel.Empty() || !l.EditorField().Empty() {
		t.Error("layout without panel has a panel")
	}

	p := l.Point(90, 0)
	if !near(p.X, 350) || !near(p.Y, 100) {
		t.Errorf("Point(90) = %+v", p)
	}

	if _, _, _, ok := NewLayout(0, 0, 10).Circle(); ok {
		t.Error("zero surface reports a circle")
	}
	if _, _, _, ok := NewLayout(100, 100, 60).Circle(); ok {
		t.Error("margin larger than the surface reports a circle")
	}
	if _, _, _, ok := (Layout{}).Circle(); ok {
		t.Error("zero Layout reports a circle")
	}
}

func TestNewPanelLayout(t *testing.T) {
	l := NewPanelLayout(1000, 700, 100, 300)
	if l.CenterX != 350 || l.CenterY != 350 || l.Radius != 250 {
		t.Errorf("circle = %v, %v, %v", l.CenterX, l.CenterY, l.Radius)
	}
	if l.Panel != (Rect{X: 700, Y: 0, W: 300, H: 700}) {
		t.Errorf("Panel = %+v", l.Panel)
	}

	field := l.EditorField()
	if field.Empty() || !l.Panel.Contains(field.X, field.Y) {
		t.Errorf("EditorField() = %+v outside the panel", field)
	}
	if r := l.AngleReadout(); !r.Contains(r.X+1, r.Y+1) || r.Y >= field.Y {
		t.Errorf("AngleReadout() = %+v", r)
	}
	if c := l.Controls(); c.Y <= field.Y+field.H-1 || c.Empty() {
		t.Errorf("Controls() = %+v overlaps the field %+v", c, field)
	}

	// Panel wider than the surface is ignored.
	if l := NewPanelLayout(200, 200, 10, 400); !l.Panel.Empty() {
		t.Errorf("Panel = %+v, want none", l.Panel)
	}
}

func TestPaintHidden(t *testing.T) {
	c := &recordingCanvas{}
	p := NewPainter(DarkTheme())
	p.Paint(c, NewLayout(700, 700, 100), Scene{Angle: 30, Unit: trig.Degrees})

	if got := c.count("disc", p.Theme.Point); got != 16 {
		t.Errorf("drew %d reference points, want 16", got)
	}
	if got := c.count("line", p.Theme.RadialAxis); got != 4 {
		t.Errorf("drew %d axis lines, want 4", got)
	}
	if got := c.count("line", p.Theme.Radial); got != 12 {
		t.Errorf("drew %d radial lines, want 12", got)
	}
	if c.count("circle", nil) != 1 {
		t.Error("unit circle not drawn")
	}
	if c.count("disc", p.Theme.Selected) != 0 || c.count("line", p.Theme.Selected) != 0 {
		t.Error("hidden selector was drawn")
	}
	for _, s := range []string{"0°", "135°", "(√3/2, 1/2)", "(0, -1)"} {
		if !c.hasText(s) {
			t.Errorf("label %q missing", s)
		}
	}
}

func TestPaintRadianLabels(t *testing.T) {
	c := &recordingCanvas{}
	NewPainter(LightTheme()).Paint(c, NewLayout(700, 700, 100), Scene{Unit: trig.Radians})
	for _, s := range []string{"π/6", "π", "11π/6"} {
		if !c.hasText(s) {
			t.Errorf("label %q missing", s)
		}
	}
	if c.hasText("30°") {
		t.Error("degree label drawn in radians mode")
	}
}

func TestPaintSelection(t *testing.T) {
	c := &recordingCanvas{}
	p := NewPainter(DarkTheme())
	l := NewLayout(700, 700, 100)
	p.Paint(c, l, Scene{Angle: 45, Visible: true})

	var marker *op
	for i, o := range c.ops {
		if o.kind == "disc" && o.c == p.Theme.Selected {
			marker = &c.ops[i]
		}
	}
	if marker == nil {
		t.Fatal("selection marker not drawn")
	}
	want := l.Point(45, 0)
	if !near(marker.x1, want.X) || !near(marker.y1, want.Y) {
		t.Errorf("marker at %v,%v, want %v,%v", marker.x1, marker.y1, want.X, want.Y)
	}

	if c.count("line", p.Theme.Cos) != 1 || c.count("line", p.Theme.Sin) != 1 {
		t.Error("cos and sin legs not drawn")
	}
	if c.count("line", p.Theme.Tan) != 1 {
		t.Error("tangent segment not drawn at 45°")
	}
}

func TestTangentPoint(t *testing.T) {
	l := NewLayout(700, 700, 100)

	p, ok := tangentPoint(l, 45)
	if !ok || !near(p.X, 600) || !near(p.Y, 100) {
		t.Errorf("tangentPoint(45) = %+v, %v", p, ok)
	}
	if _, ok := tangentPoint(l, 90); ok {
		t.Error("tangent at 90° should be undefined")
	}
	if _, ok := tangentPoint(l, 270); ok {
		t.Error("tangent at 270° should be undefined")
	}
	// tan 80° ≈ 5.67, far above a 700px surface.
	if _, ok := tangentPoint(l, 80); ok {
		t.Error("off-surface tangent point accepted")
	}

	c := &recordingCanvas{}
	pt := NewPainter(DarkTheme())
	pt.Paint(c, l, Scene{Angle: 90, Visible: true})
	if c.count("line", pt.Theme.Tan) != 0 {
		t.Error("tangent drawn at 90°")
	}
}

func TestPaintReadout(t *testing.T) {
	c := &recordingCanvas{}
	l := NewPanelLayout(1000, 700, 100, 300)
	NewPainter(DarkTheme()).Paint(c, l, Scene{
		Angle:   37,
		Visible: true,
		Unit:    trig.Degrees,
		Editor:  EditorView{Text: "37", Editing: true},
	})

	for _, s := range []string{"37°", "(0.799, 0.602)", "tan θ = 0.754", "(approximate)", "37|"} {
		if !c.hasText(s) {
			t.Errorf("readout text %q missing", s)
		}
	}

	c = &recordingCanvas{}
	NewPainter(DarkTheme()).Paint(c, l, Scene{Angle: 90, Unit: trig.Radians, Editor: EditorView{Text: "pi/2"}})
	for _, s := range []string{"π/2", "(0, 1)", "tan θ = undefined", "pi/2"} {
		if !c.hasText(s) {
			t.Errorf("readout text %q missing", s)
		}
	}
	if c.hasText("(approximate)") {
		t.Error("exact angle marked approximate")
	}
}

func TestPaintUnmeasured(t *testing.T) {
	c := &recordingCanvas{}
	NewPainter(DarkTheme()).Paint(c, Layout{}, Scene{Visible: true})
	if c.count("circle", nil) != 0 || c.count("disc", nil) != 0 {
		t.Error("drew a circle without geometry")
	}
}

func TestThemeByName(t *testing.T) {
	if th, ok := ThemeByName("light"); !ok || th.Name != "light" {
		t.Errorf("ThemeByName(light) = %v, %v", th.Name, ok)
	}
	if th, ok := ThemeByName(""); !ok || th.Name != "dark" {
		t.Errorf("ThemeByName(\"\") = %v, %v", th.Name, ok)
	}
	if _, ok := ThemeByName("solarized"); ok {
		t.Error("unknown theme accepted")
	}
	if DarkTheme().Toggle().Name != "light" || LightTheme().Toggle().Name != "dark" {
		t.Error("Toggle() wrong")
	}
}

func TestRender(t *testing.T) {
	img, err := Render(DefaultRenderOptions(200), Scene{Angle: 60, Visible: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("bounds = %v", b)
	}

	// Corner pixel is background.
	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0x0f || g>>8 != 0x0f || b>>8 != 0x0f {
		t.Errorf("corner pixel = %x %x %x", r>>8, g>>8, b>>8)
	}

	if _, err := Render(RenderOptions{}, Scene{}); err == nil {
		t.Error("Render() with zero size succeeded")
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circle.png")
	opts := DefaultRenderOptions(300)
	opts.Width = 500
	opts.PanelWidth = 200
	if err := RenderPNG(path, opts, Scene{Angle: 210, Visible: true, Unit: trig.Radians}); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("output is not a PNG")
	}

	if err := RenderPNG(filepath.Join(t.TempDir(), "missing", "x.png"), opts, Scene{}); err == nil {
		t.Error("RenderPNG() into a missing directory succeeded")
	}
}

package view

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/unitcircle/pkg/math"
	"github.com/Faultbox/unitcircle/pkg/trig"
)

// Reference sizes at a radius of 250 pixels.
const (
	labelOffset       = 45
	innerDegreeOffset = -41
	innerRadianOffset = -43
	pointRadius       = 4
	markerRadius      = 7
	arcRadius         = 36
)

// Painter draws scenes with a theme.
type Painter struct {
	Theme Theme
}

// NewPainter returns a painter using t.
func NewPainter(t Theme) *Painter {
	return &Painter{Theme: t}
}

// Paint draws the full frame: background, circle, selection and, when the
// layout has a panel, the readout.
func (p *Painter) Paint(c Canvas, l Layout, s Scene) {
	c.Rect(0, 0, float64(l.Width), float64(l.Height), p.Theme.Background)

	if _, _, _, ok := l.Circle(); ok {
		points := s.Points
		if points == nil {
			points = trig.Points()
		}
		p.paintRadials(c, l, points)
		c.Circle(l.CenterX, l.CenterY, l.Radius, 2, p.Theme.Circle)
		if s.Visible {
			p.paintSelection(c, l, s.Angle)
		}
		p.paintPoints(c, l, points, s.Unit)
		if s.Visible {
			m := l.Point(s.Angle, 0)
			c.Disc(m.X, m.Y, markerRadius, p.Theme.Selected)
		}
	}

	if !l.Panel.Empty() {
		p.paintReadout(c, l, s)
	}
}

func (p *Painter) paintRadials(c Canvas, l Layout, points []trig.ReferencePoint) {
	for _, pt := range points {
		end := l.Point(float64(pt.Angle), 0)
		if trig.IsAxis(pt.Angle) {
			c.Line(l.CenterX, l.CenterY, end.X, end.Y, 2, p.Theme.RadialAxis)
		} else {
			c.Line(l.CenterX, l.CenterY, end.X, end.Y, 1, p.Theme.Radial)
		}
	}
}

func (p *Painter) paintPoints(c Canvas, l Layout, points []trig.ReferencePoint, u trig.Unit) {
	scale := l.Scale()
	inner := float64(innerDegreeOffset)
	if u == trig.Radians {
		inner = innerRadianOffset
	}

	for _, pt := range points {
		angle := float64(pt.Angle)
		dot := l.Point(angle, 0)
		c.Disc(dot.X, dot.Y, pointRadius, p.Theme.Point)

		label := pt.DegreesLabel
		if u == trig.Radians {
			label = pt.RadiansLabel
		}
		at := l.Point(angle, inner*scale)
		w, h := c.TextSize(label)
		c.Rect(at.X-w/2-3, at.Y-h/2-2, w+6, h+4, p.Theme.Background)
		c.Text(label, at.X, at.Y, 0.5, 0.5, p.Theme.Text)

		out := l.Point(angle, labelOffset*scale)
		c.Text("("+pt.X+", "+pt.Y+")", out.X, out.Y, 0.5, 0.5, p.Theme.Text)
	}
}

// paintSelection draws the selected radius with its cosine and sine legs,
// the angle arc and the tangent segment.
func (p *Painter) paintSelection(c Canvas, l Layout, angle float64) {
	t := p.Theme
	center := math.V2(l.CenterX, l.CenterY)
	tip := l.Point(angle, 0)

	p.paintArc(c, center, angle, arcRadius*l.Scale())

	if tan, ok := tangentPoint(l, angle); ok {
		faint := withAlpha(t.Tan, 110)
		c.Line(tip.X, tip.Y, tan.X, tan.Y, 1, faint)
		c.Line(l.CenterX+l.Radius, l.CenterY, tan.X, tan.Y, 2, t.Tan)
	}

	c.Line(center.X, center.Y, tip.X, center.Y, 2, t.Cos)
	c.Line(tip.X, center.Y, tip.X, tip.Y, 2, t.Sin)
	c.Line(center.X, center.Y, tip.X, tip.Y, 3, t.Selected)
}

func (p *Painter) paintArc(c Canvas, center math.Vec2, angle, r float64) {
	if angle <= 0 || r <= 0 {
		return
	}
	steps := int(gomath.Ceil(angle / 5))
	prev := center.Polar(0, r)
	for i := 1; i <= steps; i++ {
		next := center.Polar(angle*float64(i)/float64(steps), r)
		c.Line(prev.X, prev.Y, next.X, next.Y, 1.5, p.Theme.Selected)
		prev = next
	}
}

// tangentPoint returns where the extended radius meets the tangent line
// x = 1. It reports false when the tangent is undefined or the point falls
// off the surface.
func tangentPoint(l Layout, angle float64) (math.Vec2, bool) {
	if trig.CoordinatesFor(angle).Tan == trig.Undefined {
		return math.Vec2{}, false
	}
	rad := trig.DegToRad(angle)
	cos := gomath.Cos(rad)
	if gomath.Abs(cos) < 1e-9 {
		return math.Vec2{}, false
	}
	y := l.CenterY - l.Radius*gomath.Sin(rad)/cos
	if y < 0 || y > float64(l.Height) {
		return math.Vec2{}, false
	}
	return math.V2(l.CenterX+l.Radius, y), true
}

func (p *Painter) paintReadout(c Canvas, l Layout, s Scene) {
	t := p.Theme
	panel := l.Panel
	c.Rect(panel.X, panel.Y, panel.W, panel.H, t.PanelBg)
	c.Rect(panel.X, panel.Y, 1, panel.H, t.PanelBorder)

	x := panel.X + panelPad
	row := func(i int) float64 {
		return panel.Y + panelPad + float64(i)*lineHeight
	}

	coords := trig.CoordinatesFor(s.Angle)

	c.Text("Selected Angle", x, row(0), 0, 0, t.Text)
	c.Text(trig.FormatAngle(s.Angle, s.Unit), x, row(1), 0, 0, t.Selected)
	c.Text("Coordinates:", x, row(2), 0, 0, t.TextDim)
	c.Text(fmt.Sprintf("(%s, %s)", coords.X, coords.Y), x, row(3), 0, 0, t.Selected)
	c.Text("cos θ = "+coords.X, x, row(4), 0, 0, t.Cos)
	c.Text("sin θ = "+coords.Y, x, row(5), 0, 0, t.Sin)
	c.Text("tan θ = "+coords.Tan, x, row(6), 0, 0, t.Tan)
	if !coords.Exact {
		c.Text("(approximate)", x, row(7), 0, 0, t.TextDim)
	}

	c.Text("Angle in "+s.Unit.String()+":", x, row(fieldRow-1), 0, 0, t.TextDim)
	p.paintField(c, l.EditorField(), s.Editor)
}

func (p *Painter) paintField(c Canvas, r Rect, e EditorView) {
	t := p.Theme
	c.Rect(r.X, r.Y, r.W, r.H, t.FieldBg)
	border := t.PanelBorder
	switch {
	case e.Editing:
		border = t.FieldActive
	case e.Invalid:
		border = t.Selected
	}
	strokeRect(c, r, 1, border)

	text := e.Text
	if e.Editing {
		text += "|"
	}
	c.Text(text, r.X+6, r.Y+r.H/2, 0, 0.5, t.Text)
}

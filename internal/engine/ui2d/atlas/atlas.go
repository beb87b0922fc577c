// Package atlas rasterizes a font face into a single alpha texture with
// per-glyph texture coordinates and metrics.
package atlas

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// DefaultCharset is printable ASCII plus the math symbols used by the angle
// labels and the expression editor.
const DefaultCharset = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~" +
	"°πθτ√−×÷·≈"

const (
	columns  = 16
	cellPad  = 2
	fallback = '?'
)

// ErrNoGlyphs is returned when the face renders none of the requested runes.
var ErrNoGlyphs = errors.New("atlas: no glyphs")

// Glyph locates one rune in the atlas. Offsets and sizes are in pixels
// relative to the pen position at the top of the line.
type Glyph struct {
	U0, V0, U1, V1 float32
	OffX, OffY     float32
	W, H           float32
	Advance        float32
}

// Atlas is a rasterized glyph set.
type Atlas struct {
	Image *image.Alpha

	glyphs     map[rune]Glyph
	ascent     float32
	lineHeight float32
}

// Build rasterizes the runes of charset from face.
func Build(face font.Face, charset string) (*Atlas, error) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()

	var runes []rune
	maxAdvance := 0
	seen := make(map[rune]bool)
	for _, r := range charset {
		if seen[r] {
			continue
		}
		seen[r] = true
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		runes = append(runes, r)
		maxAdvance = max(maxAdvance, adv.Ceil())
	}
	if len(runes) == 0 {
		return nil, ErrNoGlyphs
	}

	cellW := maxAdvance + 2*cellPad
	cellH := ascent + descent + 2*cellPad
	rows := (len(runes) + columns - 1) / columns
	img := image.NewAlpha(image.Rect(0, 0, columns*cellW, rows*cellH))
	texW := float32(img.Bounds().Dx())
	texH := float32(img.Bounds().Dy())

	a := &Atlas{
		Image:      img,
		glyphs:     make(map[rune]Glyph, len(runes)),
		ascent:     float32(ascent),
		lineHeight: float32(ascent + descent),
	}

	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i, r := range runes {
		x := (i % columns) * cellW
		y := (i / columns) * cellH
		d.Dot = fixed.P(x+cellPad, y+cellPad+ascent)
		d.DrawString(string(r))

		adv, _ := face.GlyphAdvance(r)
		a.glyphs[r] = Glyph{
			U0:      float32(x) / texW,
			V0:      float32(y) / texH,
			U1:      float32(x+cellW) / texW,
			V1:      float32(y+cellH) / texH,
			OffX:    -cellPad,
			OffY:    -cellPad,
			W:       float32(cellW),
			H:       float32(cellH),
			Advance: float32(math.Round(float64(adv) / 64)),
		}
	}
	return a, nil
}

// Glyph returns the glyph for r, or the '?' glyph when r is not in the atlas.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, true
	}
	g, ok := a.glyphs[fallback]
	return g, ok
}

// Has reports whether r was rasterized.
func (a *Atlas) Has(r rune) bool {
	_, ok := a.glyphs[r]
	return ok
}

// Ascent is the distance from the top of the line to the baseline.
func (a *Atlas) Ascent() float32 {
	return a.ascent
}

// LineHeight is the height of one line of text.
func (a *Atlas) LineHeight() float32 {
	return a.lineHeight
}

// Measure returns the size of text at scale. Newlines start a new line.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	var width, line float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			width = max(width, line)
			line = 0
			lines++
			continue
		}
		g, _ := a.Glyph(r)
		line += g.Advance
	}
	width = max(width, line)
	return width * scale, float32(lines) * a.lineHeight * scale
}

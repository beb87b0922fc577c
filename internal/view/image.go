package view

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

type imageCanvas struct {
	dc *gg.Context
}

// NewImageCanvas draws onto a gg context using face for text.
func NewImageCanvas(dc *gg.Context, face font.Face) Canvas {
	if face != nil {
		dc.SetFontFace(face)
	}
	return &imageCanvas{dc: dc}
}

func (c *imageCanvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *imageCanvas) Circle(cx, cy, r, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Stroke()
}

func (c *imageCanvas) Disc(cx, cy, r float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(cx, cy, r)
	c.dc.Fill()
}

func (c *imageCanvas) Rect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

func (c *imageCanvas) Text(s string, x, y, ax, ay float64, col color.Color) {
	c.dc.SetColor(col)
	// gg places the baseline at y+ay*h, so its ay runs bottom to top.
	c.dc.DrawStringAnchored(s, x, y, ax, 1-ay)
}

func (c *imageCanvas) TextSize(s string) (float64, float64) {
	return c.dc.MeasureString(s)
}

// RenderOptions sizes an offscreen rendering.
type RenderOptions struct {
	Width, Height int
	Margin        float64
	PanelWidth    float64 // 0 renders the circle only
	Theme         Theme
	FontSize      float64
}

// DefaultRenderOptions renders a size x size image of the circle alone.
func DefaultRenderOptions(size int) RenderOptions {
	return RenderOptions{
		Width:    size,
		Height:   size,
		Margin:   float64(size) * 0.14,
		Theme:    DarkTheme(),
		FontSize: DefaultFontSize * float64(size) / 700,
	}
}

// Render paints the scene into a new image.
func Render(opts RenderOptions, s Scene) (image.Image, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render size %dx%d", opts.Width, opts.Height)
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := NewFace(size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(opts.Width, opts.Height)
	l := NewPanelLayout(opts.Width, opts.Height, opts.Margin, opts.PanelWidth)
	NewPainter(opts.Theme).Paint(NewImageCanvas(dc, face), l, s)
	return dc.Image(), nil
}

// RenderPNG paints the scene and writes it to path.
func RenderPNG(path string, opts RenderOptions, s Scene) error {
	img, err := Render(opts, s)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

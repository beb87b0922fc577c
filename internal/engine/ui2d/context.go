package ui2d

import (
	"fmt"

	"golang.org/x/image/font"
)

// Style is the widget palette.
type Style struct {
	PanelBg      Color
	PanelBorder  Color
	Button       Color
	ButtonHover  Color
	ButtonActive Color
	InputBg      Color
	Text         Color
	TextDim      Color
	Highlight    Color
}

// DefaultStyle returns the built-in dark palette.
func DefaultStyle() Style {
	return Style{
		PanelBg:      ColorPanelBg,
		PanelBorder:  ColorPanelBorder,
		Button:       ColorButtonNormal,
		ButtonHover:  ColorButtonHover,
		ButtonActive: ColorButtonActive,
		InputBg:      ColorInputBg,
		Text:         ColorText,
		TextDim:      ColorTextDim,
		Highlight:    ColorHighlight,
	}
}

// Context is the immediate-mode UI context: it owns the renderer and the
// per-frame input state.
type Context struct {
	renderer *Renderer
	input    *InputState
	style    Style

	// Widget holding the mouse button
	activeWidget string

	// Panels drawn this frame, for mouse capture
	panels       []Rect
	currentPanel *panelState

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

type panelState struct {
	id   string
	rect Rect
}

// NewContext creates a UI context and its renderer.
func NewContext(width, height int, face font.Face) (*Context, error) {
	r, err := New(width, height, face)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Context{
		renderer: r,
		input:    &InputState{},
		style:    DefaultStyle(),
	}, nil
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// SetStyle replaces the widget palette.
func (c *Context) SetStyle(s Style) {
	c.style = s
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.panels = c.panels[:0]
	c.renderer.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
}

// BeginPanel starts a fixed panel. Widgets are laid out top to bottom
// inside it until EndPanel.
func (c *Context) BeginPanel(id string, x, y, w, h float32, title string) {
	rect := Rect{x, y, w, h}
	c.currentPanel = &panelState{id: id, rect: rect}
	c.panels = append(c.panels, rect)

	c.renderer.DrawPanel(x, y, w, h, c.style.PanelBg, c.style.PanelBorder)

	c.cursorX = x + 8
	c.cursorY = y + 8
	c.rowH = 0
	if title != "" {
		c.renderer.DrawText(c.cursorX, c.cursorY, title, 1, c.style.TextDim)
		_, th := c.renderer.MeasureText(title, 1)
		c.cursorY += th + 4
	}
}

// EndPanel ends the current panel.
func (c *Context) EndPanel() {
	c.currentPanel = nil
}

// WantsMouse reports whether the point is over a panel of the last frame,
// so pointer events there should not reach the scene.
func (c *Context) WantsMouse(x, y float32) bool {
	for _, r := range c.panels {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentPanel == nil {
		return
	}
	c.cursorX = c.currentPanel.rect.X + 8
	c.cursorY += c.rowH + 4
	c.rowH = height
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentPanel == nil {
		return false
	}

	x := c.cursorX
	y := c.cursorY
	h := c.rowH
	if h == 0 {
		h = 28
	}
	if width == 0 {
		width = c.currentPanel.rect.W - 16
	}

	fullID := c.currentPanel.id + "_" + id
	rect := Rect{x, y, width, h}

	// Click on press for better responsiveness
	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
	}

	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := c.style.Button
	if c.activeWidget == fullID {
		color = c.style.ButtonActive
	} else if hovered {
		color = c.style.ButtonHover
	}

	c.renderer.DrawRect(x, y, width, h, color)
	c.renderer.DrawRectOutline(x, y, width, h, 1, c.style.PanelBorder)

	textW, textH := c.renderer.MeasureText(label, 1)
	c.renderer.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, 1, c.style.Text)

	c.cursorX += width + 4
	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, c.style.Text)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentPanel == nil {
		return
	}
	c.renderer.DrawText(c.cursorX, c.cursorY, text, 1, color)
	w, _ := c.renderer.MeasureText(text, 1)
	c.cursorX += w + 4
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.cursorY += height
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentPanel == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.currentPanel.rect.X + 8
	w := c.currentPanel.rect.W - 16
	c.renderer.DrawRect(x, c.cursorY, w, 1, c.style.PanelBorder)
	c.cursorY += 8
	c.cursorX = x
}

// Checkbox draws a checkbox and returns the new checked state.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.currentPanel == nil {
		return checked
	}

	x := c.cursorX
	y := c.cursorY
	boxSize := float32(18)

	fullID := c.currentPanel.id + "_" + id
	labelW, textH := c.renderer.MeasureText(label, 1)
	// The label is clickable too.
	rect := Rect{x, y, boxSize + 8 + labelW, boxSize}

	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)

	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}

	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bgColor := c.style.InputBg
	if hovered {
		bgColor = c.style.ButtonHover
	}
	c.renderer.DrawRect(x, y, boxSize, boxSize, bgColor)
	c.renderer.DrawRectOutline(x, y, boxSize, boxSize, 1, c.style.PanelBorder)

	if checked {
		innerMargin := float32(4)
		c.renderer.DrawRect(
			x+innerMargin, y+innerMargin,
			boxSize-innerMargin*2, boxSize-innerMargin*2,
			c.style.Highlight,
		)
	}

	c.renderer.DrawText(x+boxSize+8, y+(boxSize-textH)/2, label, 1, c.style.Text)

	c.cursorX += rect.W + 8
	return checked
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

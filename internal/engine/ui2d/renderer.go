// Package ui2d provides a simple batched 2D rendering layer using OpenGL,
// with immediate-mode widgets on top.
package ui2d

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"

	"github.com/Faultbox/unitcircle/internal/engine/shader"
)

// Renderer handles 2D UI rendering with OpenGL.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program // solid color triangles
	textShader  *shader.Program // alpha-masked glyph quads

	// VAO/VBO for solid quad rendering
	solidVAO uint32
	solidVBO uint32

	// VAO/VBO for textured quad rendering (text)
	textVAO uint32
	textVBO uint32

	// Current draw lists
	solidVertices []float32
	textVertices  []float32

	// Font for text rendering
	font *Font
}

// New creates a new 2D UI renderer drawing text with face.
func New(width, height int, face font.Face) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 4096),
	}

	// Create solid color shader
	var err error
	r.solidShader, err = shader.Compile(solidVertexSrc, solidFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}

	// Create text shader
	r.textShader, err = shader.Compile(textVertexSrc, textFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	// Create VAO/VBO for solid quads
	if err := r.createSolidBuffers(); err != nil {
		return nil, fmt.Errorf("create solid buffers: %w", err)
	}

	// Create VAO/VBO for textured quads
	if err := r.createTextBuffers(); err != nil {
		return nil, fmt.Errorf("create text buffers: %w", err)
	}

	r.font, err = NewFont(face)
	if err != nil {
		return nil, fmt.Errorf("create font: %w", err)
	}

	return r, nil
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End finishes the UI frame and renders all queued elements.
func (r *Renderer) End() {
	// Save OpenGL state
	var prevBlend int32
	var prevDepth int32
	var prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	// Setup state for 2D rendering
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := r.orthoMatrix(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	// Render solid quads first
	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", &proj)

		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/7)) // 7 floats per vertex
	}

	// Render textured quads (text) on top
	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", &proj)
		r.textShader.SetInt("uTexture", 0)

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())

		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, unsafe.Pointer(&r.textVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/9)) // 9 floats per vertex (pos3 + uv2 + color4)
	}

	// Restore state
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	if r.solidVAO != 0 {
		gl.DeleteVertexArrays(1, &r.solidVAO)
	}
	if r.solidVBO != 0 {
		gl.DeleteBuffers(1, &r.solidVBO)
	}
	if r.textVAO != 0 {
		gl.DeleteVertexArrays(1, &r.textVAO)
	}
	if r.textVBO != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
	}
	if r.solidShader != nil {
		r.solidShader.Delete()
	}
	if r.textShader != nil {
		r.textShader.Delete()
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.addQuad(x, y, width, height, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	// Top
	r.addQuad(x, y, width, thickness, color)
	// Bottom
	r.addQuad(x, y+height-thickness, width, thickness, color)
	// Left
	r.addQuad(x, y+thickness, thickness, height-thickness*2, color)
	// Right
	r.addQuad(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	// Background
	r.DrawRect(x, y, width, height, bg)
	// Border
	r.DrawRectOutline(x, y, width, height, 1, border)
}

// addQuad adds a solid color quad to the vertex buffer.
func (r *Renderer) addQuad(x, y, w, h float32, c Color) {
	// Two triangles forming a quad
	// Vertex format: x, y, z, r, g, b, a (7 floats)

	// Triangle 1
	r.solidVertices = append(r.solidVertices,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
	)
	// Triangle 2
	r.solidVertices = append(r.solidVertices,
		x, y, 0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, c.R, c.G, c.B, c.A,
		x, y+h, 0, c.R, c.G, c.B, c.A,
	)
}

// addTexturedQuad adds a textured quad to the text vertex buffer.
func (r *Renderer) addTexturedQuad(x, y, w, h float32, u0, v0, u1, v1 float32, c Color) {
	// Two triangles forming a quad
	// Vertex format: x, y, z, u, v, r, g, b, a (9 floats)

	// Triangle 1
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y, 0, u1, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
	)
	// Triangle 2
	r.textVertices = append(r.textVertices,
		x, y, 0, u0, v0, c.R, c.G, c.B, c.A,
		x+w, y+h, 0, u1, v1, c.R, c.G, c.B, c.A,
		x, y+h, 0, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// DrawText draws text with its top-left corner at the given position.
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}

	curX := x
	lineH := r.font.LineHeight() * scale
	for _, char := range text {
		if char == '\n' {
			curX = x
			y += lineH
			continue
		}

		g, ok := r.font.atlas.Glyph(char)
		if !ok {
			continue
		}
		r.addTexturedQuad(curX+g.OffX*scale, y+g.OffY*scale, g.W*scale, g.H*scale, g.U0, g.V0, g.U1, g.V1, color)
		curX += g.Advance * scale
	}
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

// DrawLine draws a segment of the given thickness as a rotated quad.
func (r *Renderer) DrawLine(x1, y1, x2, y2, thickness float32, c Color) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// Unit normal scaled to half the thickness
	nx := -dy / length * thickness / 2
	ny := dx / length * thickness / 2

	r.addTriangle(x1+nx, y1+ny, x2+nx, y2+ny, x2-nx, y2-ny, c)
	r.addTriangle(x1+nx, y1+ny, x2-nx, y2-ny, x1-nx, y1-ny, c)
}

// DrawCircle draws a filled circle.
func (r *Renderer) DrawCircle(cx, cy, radius float32, c Color) {
	n := circleSegments(radius)
	prevX, prevY := cx+radius, cy
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := cx + radius*float32(math.Cos(a))
		y := cy + radius*float32(math.Sin(a))
		r.addTriangle(cx, cy, prevX, prevY, x, y, c)
		prevX, prevY = x, y
	}
}

// DrawCircleOutline draws a circle ring centred on radius.
func (r *Renderer) DrawCircleOutline(cx, cy, radius, thickness float32, c Color) {
	n := circleSegments(radius)
	inner := radius - thickness/2
	outer := radius + thickness/2
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		c0, s0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		c1, s1 := float32(math.Cos(a1)), float32(math.Sin(a1))

		r.addTriangle(cx+inner*c0, cy+inner*s0, cx+outer*c0, cy+outer*s0, cx+outer*c1, cy+outer*s1, c)
		r.addTriangle(cx+inner*c0, cy+inner*s0, cx+outer*c1, cy+outer*s1, cx+inner*c1, cy+inner*s1, c)
	}
}

// circleSegments picks a segment count that keeps edges under ~4px.
func circleSegments(radius float32) int {
	n := int(2 * math.Pi * float64(radius) / 4)
	return min(max(n, 16), 256)
}

func (r *Renderer) addTriangle(x1, y1, x2, y2, x3, y3 float32, c Color) {
	r.solidVertices = append(r.solidVertices,
		x1, y1, 0, c.R, c.G, c.B, c.A,
		x2, y2, 0, c.R, c.G, c.B, c.A,
		x3, y3, 0, c.R, c.G, c.B, c.A,
	)
}

// orthoMatrix creates an orthographic projection matrix.
func (r *Renderer) orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

// createSolidBuffers creates VAO/VBO for solid color quad rendering.
func (r *Renderer) createSolidBuffers() error {
	gl.GenVertexArrays(1, &r.solidVAO)
	gl.BindVertexArray(r.solidVAO)

	gl.GenBuffers(1, &r.solidVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)

	// Vertex format: pos(3) + color(4) = 7 floats, 28 bytes
	stride := int32(7 * 4)

	// Position attribute (location = 0): 3 floats
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1): 4 floats
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

// createTextBuffers creates VAO/VBO for textured text quad rendering.
func (r *Renderer) createTextBuffers() error {
	gl.GenVertexArrays(1, &r.textVAO)
	gl.BindVertexArray(r.textVAO)

	gl.GenBuffers(1, &r.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)

	// Vertex format: pos(3) + texcoord(2) + color(4) = 9 floats, 36 bytes
	stride := int32(9 * 4)

	// Position attribute (location = 0): 3 floats
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord attribute (location = 1): 2 floats
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// Color attribute (location = 2): 4 floats
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 5*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return nil
}

const solidVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const solidFragmentSrc = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexSrc = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

// The glyph atlas keeps coverage in the alpha channel.
const textFragmentSrc = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float alpha = texture(uTexture, vTexCoord).a;
	FragColor = vec4(vColor.rgb, vColor.a * alpha);
}
`

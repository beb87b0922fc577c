package ui2d

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"

	"github.com/Faultbox/unitcircle/internal/engine/ui2d/atlas"
)

// Font is a glyph atlas uploaded as an OpenGL texture.
type Font struct {
	atlas   *atlas.Atlas
	texture uint32
}

// NewFont rasterizes face and uploads the atlas. Requires a current GL
// context.
func NewFont(face font.Face) (*Font, error) {
	a, err := atlas.Build(face, atlas.DefaultCharset)
	if err != nil {
		return nil, fmt.Errorf("build glyph atlas: %w", err)
	}

	f := &Font{atlas: a}
	f.texture = uploadAlpha(a.Image)
	return f, nil
}

// uploadAlpha uploads a mask as white RGBA so the text shader can sample
// its alpha channel.
func uploadAlpha(img *image.Alpha) uint32 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2] = 255, 255, 255
			pix[i+3] = img.Pix[y*img.Stride+x]
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// TextureID returns the atlas texture.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// MeasureText returns the width and height of text at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.Measure(text, scale)
}

// LineHeight returns the unscaled line height.
func (f *Font) LineHeight() float32 {
	return f.atlas.LineHeight()
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}

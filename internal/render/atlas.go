package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16

	asciiFirst = 32
	asciiLast  = 126
	atlasCols  = 16
)

// FontAtlas holds white glyphs for the printable ASCII range, rendered
// once at startup and tinted per cell at draw time.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [asciiLast - asciiFirst + 1]*ebiten.Image
}

// NewFontAtlas renders the printable ASCII range with basicfont.Face7x13,
// one glyph per 16x16 cell.
func NewFontAtlas() *FontAtlas {
	count := asciiLast - asciiFirst + 1
	rows := (count + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))

	face := basicfont.Face7x13
	for i := 0; i < count; i++ {
		cx := (i % atlasCols) * GlyphWidth
		cy := (i / atlasCols) * GlyphHeight
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot:  fixed.P(cx+4, cy+13), // centered horizontally, baseline at y+13
		}
		d.DrawString(string(rune(asciiFirst + i)))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for i := 0; i < count; i++ {
		x := (i % atlasCols) * GlyphWidth
		y := (i / atlasCols) * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[i] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a character, or nil for
// anything outside the printable ASCII range.
func (a *FontAtlas) Glyph(ch byte) *ebiten.Image {
	if ch < asciiFirst || ch > asciiLast {
		return nil
	}
	return a.glyphs[ch-asciiFirst]
}

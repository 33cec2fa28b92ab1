package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cell is a single character cell on screen.
type Cell struct {
	Glyph byte  // printable ASCII
	FG    uint8 // palette index
	BG    uint8 // palette index
	Tint  color.RGBA
	Tinted bool // when set, Tint overrides the FG palette color
}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Clear resets all cells to blank background.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBackground}
	}
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// SetTinted writes a cell with an exact RGBA foreground, bypassing the
// palette. Used for fading text.
func (b *CellBuffer) SetTinted(x, y int, glyph byte, tint color.RGBA, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, BG: bg, Tint: tint, Tinted: true}
	}
}

// Fill paints a solid rectangle of background color.
func (b *CellBuffer) Fill(x, y, w, h int, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, ' ', ColorWhite, bg)
		}
	}
}

// Box draws a single-line ASCII border around a rectangle and fills it.
func (b *CellBuffer) Box(x, y, w, h int, fg, bg uint8) {
	b.Fill(x, y, w, h, bg)
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, '-', fg, bg)
		b.Set(col, y+h-1, '-', fg, bg)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, '|', fg, bg)
		b.Set(x+w-1, row, '|', fg, bg)
	}
	b.Set(x, y, '+', fg, bg)
	b.Set(x+w-1, y, '+', fg, bg)
	b.Set(x, y+h-1, '+', fg, bg)
	b.Set(x+w-1, y+h-1, '+', fg, bg)
}

// WriteString writes a string starting at (x, y), one rune per cell.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 126 || ch < 32 {
			ch = '?'
		}
		b.Set(x+offset, y, byte(ch), fg, bg)
		offset++
	}
}

// WriteCentered centers a string horizontally within [x, x+w).
func (b *CellBuffer) WriteCentered(x, y, w int, s string, fg, bg uint8) {
	start := x + (w-len(s))/2
	b.WriteString(start, y, s, fg, bg)
}

// WriteTinted writes a string with an exact RGBA foreground.
func (b *CellBuffer) WriteTinted(x, y int, s string, tint color.RGBA, bg uint8) {
	offset := 0
	for _, ch := range s {
		if ch > 126 || ch < 32 {
			ch = '?'
		}
		b.SetTinted(x+offset, y, byte(ch), tint, bg)
		offset++
	}
}

// GridRenderer draws a CellBuffer to an Ebitengine screen.
type GridRenderer struct {
	Atlas   *FontAtlas
	CellW   int
	CellH   int
	bgPixel *ebiten.Image // 1x1 white pixel for backgrounds
}

// NewGridRenderer creates a renderer with the given cell dimensions.
func NewGridRenderer(atlas *FontAtlas, cellW, cellH int) *GridRenderer {
	bgPixel := ebiten.NewImage(1, 1)
	bgPixel.Fill(color.White)
	return &GridRenderer{Atlas: atlas, CellW: cellW, CellH: cellH, bgPixel: bgPixel}
}

// Draw renders the entire buffer.
func (r *GridRenderer) Draw(screen *ebiten.Image, buf *CellBuffer) {
	scaleX := float64(r.CellW) / float64(GlyphWidth)
	scaleY := float64(r.CellH) / float64(GlyphHeight)

	var op ebiten.DrawImageOptions

	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			cell := buf.Cells[y*buf.Cols+x]
			px := float64(x * r.CellW)
			py := float64(y * r.CellH)

			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(r.CellW), float64(r.CellH))
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(Palette[cell.BG])
			screen.DrawImage(r.bgPixel, &op)

			glyph := r.Atlas.Glyph(cell.Glyph)
			if glyph == nil || cell.Glyph == ' ' {
				continue
			}
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX, scaleY)
			op.GeoM.Translate(px, py)
			if cell.Tinted {
				op.ColorScale.ScaleWithColor(cell.Tint)
			} else {
				op.ColorScale.ScaleWithColor(Palette[cell.FG])
			}
			screen.DrawImage(glyph, &op)
		}
	}
}

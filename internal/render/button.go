package render

// Button is a clickable hit-box measured in grid cells.
type Button struct {
	X, Y, W, H int
	Text       string
	Color      uint8
}

// Contains reports whether a grid cell falls inside the button.
func (b *Button) Contains(cellX, cellY int) bool {
	return cellX >= b.X && cellX < b.X+b.W && cellY >= b.Y && cellY < b.Y+b.H
}

// Draw paints the button, highlighting it when hovered.
func (b *Button) Draw(buf *CellBuffer, hovered bool) {
	fg := uint8(ColorWhite)
	bg := b.Color
	if hovered {
		fg = ColorGold
	}
	buf.Box(b.X, b.Y, b.W, b.H, fg, bg)
	buf.WriteCentered(b.X, b.Y+b.H/2, b.W, b.Text, fg, bg)
}

package render

import "strings"

// Buffer is an off-screen glyph grid implementing Surface with silent clipping
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y or a blank cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// DrawChar writes one glyph
func (b *Buffer) DrawChar(x, y int, glyph rune, tag ColorTag) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: glyph, Tag: tag}
}

// DrawText writes text left to right from x, clipping per glyph
func (b *Buffer) DrawText(x, y int, text string, tag ColorTag) {
	if y < 0 || y >= b.height {
		return
	}
	i := 0
	for _, r := range text {
		b.DrawChar(x+i, y, r, tag)
		i++
	}
}

// DrawBorder frames the whole buffer
func (b *Buffer) DrawBorder() {
	b.DrawRect(0, 0, b.width, b.height, ColorBorder)
}

// DrawRect draws a box outline with '-' '|' and '+' corners
func (b *Buffer) DrawRect(x, y, w, h int, tag ColorTag) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := x; i < x+w; i++ {
		b.DrawChar(i, y, '-', tag)
		b.DrawChar(i, y+h-1, '-', tag)
	}
	for j := y; j < y+h; j++ {
		b.DrawChar(x, j, '|', tag)
		b.DrawChar(x+w-1, j, '|', tag)
	}
	b.DrawChar(x, y, '+', tag)
	b.DrawChar(x+w-1, y, '+', tag)
	b.DrawChar(x, y+h-1, '+', tag)
	b.DrawChar(x+w-1, y+h-1, '+', tag)
}

// Row returns the glyphs of row y as a string
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.width)
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String renders the buffer as newline separated rows
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.WriteString(b.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Count returns how many cells hold glyph
func (b *Buffer) Count(glyph rune) int {
	n := 0
	for _, c := range b.cells {
		if c.Rune == glyph {
			n++
		}
	}
	return n
}

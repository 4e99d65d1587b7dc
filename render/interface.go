package render

// Surface is an addressable glyph grid, coordinates outside [0,w)x[0,h) are ignored
type Surface interface {
	Clear()
	DrawChar(x, y int, glyph rune, tag ColorTag)
	DrawText(x, y int, text string, tag ColorTag)
	DrawBorder()
	DrawRect(x, y, w, h int, tag ColorTag)
	Size() (width, height int)
}

// Renderer is a Surface bound to an output device
type Renderer interface {
	Surface
	Initialize(width, height int) error
	Refresh()
	Cleanup()
}

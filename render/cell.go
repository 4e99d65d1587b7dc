package render

// Cell is one glyph position of a Buffer
type Cell struct {
	Rune rune
	Tag  ColorTag
}

// blankCell is what Clear writes
var blankCell = Cell{Rune: ' ', Tag: ColorDefault}

package render

import "github.com/gdamore/tcell/v2"

// ColorTag names a semantic colour role, resolved to a style by a Palette
type ColorTag uint8

const (
	ColorDefault ColorTag = iota
	ColorBorder
	ColorSnakeHead
	ColorSnakeBody1
	ColorSnakeBody2
	ColorFoodBright
	ColorFoodMedium
	ColorFoodDim
	ColorFoodDark
	ColorScore
	ColorTitle
	ColorSubtitle
	ColorMenuNormal
	ColorMenuHighlight
	ColorExplosionBright
	ColorExplosionMedium
	ColorExplosionDark
	ColorDeath
	ColorDeathDark

	colorTagCount
)

// RGB color definitions for the board, dark/normal/bright levels where animated
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbForeground = tcell.NewRGBColor(192, 202, 245) // Tokyo Night foreground
	RgbBorder     = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray

	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeBody1 = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeBody2 = tcell.NewRGBColor(0, 130, 0)     // Dark Green
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White

	RgbFoodBright = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbFoodMedium = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbFoodDim    = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbFoodDark   = tcell.NewRGBColor(101, 30, 30)   // Very dark red

	RgbTitle         = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbSubtitle      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbMenuNormal    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbMenuHighlight = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbExplosionBright = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash
	RgbExplosionMedium = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbExplosionDark   = tcell.NewRGBColor(139, 0, 0)     // Deep red

	RgbDeath     = tcell.NewRGBColor(255, 0, 0) // Error Red
	RgbDeathDark = tcell.NewRGBColor(120, 0, 0) // Dim Red
)

// Palette resolves colour tags to terminal styles
type Palette struct {
	styles [colorTagCount]tcell.Style
}

// DefaultPalette returns the truecolor palette on the board background
func DefaultPalette() *Palette {
	base := tcell.StyleDefault.Background(RgbBackground)
	p := &Palette{}
	fg := map[ColorTag]tcell.Color{
		ColorDefault:         RgbForeground,
		ColorBorder:          RgbBorder,
		ColorSnakeHead:       RgbSnakeHead,
		ColorSnakeBody1:      RgbSnakeBody1,
		ColorSnakeBody2:      RgbSnakeBody2,
		ColorFoodBright:      RgbFoodBright,
		ColorFoodMedium:      RgbFoodMedium,
		ColorFoodDim:         RgbFoodDim,
		ColorFoodDark:        RgbFoodDark,
		ColorScore:           RgbScore,
		ColorTitle:           RgbTitle,
		ColorSubtitle:        RgbSubtitle,
		ColorMenuNormal:      RgbMenuNormal,
		ColorMenuHighlight:   RgbMenuHighlight,
		ColorExplosionBright: RgbExplosionBright,
		ColorExplosionMedium: RgbExplosionMedium,
		ColorExplosionDark:   RgbExplosionDark,
		ColorDeath:           RgbDeath,
		ColorDeathDark:       RgbDeathDark,
	}
	for tag, c := range fg {
		p.styles[tag] = base.Foreground(c)
	}
	p.styles[ColorSnakeHead] = p.styles[ColorSnakeHead].Bold(true)
	p.styles[ColorTitle] = p.styles[ColorTitle].Bold(true)
	p.styles[ColorMenuHighlight] = p.styles[ColorMenuHighlight].Bold(true)
	p.styles[ColorDeath] = p.styles[ColorDeath].Bold(true)
	return p
}

// Style returns the style for tag, unknown tags use the default style
func (p *Palette) Style(tag ColorTag) tcell.Style {
	if tag >= colorTagCount {
		tag = ColorDefault
	}
	return p.styles[tag]
}

// Background returns the fill style for untouched cells
func (p *Palette) Background() tcell.Style {
	return p.styles[ColorDefault]
}

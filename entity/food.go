package entity

import (
	"math"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/render"
)

// GlowBand is one of the four discrete brightness tiers of the food
type GlowBand uint8

const (
	GlowDark GlowBand = iota
	GlowDim
	GlowMedium
	GlowBright
)

// Food is a single pulsing food cell
type Food struct {
	x, y int

	animationTime float64
	blinkRate     float64
	glowAmount    float64
}

// NewFood creates food at the origin blinking at the default rate
func NewFood() *Food {
	return &Food{blinkRate: constant.FoodBlinkRate}
}

// SetPosition relocates the food and restarts its animation
func (f *Food) SetPosition(x, y int) {
	f.x = x
	f.y = y
	f.animationTime = 0
	f.glowAmount = 0
}

// Update advances the glow animation by dt seconds
func (f *Food) Update(dt float64) {
	f.animationTime += dt
	f.glowAmount = (math.Sin(f.animationTime*f.blinkRate*2*math.Pi) + 1) / 2
}

// Band classifies the current glow amount
func (f *Food) Band() GlowBand {
	switch {
	case f.glowAmount > constant.FoodGlowBright:
		return GlowBright
	case f.glowAmount > constant.FoodGlowMedium:
		return GlowMedium
	case f.glowAmount > constant.FoodGlowDim:
		return GlowDim
	default:
		return GlowDark
	}
}

// Render draws the food glyph for its glow band
func (f *Food) Render(surf render.Surface) {
	glyph, tag := f.Band().Appearance()
	surf.DrawChar(f.x, f.y, glyph, tag)
}

// Appearance returns the glyph and colour of a band
func (b GlowBand) Appearance() (rune, render.ColorTag) {
	switch b {
	case GlowBright:
		return '@', render.ColorFoodBright
	case GlowMedium:
		return '&', render.ColorFoodMedium
	case GlowDim:
		return '%', render.ColorFoodDim
	default:
		return '#', render.ColorFoodDark
	}
}

// Position returns the food cell
func (f *Food) Position() (int, int) {
	return f.x, f.y
}

// Glow returns the current glow amount in [0,1]
func (f *Food) Glow() float64 {
	return f.glowAmount
}

// AnimationTime returns the seconds of animation since the last SetPosition
func (f *Food) AnimationTime() float64 {
	return f.animationTime
}

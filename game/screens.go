package game

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

const (
	pausedMessage   = "GAME PAUSED"
	pausedHint      = "Press P to continue, Q to quit"
	gameOverMessage = "GAME OVER"
	panelFooter     = "Press any key to return"
)

var gameOverItems = [gameOverItemCount]string{"Play Again", "Return to Menu"}

var howToPlayLines = []string{
	"Steer the snake with the arrow keys or WASD.",
	"Eat the glowing food to grow and score points.",
	"Every few foods the level rises and the snake speeds up.",
	"Harder difficulties move faster and score more per food.",
	"Hitting a wall or your own body ends the round.",
	"P pauses the game, Q quits.",
}

// centerX returns the column that centres text on the board
func (g *Game) centerX(text string) int {
	return g.width/2 - utf8.RuneCountInString(text)/2
}

// pulse maps elapsed time to [0,1] with a sine of the given rate in radians per millisecond
func pulse(elapsed time.Duration, rate float64) float64 {
	return (math.Sin(float64(elapsed.Milliseconds())*rate) + 1) / 2
}

func (g *Game) hudText() string {
	return fmt.Sprintf("Score: %s | High Score: %s | Level: %d | %s",
		core.FormatNumber(g.score),
		core.FormatNumber(g.highScore),
		g.level,
		g.difficulty,
	)
}

// drawPlayfield composes border, snake, food and HUD without presenting
func (g *Game) drawPlayfield() {
	g.renderer.Clear()
	g.renderer.DrawBorder()
	g.snake.Render(g.renderer)
	g.food.Render(g.renderer)
	g.renderer.DrawText(1, 0, g.hudText(), render.ColorScore)
}

// render presents the playfield
func (g *Game) render() {
	g.drawPlayfield()
	g.renderer.Refresh()
}

// renderIntro reveals the title over the first half and the subtitle over the second
func (g *Game) renderIntro(elapsed time.Duration) {
	g.renderer.Clear()

	title := []rune(constant.GameTitle)
	subtitle := []rune(constant.GameSubtitle)
	titleX := g.centerX(constant.GameTitle)
	subtitleX := g.centerX(constant.GameSubtitle)
	mid := g.height / 2

	if elapsed < constant.IntroDuration {
		progress := float64(elapsed) / float64(constant.IntroDuration)
		visible := int(float64(len(title)) * progress)
		g.renderer.DrawText(titleX, mid-1, string(title[:visible]), render.ColorTitle)

		if progress > 0.5 {
			sub := (progress - 0.5) * 2
			visibleSub := int(float64(len(subtitle)) * sub)
			g.renderer.DrawText(subtitleX, mid+1, string(subtitle[:visibleSub]), render.ColorSubtitle)
		}
	} else {
		g.renderer.DrawText(titleX, mid-1, constant.GameTitle, render.ColorTitle)
		g.renderer.DrawText(subtitleX, mid+1, constant.GameSubtitle, render.ColorSubtitle)

		tag := render.ColorMenuNormal
		if pulse(elapsed, constant.IntroPulseRate) > 0.5 {
			tag = render.ColorMenuHighlight
		}
		g.renderer.DrawText(g.centerX(constant.PressAnyKey), mid+3, constant.PressAnyKey, tag)
	}

	g.renderer.Refresh()
}

func (g *Game) menuLabel(i int) string {
	switch i {
	case menuStart:
		return "Start Game"
	case menuDifficulty:
		return "Difficulty: " + g.difficulty.String()
	case menuHighScores:
		return "High Scores"
	case menuHowToPlay:
		return "How to Play"
	default:
		return "Quit"
	}
}

func (g *Game) renderMenu() {
	g.renderer.Clear()
	g.renderer.DrawText(g.centerX(constant.GameTitle), constant.MenuTitleRow, constant.GameTitle, render.ColorTitle)

	switch g.panel {
	case panelHighScores:
		g.drawHighScores()
	case panelHowToPlay:
		g.drawHowToPlay()
	default:
		for i := 0; i < menuItemCount; i++ {
			g.drawOption(constant.MenuFirstRow+i*constant.MenuRowSpacing, g.menuLabel(i), i == g.menuSelected)
		}
		g.renderer.DrawText(g.centerX(constant.ControlsHelp), g.height-constant.FooterRowOffset,
			constant.ControlsHelp, render.ColorSubtitle)
	}

	g.renderer.Refresh()
}

// drawOption draws one selectable row, the selected row is bracketed and highlighted
func (g *Game) drawOption(y int, label string, selected bool) {
	tag := render.ColorMenuNormal
	if selected {
		label = "> " + label + " <"
		tag = render.ColorMenuHighlight
	}
	g.renderer.DrawText(g.centerX(label), y, label, tag)
}

func (g *Game) drawHighScores() {
	const heading = "HIGH SCORES"
	y := constant.MenuTitleRow + 3
	g.renderer.DrawText(g.centerX(heading), y, heading, render.ColorSubtitle)
	y += 2

	entries := g.scores.Entries()
	if len(entries) == 0 {
		const empty = "No scores yet"
		g.renderer.DrawText(g.centerX(empty), y, empty, render.ColorMenuNormal)
	}
	for i, e := range entries {
		name := e.Name
		if utf8.RuneCountInString(name) > 16 {
			name = string([]rune(name)[:16])
		}
		line := fmt.Sprintf("%2d. %-16s %9s  %-7s", i+1, name, core.FormatNumber(e.Score), e.Difficulty)
		tag := render.ColorMenuNormal
		if i == 0 {
			tag = render.ColorMenuHighlight
		}
		g.renderer.DrawText(g.centerX(line), y+i, line, tag)
	}

	g.renderer.DrawText(g.centerX(panelFooter), g.height-constant.FooterRowOffset, panelFooter, render.ColorSubtitle)
}

func (g *Game) drawHowToPlay() {
	const heading = "HOW TO PLAY"
	y := constant.MenuTitleRow + 3
	g.renderer.DrawText(g.centerX(heading), y, heading, render.ColorSubtitle)
	y += 2

	for i, line := range howToPlayLines {
		g.renderer.DrawText(g.centerX(line), y+i, line, render.ColorMenuNormal)
	}

	g.renderer.DrawText(g.centerX(panelFooter), g.height-constant.FooterRowOffset, panelFooter, render.ColorSubtitle)
}

// renderPaused frames a message box over the frozen playfield
func (g *Game) renderPaused() {
	g.drawPlayfield()

	msgX := g.centerX(pausedMessage)
	msgY := g.height/2 - 1
	g.renderer.DrawRect(msgX-2, msgY-2, len(pausedMessage)+4, 5, render.ColorBorder)
	g.renderer.DrawText(msgX, msgY, pausedMessage, render.ColorMenuHighlight)
	g.renderer.DrawText(g.centerX(pausedHint), g.height/2+1, pausedHint, render.ColorMenuNormal)

	g.renderer.Refresh()
}

func (g *Game) renderDeath() {
	g.renderer.Clear()
	g.renderer.DrawBorder()
	g.snake.RenderDeath(g.renderer, g.deathFrame, constant.DeathFrameCount, g.rng)
	g.food.Render(g.renderer)
	g.renderer.DrawText(1, 0, g.hudText(), render.ColorScore)
	g.renderer.Refresh()
}

func (g *Game) renderGameOver() {
	g.renderer.Clear()

	tag := render.ColorDeathDark
	if pulse(g.realClock.Now().Sub(g.gameOverStart), constant.GameOverPulseRate) > 0.5 {
		tag = render.ColorDeath
	}
	mid := g.height / 2
	g.renderer.DrawText(g.centerX(gameOverMessage), mid-4, gameOverMessage, tag)

	scoreMsg := "Final Score: " + core.FormatNumber(g.score)
	g.renderer.DrawText(g.centerX(scoreMsg), mid-2, scoreMsg, render.ColorScore)

	for i, label := range gameOverItems {
		g.drawOption(mid+2+i*2, label, i == g.gameOverSelected)
	}

	g.renderer.Refresh()
}

package game

import (
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine/fsm"
)

// Menu rows, in display order
const (
	menuStart = iota
	menuDifficulty
	menuHighScores
	menuHowToPlay
	menuQuit
	menuItemCount
)

// Game-over rows
const (
	gameOverPlayAgain = iota
	gameOverMainMenu
	gameOverItemCount
)

// newMachine builds the screen graph, enter hooks own all per-screen state
func newMachine(g *Game) *fsm.Machine[core.GameState, *Game] {
	m := fsm.NewMachine[core.GameState, *Game]()

	for _, s := range []core.GameState{
		core.StateIntro,
		core.StateMenu,
		core.StatePlaying,
		core.StatePaused,
		core.StateGameOver,
		core.StateQuit,
	} {
		m.AddState(s, s.String())
	}

	m.AddTransition(core.StateIntro, core.StateMenu, nil)
	m.AddTransition(core.StateMenu, core.StatePlaying, nil)
	m.AddTransition(core.StateMenu, core.StateQuit, nil)
	m.AddTransition(core.StatePlaying, core.StatePaused, nil)
	m.AddTransition(core.StatePlaying, core.StateGameOver, nil)
	m.AddTransition(core.StatePlaying, core.StateQuit, nil)
	m.AddTransition(core.StatePaused, core.StatePlaying, nil)
	m.AddTransition(core.StatePaused, core.StateMenu, nil)
	m.AddTransition(core.StateGameOver, core.StatePlaying, nil)
	m.AddTransition(core.StateGameOver, core.StateMenu, nil)

	m.OnEnter(core.StateIntro, func(g *Game) {
		g.introStart = g.realClock.Now()
	})
	m.OnEnter(core.StateMenu, func(g *Game) {
		g.menuSelected = menuStart
		g.panel = panelNone
	})
	m.OnEnter(core.StatePlaying, func(g *Game) {
		g.gameClock.Resume()
	})
	m.OnEnter(core.StatePaused, func(g *Game) {
		g.gameClock.Pause()
	})
	m.OnEnter(core.StateGameOver, func(g *Game) {
		now := g.realClock.Now()
		g.deathFrame = 0
		g.deathFrameAt = now
		g.deathDone = false
		g.gameOverSelected = gameOverPlayAgain
		g.gameOverStart = now
	})

	m.Observe(func(from, to core.GameState) {
		g.log.Debugw("state transition", "from", from.String(), "to", to.String())
	})

	return m
}

// transition moves the machine, an invalid edge is a programming error and is logged
func (g *Game) transition(to core.GameState) {
	if err := g.machine.Transition(g, to); err != nil {
		g.log.Errorw("rejected state transition", "to", to.String(), "error", err)
	}
}

func (g *Game) handleIntro() {
	elapsed := g.realClock.Now().Sub(g.introStart)

	if elapsed >= constant.IntroDuration && g.keys.AnyKey() {
		g.transition(core.StateMenu)
		g.input.ClearKeys()
	}

	switch g.State() {
	case core.StateIntro:
		g.renderIntro(elapsed)
	case core.StateMenu:
		g.renderMenu()
	}
}

func (g *Game) handleMenu() {
	if g.panel != panelNone {
		if g.keys.AnyKey() {
			g.panel = panelNone
			g.input.ClearKeys()
		}
		g.renderMenu()
		return
	}

	switch {
	case g.keys.Up():
		g.menuSelected = (g.menuSelected + menuItemCount - 1) % menuItemCount
		g.input.ClearKeys()
	case g.keys.Down():
		g.menuSelected = (g.menuSelected + 1) % menuItemCount
		g.input.ClearKeys()
	case g.keys.Left() && g.menuSelected == menuDifficulty:
		g.updateDifficulty(g.difficulty.Prev())
		g.input.ClearKeys()
	case g.keys.Right() && g.menuSelected == menuDifficulty:
		g.updateDifficulty(g.difficulty.Next())
		g.input.ClearKeys()
	case g.keys.Enter():
		g.selectMenuItem()
		g.input.ClearKeys()
	}

	if g.State() == core.StateMenu {
		g.renderMenu()
	}
}

func (g *Game) selectMenuItem() {
	switch g.menuSelected {
	case menuStart:
		g.resetGame()
		g.transition(core.StatePlaying)
	case menuHighScores:
		g.panel = panelHighScores
	case menuHowToPlay:
		g.panel = panelHowToPlay
	case menuQuit:
		g.transition(core.StateQuit)
	}
}

func (g *Game) handlePlaying() {
	g.processInput()

	if g.State() == core.StatePlaying {
		g.food.Update(g.frameDelta.Seconds())
		g.update()
	}

	switch g.State() {
	case core.StatePlaying, core.StateGameOver:
		g.render()
	case core.StatePaused:
		g.renderPaused()
	}
}

// processInput routes the tick's key while playing
func (g *Game) processInput() {
	if dir := g.keys.Direction(); dir != core.DirNone {
		g.snake.ChangeDirection(dir)
	}

	switch {
	case g.keys.Pause():
		g.transition(core.StatePaused)
		g.input.ClearKeys()
	case g.keys.Quit():
		g.transition(core.StateQuit)
		g.input.ClearKeys()
	}
}

func (g *Game) handlePaused() {
	switch {
	case g.keys.Pause():
		g.transition(core.StatePlaying)
		g.input.ClearKeys()
	case g.keys.Quit():
		g.transition(core.StateMenu)
		g.input.ClearKeys()
	}

	switch g.State() {
	case core.StatePaused:
		g.renderPaused()
	case core.StatePlaying:
		g.render()
	case core.StateMenu:
		g.renderMenu()
	}
}

func (g *Game) handleGameOver() {
	if !g.deathDone {
		g.advanceDeathAnimation()
		return
	}

	switch {
	case g.keys.Up(), g.keys.Down():
		g.gameOverSelected = (g.gameOverSelected + 1) % gameOverItemCount
		g.input.ClearKeys()
	case g.keys.Enter():
		if g.gameOverSelected == gameOverPlayAgain {
			g.resetGame()
			g.transition(core.StatePlaying)
		} else {
			g.transition(core.StateMenu)
		}
		g.input.ClearKeys()
	}

	switch g.State() {
	case core.StateGameOver:
		g.renderGameOver()
	case core.StateMenu:
		g.renderMenu()
	}
}

// advanceDeathAnimation draws the current explosion frame and steps it on its own interval
// Keys pressed during the animation are dropped once it completes
func (g *Game) advanceDeathAnimation() {
	if g.deathFrame >= constant.DeathFrameCount {
		g.deathDone = true
		g.input.ClearKeys()
		g.renderGameOver()
		return
	}

	g.renderDeath()

	now := g.realClock.Now()
	if now.Sub(g.deathFrameAt) >= constant.DeathFrameInterval {
		g.deathFrame++
		g.deathFrameAt = now
	}
}

package game

import (
	"errors"
	"io/fs"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/highscore"
)

// update advances the snake once per due logical tick
func (g *Game) update() {
	if _, due := g.scheduler.Due(); !due {
		return
	}
	g.step()
}

// step is one logical tick: move, eat, then test for death
func (g *Game) step() {
	g.snake.Update()

	if g.snake.CheckFoodCollision(g.food) {
		g.consumeFood()
	}

	if g.checkCollision() {
		g.log.Infow("snake died",
			"score", g.score,
			"level", g.level,
			"length", g.snake.Len(),
		)
		g.saveHighScore()
		g.transition(core.StateGameOver)
	}
}

// consumeFood grows the snake, awards points, levels up on the period boundary and respawns food
func (g *Game) consumeFood() {
	g.snake.Grow()
	g.score += g.difficulty.FoodScore()

	if g.score%g.difficulty.LevelPeriod() == 0 {
		g.levelUp()
	}

	g.generateFood()

	if g.score > g.highScore {
		g.highScore = g.score
	}
}

func (g *Game) levelUp() {
	g.level++
	g.frameTime *= constant.LevelSpeedFactor
	if g.frameTime < g.minFrameTime {
		g.frameTime = g.minFrameTime
	}
	g.scheduler.SetInterval(engine.Seconds(g.frameTime))

	g.log.Infow("level up", "level", g.level, "frame_time", g.frameTime)
}

// checkCollision reports self collision or a head on the border ring
func (g *Game) checkCollision() bool {
	if g.snake.CheckSelfCollision() {
		return true
	}
	x, y := g.snake.Head()
	return x <= 0 || x >= g.width-1 || y <= 0 || y >= g.height-1
}

// generateFood places food uniformly inside the border on a cell the snake does not occupy
func (g *Game) generateFood() {
	for {
		x := 1 + g.rng.IntN(g.width-2)
		y := 1 + g.rng.IntN(g.height-2)
		if !g.snake.ContainsPosition(x, y) {
			g.food.SetPosition(x, y)
			return
		}
	}
}

// resetGame starts a fresh round at the selected difficulty
func (g *Game) resetGame() {
	g.score = 0
	g.level = 1
	g.snake.Initialize(g.width/2, g.height/2)
	g.generateFood()
	g.gameClock.Reset()
	g.updateDifficulty(g.difficulty)
	g.scheduler.Reset()
}

// updateDifficulty selects d and resets the step interval to its base
func (g *Game) updateDifficulty(d core.Difficulty) {
	g.difficulty = d
	g.frameTime = d.FrameTime()
	g.scheduler.SetInterval(engine.Seconds(g.frameTime))
}

// saveHighScore records a finished round, a zero score is not recorded
func (g *Game) saveHighScore() {
	if g.score <= 0 {
		return
	}

	rank := g.scores.Insert(highscore.Entry{
		Name:       g.cfg.PlayerName,
		Score:      g.score,
		Difficulty: g.difficulty,
	})

	// The file is rewritten whole even when the entry fell off the table
	if err := g.store.Save(g.scores.Entries()); err != nil {
		g.log.Warnw("failed to save high scores", "error", err)
		return
	}
	if rank >= 0 {
		g.log.Infow("high score recorded", "rank", rank+1, "score", g.score)
	}
}

// loadHighScores seeds the table, a missing or malformed file starts empty
func (g *Game) loadHighScores() {
	entries, err := g.store.Load()
	switch {
	case err == nil:
		g.scores.Replace(entries)
		g.highScore = g.scores.Best()
	case errors.Is(err, fs.ErrNotExist):
		g.log.Debugw("no high score file, starting empty")
	default:
		g.log.Warnw("ignoring unreadable high scores", "error", err)
	}
}

package game

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/highscore"
)

func TestFirstFoodScoresByDifficulty(t *testing.T) {
	tests := []struct {
		diff core.Difficulty
		want int
	}{
		{core.DifficultyEasy, 1},
		{core.DifficultyMedium, 11},
		{core.DifficultyHard, 21},
		{core.DifficultyExtreme, 31},
	}

	for _, tt := range tests {
		t.Run(tt.diff.String(), func(t *testing.T) {
			cfg := config.Default()
			cfg.Difficulty = tt.diff
			h := newHarness(t, cfg)
			h.toPlaying(t)

			lenBefore := h.game.snake.Len()
			h.game.consumeFood()

			if h.game.Score() != tt.want {
				t.Errorf("score = %d, want %d", h.game.Score(), tt.want)
			}
			if h.game.HighScore() != tt.want {
				t.Errorf("high score = %d, want %d", h.game.HighScore(), tt.want)
			}
			if h.game.Level() != 1 {
				t.Errorf("level = %d, want 1", h.game.Level())
			}
			if got := h.game.snake.GrowthPending(); got != constant.SnakeGrowthQuantum {
				t.Errorf("growth pending = %d, want %d", got, constant.SnakeGrowthQuantum)
			}
			if h.game.snake.Len() != lenBefore {
				t.Errorf("length changed before stepping: %d -> %d", lenBefore, h.game.snake.Len())
			}
		})
	}
}

func TestLevelUpOnPeriodBoundary(t *testing.T) {
	cfg := config.Default()
	cfg.Difficulty = core.DifficultyEasy
	h := newHarness(t, cfg)
	h.toPlaying(t)

	base := h.game.FrameTime()
	for i := 0; i < 49; i++ {
		h.game.consumeFood()
	}
	if h.game.Level() != 1 {
		t.Fatalf("level after 49 points = %d, want 1", h.game.Level())
	}

	h.game.consumeFood()
	if h.game.Score() != 50 {
		t.Fatalf("score = %d, want 50", h.game.Score())
	}
	if h.game.Level() != 2 {
		t.Errorf("level = %d, want 2", h.game.Level())
	}
	want := base * constant.LevelSpeedFactor
	if math.Abs(h.game.FrameTime()-want) > 1e-12 {
		t.Errorf("frame time = %v, want %v", h.game.FrameTime(), want)
	}
	if got := h.game.scheduler.Interval(); got != engine.Seconds(want) {
		t.Errorf("scheduler interval = %v, want %v", got, engine.Seconds(want))
	}
}

func TestFrameTimeFloor(t *testing.T) {
	cfg := config.Default()
	cfg.MinFrameTime = 0.09
	h := newHarness(t, cfg)
	h.toPlaying(t)

	for i := 0; i < 40; i++ {
		h.game.levelUp()
	}
	if h.game.FrameTime() != 0.09 {
		t.Errorf("frame time = %v, want floor 0.09", h.game.FrameTime())
	}
}

func TestWallBoundary(t *testing.T) {
	h := newHarness(t, nil)
	h.init(t)
	w, hgt := h.game.width, h.game.height

	tests := []struct {
		x, y int
		want bool
	}{
		{1, 5, false},
		{0, 5, true},
		{w - 2, 5, false},
		{w - 1, 5, true},
		{10, 1, false},
		{10, 0, true},
		{10, hgt - 2, false},
		{10, hgt - 1, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,%d", tt.x, tt.y), func(t *testing.T) {
			h.game.snake.Initialize(tt.x, tt.y)
			if got := h.game.checkCollision(); got != tt.want {
				t.Errorf("checkCollision at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	h := newHarness(t, nil)
	h.toPlaying(t)

	dirs := []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}
	for i := 0; i < 2000; i++ {
		if i%20 == 0 {
			h.game.resetGame()
		}
		h.game.snake.ChangeDirection(dirs[h.game.rng.IntN(len(dirs))])
		for !h.game.snake.Update() {
		}
		if h.game.snake.CheckFoodCollision(h.game.food) {
			h.game.snake.Grow()
		}
		h.game.generateFood()

		fx, fy := h.game.food.Position()
		if h.game.snake.ContainsPosition(fx, fy) {
			t.Fatalf("iteration %d: food at (%d,%d) on snake", i, fx, fy)
		}
		if fx < 1 || fx > h.game.width-2 || fy < 1 || fy > h.game.height-2 {
			t.Fatalf("iteration %d: food at (%d,%d) outside interior", i, fx, fy)
		}
	}
}

func TestUpdateDifficultyResetsFrameTime(t *testing.T) {
	h := newHarness(t, nil)
	h.init(t)

	h.game.updateDifficulty(core.DifficultyHard)
	want := constant.BaseFrameTime / (1 + 1.2*constant.DifficultyFrameScale)
	if math.Abs(h.game.FrameTime()-want) > 1e-12 {
		t.Errorf("frame time = %v, want %v", h.game.FrameTime(), want)
	}
}

func TestResetGame(t *testing.T) {
	h := newHarness(t, nil)
	h.toPlaying(t)

	h.game.consumeFood()
	h.game.levelUp()
	h.game.resetGame()

	if h.game.Score() != 0 || h.game.Level() != 1 {
		t.Errorf("score/level = %d/%d, want 0/1", h.game.Score(), h.game.Level())
	}
	if h.game.FrameTime() != h.game.Difficulty().FrameTime() {
		t.Errorf("frame time not restored to base")
	}
	x, y := h.game.snake.Head()
	if x != h.game.width/2 || y != h.game.height/2 {
		t.Errorf("head = (%d,%d), want board centre", x, y)
	}
	if h.game.snake.Direction() != core.DirRight {
		t.Errorf("direction = %v, want right", h.game.snake.Direction())
	}
}

func TestDeathSavesScore(t *testing.T) {
	h := newHarness(t, nil)
	h.toPlaying(t)

	h.game.consumeFood()
	h.game.snake.Initialize(0, 5)
	h.game.step()

	if h.game.State() != core.StateGameOver {
		t.Fatalf("state = %v, want GAME_OVER", h.game.State())
	}
	if h.store.saves != 1 {
		t.Fatalf("saves = %d, want 1", h.store.saves)
	}
	got := h.store.entries[0]
	want := highscore.Entry{Name: "Player", Score: 11, Difficulty: core.DifficultyMedium}
	if got != want {
		t.Errorf("saved entry = %+v, want %+v", got, want)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	h := newHarness(t, nil)
	h.toPlaying(t)

	h.game.snake.Initialize(0, 5)
	h.game.step()

	if h.store.saves != 0 {
		t.Errorf("saves = %d, want 0", h.store.saves)
	}
}

func TestUnrankedScoreRewritesTable(t *testing.T) {
	h := newHarness(t, nil)
	full := make([]highscore.Entry, constant.MaxHighScores)
	for i := range full {
		full[i] = highscore.Entry{Name: "top", Score: 1000 - i, Difficulty: core.DifficultyHard}
	}
	h.store.entries = full
	h.toPlaying(t)

	h.game.consumeFood()
	h.game.snake.Initialize(0, 5)
	h.game.step()

	if h.store.saves != 1 {
		t.Fatalf("saves = %d, want 1", h.store.saves)
	}
	if len(h.store.entries) != constant.MaxHighScores {
		t.Fatalf("saved %d entries, want %d", len(h.store.entries), constant.MaxHighScores)
	}
	for _, e := range h.store.entries {
		if e.Name != "top" {
			t.Errorf("unranked score %d written to table", e.Score)
		}
	}
}

func TestSaveFailureKeepsPlaying(t *testing.T) {
	h := newHarness(t, nil)
	h.store.saveErr = errors.New("disk full")
	h.toPlaying(t)

	h.game.consumeFood()
	h.game.snake.Initialize(0, 5)
	h.game.step()

	if h.game.State() != core.StateGameOver {
		t.Errorf("state = %v, want GAME_OVER", h.game.State())
	}
	if len(h.game.HighScores()) != 1 {
		t.Errorf("in-memory table has %d entries, want 1", len(h.game.HighScores()))
	}
}

func TestLoadHighScores(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		h := newHarness(t, nil)
		h.store.entries = []highscore.Entry{
			{Name: "a", Score: 40, Difficulty: core.DifficultyEasy},
			{Name: "b", Score: 120, Difficulty: core.DifficultyHard},
		}
		h.init(t)

		if h.game.HighScore() != 120 {
			t.Errorf("high score = %d, want 120", h.game.HighScore())
		}
		if got := h.game.HighScores()[0].Name; got != "b" {
			t.Errorf("top entry = %q, want b", got)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		h := newHarness(t, nil)
		h.store.loadErr = fmt.Errorf("scores.dat: %w", highscore.ErrMalformed)
		h.init(t)

		if h.game.HighScore() != 0 || len(h.game.HighScores()) != 0 {
			t.Errorf("malformed file should start empty")
		}
	})

	t.Run("missing", func(t *testing.T) {
		h := newHarness(t, nil)
		h.init(t)

		if h.game.HighScore() != 0 {
			t.Errorf("high score = %d, want 0", h.game.HighScore())
		}
	})
}

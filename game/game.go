// Package game runs the snake state machine and its two cadences:
// a logical step gated by a pausable clock and a render pass every loop iteration.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/engine/fsm"
	"github.com/lixenwraith/term-snake/entity"
	"github.com/lixenwraith/term-snake/highscore"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// Input is the per-tick key source
type Input interface {
	Sample() input.Frame
	ClearKeys()
}

// ScoreStore persists the high-score table
type ScoreStore interface {
	Load() ([]highscore.Entry, error)
	Save(entries []highscore.Entry) error
}

// Deps are the collaborators a Game drives
type Deps struct {
	Renderer render.Renderer
	Input    Input
	Store    ScoreStore
	Clock    engine.TimeProvider // Real time, nil selects the monotonic clock
	Rand     *rand.Rand          // nil seeds from config
	Log      *zap.SugaredLogger
}

// menuPanel is a sub-view opened from the menu list
type menuPanel uint8

const (
	panelNone menuPanel = iota
	panelHighScores
	panelHowToPlay
)

// Game owns the snake, the food, the score table and the state machine
type Game struct {
	cfg *config.Config
	log *zap.SugaredLogger

	renderer render.Renderer
	input    Input
	store    ScoreStore
	rng      *rand.Rand

	realClock engine.TimeProvider
	gameClock *engine.PausableClock
	scheduler *engine.ClockScheduler
	pacer     *engine.FramePacer
	machine   *fsm.Machine[core.GameState, *Game]

	width, height int

	snake  *entity.Snake
	food   *entity.Food
	scores *highscore.Table

	difficulty   core.Difficulty
	score        int
	highScore    int
	level        int
	frameTime    float64 // Seconds per logical step
	minFrameTime float64

	// Current tick
	keys       input.Frame
	frameDelta time.Duration

	// Per-screen state, reset by state enter hooks
	introStart       time.Time
	menuSelected     int
	panel            menuPanel
	deathFrame       int
	deathFrameAt     time.Time
	deathDone        bool
	gameOverSelected int
	gameOverStart    time.Time

	initialized bool
}

// New wires a game, no terminal or file I/O happens until Init
func New(cfg *config.Config, deps Deps) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if deps.Renderer == nil || deps.Input == nil || deps.Store == nil {
		return nil, errors.New("game: renderer, input and store are required")
	}
	if deps.Clock == nil {
		deps.Clock = engine.NewMonotonicTimeProvider()
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop().Sugar()
	}
	if deps.Rand == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		deps.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	g := &Game{
		cfg:          cfg,
		log:          deps.Log,
		renderer:     deps.Renderer,
		input:        deps.Input,
		store:        deps.Store,
		rng:          deps.Rand,
		realClock:    deps.Clock,
		width:        cfg.BoardWidth,
		height:       cfg.BoardHeight,
		snake:        entity.NewSnake(),
		food:         entity.NewFood(),
		scores:       highscore.NewTable(constant.MaxHighScores),
		difficulty:   cfg.Difficulty,
		level:        1,
		minFrameTime: cfg.MinFrameTime,
	}
	g.gameClock = engine.NewPausableClock(g.realClock)
	g.scheduler = engine.NewClockScheduler(g.gameClock, engine.Seconds(g.difficulty.FrameTime()))
	g.pacer = engine.NewFramePacer(g.realClock, cfg.FrameDelay)
	g.machine = newMachine(g)

	return g, nil
}

// Init prepares the renderer, loads scores, places the snake and food and enters the intro
func (g *Game) Init() error {
	if g.initialized {
		return nil
	}
	if err := g.renderer.Initialize(g.width, g.height); err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	g.loadHighScores()
	g.snake.Initialize(g.width/2, g.height/2)
	g.generateFood()
	g.updateDifficulty(g.difficulty)
	g.scheduler.Reset()

	if err := g.machine.Init(g, core.StateIntro); err != nil {
		return fmt.Errorf("start state machine: %w", err)
	}
	g.initialized = true

	g.log.Infow("game initialized",
		"width", g.width,
		"height", g.height,
		"difficulty", g.difficulty.String(),
		"high_score", g.highScore,
	)
	return nil
}

// Run drives the loop until the quit state or ctx ends
// On cancellation it returns context.Cause(ctx), an *core.InterruptError for signals
func (g *Game) Run(ctx context.Context) error {
	if err := g.Init(); err != nil {
		return err
	}
	defer g.Cleanup()

	for g.State() != core.StateQuit {
		if ctx.Err() != nil {
			return g.stopCause(ctx)
		}

		g.Frame()

		if err := g.pacer.Wait(ctx); err != nil {
			return g.stopCause(ctx)
		}
	}

	g.log.Infow("game quit", "high_score", g.highScore)
	return nil
}

func (g *Game) stopCause(ctx context.Context) error {
	cause := context.Cause(ctx)
	g.log.Infow("game loop stopped", "cause", cause)
	return cause
}

// Frame runs one loop iteration: sample input once, then dispatch on the active state
func (g *Game) Frame() {
	g.frameDelta = g.pacer.Begin()
	g.keys = g.input.Sample()

	switch g.State() {
	case core.StateIntro:
		g.handleIntro()
	case core.StateMenu:
		g.handleMenu()
	case core.StatePlaying:
		g.handlePlaying()
	case core.StatePaused:
		g.handlePaused()
	case core.StateGameOver:
		g.handleGameOver()
	case core.StateQuit:
	}
}

// Cleanup releases the renderer
func (g *Game) Cleanup() {
	g.renderer.Cleanup()
}

// State returns the active state
func (g *Game) State() core.GameState {
	return g.machine.Active()
}

// Score returns the current round score
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen this session, including loaded scores
func (g *Game) HighScore() int { return g.highScore }

// Level returns the current level, starting at 1
func (g *Game) Level() int { return g.level }

// FrameTime returns the seconds per logical step
func (g *Game) FrameTime() float64 { return g.frameTime }

// Difficulty returns the selected difficulty
func (g *Game) Difficulty() core.Difficulty { return g.difficulty }

// HighScores returns the ordered score table
func (g *Game) HighScores() []highscore.Entry { return g.scores.Entries() }

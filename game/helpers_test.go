package game

import (
	"io/fs"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/engine"
	"github.com/lixenwraith/term-snake/highscore"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

// scriptInput delivers one queued action per Sample and advances the clock by step
type scriptInput struct {
	clock  *engine.MockTimeProvider
	step   time.Duration
	queue  []input.Action
	clears int
}

func (s *scriptInput) Sample() input.Frame {
	if s.clock != nil && s.step > 0 {
		s.clock.Advance(s.step)
	}
	if len(s.queue) == 0 {
		return input.Frame{}
	}
	a := s.queue[0]
	s.queue = s.queue[1:]
	return input.Frame{Action: a}
}

func (s *scriptInput) ClearKeys() { s.clears++ }

func (s *scriptInput) push(actions ...input.Action) {
	s.queue = append(s.queue, actions...)
}

type memStore struct {
	entries []highscore.Entry
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) Load() ([]highscore.Entry, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.entries == nil {
		return nil, fs.ErrNotExist
	}
	return m.entries, nil
}

func (m *memStore) Save(entries []highscore.Entry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = entries
	return nil
}

type harness struct {
	game   *Game
	clock  *engine.MockTimeProvider
	input  *scriptInput
	store  *memStore
	screen *render.MemoryRenderer
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	clock := engine.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	h := &harness{
		clock:  clock,
		input:  &scriptInput{clock: clock},
		store:  &memStore{},
		screen: render.NewMemoryRenderer(),
	}
	g, err := New(cfg, Deps{
		Renderer: h.screen,
		Input:    h.input,
		Store:    h.store,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(7, 7)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.game = g
	return h
}

func (h *harness) init(t *testing.T) {
	t.Helper()
	if err := h.game.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

// press queues a and runs one frame
func (h *harness) press(a input.Action) {
	h.input.push(a)
	h.game.Frame()
}

// toMenu runs the intro out and enters the menu
func (h *harness) toMenu(t *testing.T) {
	t.Helper()
	h.init(t)
	h.clock.Advance(constant.IntroDuration)
	h.press(input.ActionOther)
	if got := h.game.State(); got != core.StateMenu {
		t.Fatalf("state after intro = %v, want MENU", got)
	}
}

// toPlaying starts a round from the menu
func (h *harness) toPlaying(t *testing.T) {
	t.Helper()
	h.toMenu(t)
	h.press(input.ActionEnter)
	if got := h.game.State(); got != core.StatePlaying {
		t.Fatalf("state after start = %v, want PLAYING", got)
	}
}

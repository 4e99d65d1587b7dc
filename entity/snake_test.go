package entity

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// stepOnce runs Update until the body moves one cell
func stepOnce(t *testing.T, s *Snake) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if s.Update() {
			return
		}
	}
	t.Fatal("snake never stepped")
}

func TestSnakeInitialize(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	want := []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}}
	if got := s.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("cells = %v, want %v", got, want)
	}
	if s.Direction() != core.DirRight {
		t.Errorf("direction = %v, want right", s.Direction())
	}
	if s.GrowthPending() != 0 || s.MoveProgress() != 0 {
		t.Errorf("fresh snake has growth %d progress %v", s.GrowthPending(), s.MoveProgress())
	}
}

func TestSnakeStepCadence(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	calls := 0
	for !s.Update() {
		calls++
		if calls > 100 {
			t.Fatal("no step")
		}
	}
	// 8/60 per call reaches 1 on the eighth call
	if calls+1 != 8 {
		t.Errorf("stepped on call %d, want 8", calls+1)
	}
	if x, y := s.Head(); x != 11 || y != 5 {
		t.Errorf("head = (%d,%d), want (11,5)", x, y)
	}
	if s.MoveProgress() != 0 {
		t.Errorf("progress = %v after step, want 0", s.MoveProgress())
	}
}

func TestSnakeNoReversal(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	s.ChangeDirection(core.DirLeft)
	stepOnce(t, s)

	if s.Direction() != core.DirRight {
		t.Errorf("direction = %v, reversal accepted", s.Direction())
	}
	if x, _ := s.Head(); x != 11 {
		t.Errorf("head x = %d, want 11", x)
	}
	if s.QueuedDirection() != core.DirNone {
		t.Errorf("rejected reversal still queued: %v", s.QueuedDirection())
	}
}

func TestSnakeTurnLastWriteWins(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	s.ChangeDirection(core.DirUp)
	s.ChangeDirection(core.DirDown)
	stepOnce(t, s)

	if x, y := s.Head(); x != 10 || y != 6 {
		t.Errorf("head = (%d,%d), want (10,6)", x, y)
	}
	segs := s.Segments()
	if segs[0].Dir != core.DirDown {
		t.Errorf("head segment dir = %v, want down", segs[0].Dir)
	}
	if segs[1].Dir != core.DirDown {
		t.Errorf("neck dir = %v, want down toward head", segs[1].Dir)
	}
}

func TestSnakeGrowth(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	s.Grow()
	if s.GrowthPending() != constant.SnakeGrowthQuantum {
		t.Fatalf("pending = %d, want %d", s.GrowthPending(), constant.SnakeGrowthQuantum)
	}
	for i := 0; i < constant.SnakeGrowthQuantum; i++ {
		stepOnce(t, s)
	}
	want := constant.SnakeInitialLength + constant.SnakeGrowthQuantum
	if s.Len() != want {
		t.Errorf("len = %d, want %d", s.Len(), want)
	}

	stepOnce(t, s)
	if s.Len() != want {
		t.Errorf("len = %d after growth ended, want %d", s.Len(), want)
	}
}

func TestSnakeGrowthStacks(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	s.Grow()
	stepOnce(t, s)
	s.Grow()
	if got := s.GrowthPending(); got != 2*constant.SnakeGrowthQuantum-1 {
		t.Errorf("pending = %d, want %d", got, 2*constant.SnakeGrowthQuantum-1)
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 10)
	s.Grow()
	s.Grow()

	for _, d := range []core.Direction{core.DirRight, core.DirRight, core.DirRight, core.DirUp, core.DirLeft} {
		s.ChangeDirection(d)
		stepOnce(t, s)
		if s.CheckSelfCollision() {
			t.Fatalf("collision reported early at %v", s.Cells()[0])
		}
	}

	s.ChangeDirection(core.DirDown)
	stepOnce(t, s)
	if !s.CheckSelfCollision() {
		t.Errorf("head %v on body %v not detected", s.Cells()[0], s.Cells()[1:])
	}
}

func TestSnakeContainsPosition(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)

	for _, p := range []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}, {X: 8, Y: 5}} {
		if !s.ContainsPosition(p.X, p.Y) {
			t.Errorf("ContainsPosition(%v) = false", p)
		}
	}
	if s.ContainsPosition(11, 5) || s.ContainsPosition(10, 6) {
		t.Error("ContainsPosition true for free cell")
	}
}

func TestSnakeFoodCollision(t *testing.T) {
	s := NewSnake()
	s.Initialize(10, 5)
	f := NewFood()

	f.SetPosition(11, 5)
	if s.CheckFoodCollision(f) {
		t.Fatal("food ahead counted as eaten")
	}
	stepOnce(t, s)
	if !s.CheckFoodCollision(f) {
		t.Error("food under head not detected")
	}
}

func TestSnakeRender(t *testing.T) {
	buf := render.NewBuffer(20, 10)
	s := NewSnake()
	s.Initialize(10, 5)
	s.Render(buf)

	if c := buf.Get(10, 5); c.Rune != '>' || c.Tag != render.ColorSnakeHead {
		t.Errorf("head = %q/%d, want '>' head colour", c.Rune, c.Tag)
	}
	if c := buf.Get(9, 5); c.Rune != 'o' {
		t.Errorf("body = %q, want 'o'", c.Rune)
	}
	if c := buf.Get(8, 5); c.Rune != '*' {
		t.Errorf("tail = %q, want '*'", c.Rune)
	}
}

func TestSnakeRenderDeath(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	s := NewSnake()
	s.Initialize(10, 5)

	first := render.NewBuffer(20, 10)
	s.RenderDeath(first, 0, constant.DeathFrameCount, rng)
	if first.Get(10, 5).Rune != 'X' {
		t.Errorf("frame 0 head = %q, want 'X'", first.Get(10, 5).Rune)
	}
	if first.Count('x') != 2 {
		t.Errorf("frame 0 body marks = %d, want 2", first.Count('x'))
	}

	last := render.NewBuffer(20, 10)
	s.RenderDeath(last, constant.DeathFrameCount, constant.DeathFrameCount, rng)
	if last.Count('X') != 0 || last.Count('x') != 0 {
		t.Error("final frame still shows intact segments")
	}
	particles := last.Count('*') + last.Count('+') + last.Count('.')
	if particles == 0 {
		t.Error("final frame has no trailing particles for the tail")
	}

	// Rings near the border are clipped, not wrapped
	edge := render.NewBuffer(20, 10)
	s.Initialize(1, 1)
	s.RenderDeath(edge, 5, constant.DeathFrameCount, rng)
}

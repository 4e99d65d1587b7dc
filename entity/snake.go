package entity

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/render"
)

// Segment is one body cell, positions are fractional for animation
// Logical occupancy is always the truncated integer cell
type Segment struct {
	X, Y float64
	Dir  core.Direction
}

// Cell returns the grid cell the segment occupies
func (s Segment) Cell() core.Point {
	return core.Point{X: int(s.X), Y: int(s.Y)}
}

// Snake is the player body, front of the slice is the head
type Snake struct {
	body []Segment

	currentDirection core.Direction
	queuedDirection  core.Direction

	growing      bool
	growthAmount int

	// Fraction of the current grid step elapsed, drives head interpolation
	moveProgress  float64
	stepIncrement float64
}

// NewSnake creates an uninitialized snake heading right
func NewSnake() *Snake {
	return &Snake{
		currentDirection: core.DirRight,
		stepIncrement:    constant.SnakeMoveSpeed / constant.AssumedRenderHz,
	}
}

// Initialize resets the body to three cells ending at (startX, startY), heading right
func (s *Snake) Initialize(startX, startY int) {
	s.body = s.body[:0]
	for i := 0; i < constant.SnakeInitialLength; i++ {
		s.body = append(s.body, Segment{
			X:   float64(startX - i),
			Y:   float64(startY),
			Dir: core.DirRight,
		})
	}

	s.currentDirection = core.DirRight
	s.queuedDirection = core.DirNone
	s.growing = false
	s.growthAmount = 0
	s.moveProgress = 0
}

// ChangeDirection queues dir, applied at the next grid step
func (s *Snake) ChangeDirection(dir core.Direction) {
	s.queuedDirection = dir
}

// Update advances step progress by a fixed increment and performs a grid step when it reaches 1
// Returns true when the body moved
func (s *Snake) Update() bool {
	if len(s.body) == 0 {
		return false
	}

	stepped := false
	s.moveProgress += s.stepIncrement

	if s.moveProgress >= 1 {
		s.moveProgress = 0
		s.step()
		stepped = true
	}

	s.updateSegmentDirections()
	return stepped
}

// step moves the head one cell, a queued reversal is dropped rather than retried
func (s *Snake) step() {
	if s.queuedDirection != core.DirNone {
		if s.queuedDirection != s.currentDirection.Opposite() {
			s.currentDirection = s.queuedDirection
		}
		s.queuedDirection = core.DirNone
	}

	dx, dy := s.currentDirection.Delta()
	newHead := s.body[0]
	newHead.X += float64(dx)
	newHead.Y += float64(dy)
	newHead.Dir = s.currentDirection

	s.body = append(s.body, Segment{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead

	if s.growing {
		s.growthAmount--
		if s.growthAmount <= 0 {
			s.growing = false
		}
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// updateSegmentDirections points every body segment at the segment ahead of it
func (s *Snake) updateSegmentDirections() {
	for i := 1; i < len(s.body); i++ {
		prev := s.body[i-1]
		curr := &s.body[i]

		dx := prev.X - curr.X
		dy := prev.Y - curr.Y

		// Gap larger than a cell is not a neighbour
		if math.Abs(dx) > 1.5 || math.Abs(dy) > 1.5 {
			continue
		}

		if math.Abs(dx) > math.Abs(dy) {
			if dx > 0 {
				curr.Dir = core.DirRight
			} else {
				curr.Dir = core.DirLeft
			}
		} else if math.Abs(dy) > 0 {
			if dy > 0 {
				curr.Dir = core.DirDown
			} else {
				curr.Dir = core.DirUp
			}
		}
	}
}

// Render draws the body, the head trails its cell by moveProgress opposite to travel
func (s *Snake) Render(surf render.Surface) {
	last := len(s.body) - 1
	for i, seg := range s.body {
		x, y := seg.X, seg.Y
		glyph := 'o'
		tag := bodyTag(i)

		switch {
		case i == 0:
			dx, dy := s.currentDirection.Delta()
			x -= float64(dx) * s.moveProgress
			y -= float64(dy) * s.moveProgress
			glyph = s.currentDirection.Glyph()
			tag = render.ColorSnakeHead
		case i == last:
			glyph = '*'
		}

		surf.DrawChar(int(x), int(y), glyph, tag)
	}
}

// RenderDeath draws frame of a staggered head-to-tail explosion
func (s *Snake) RenderDeath(surf render.Surface, frame, maxFrames int, rng *rand.Rand) {
	if maxFrames <= 0 || len(s.body) == 0 {
		return
	}
	progress := float64(frame) / float64(maxFrames)

	for i, seg := range s.body {
		delay := float64(i) / float64(len(s.body)) * constant.ExplosionStagger
		local := progress - delay
		cx, cy := int(seg.X), int(seg.Y)

		switch {
		case local <= 0:
			glyph := 'x'
			tag := bodyTag(i)
			if i == 0 {
				glyph = 'X'
				tag = render.ColorSnakeHead
			}
			surf.DrawChar(cx, cy, glyph, tag)

		case local < 1:
			radius := int(local * constant.ExplosionMaxRadius)
			tag := explosionTag(1 - local)
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist <= float64(radius) && dist >= float64(radius)-1 {
						surf.DrawChar(cx+dx, cy+dy, particleGlyph(rng), tag)
					}
				}
			}
		}
		// local >= 1: fully vanished
	}
}

func bodyTag(i int) render.ColorTag {
	if i%2 == 0 {
		return render.ColorSnakeBody1
	}
	return render.ColorSnakeBody2
}

func explosionTag(intensity float64) render.ColorTag {
	switch {
	case intensity > constant.ExplosionBright:
		return render.ColorExplosionBright
	case intensity > constant.ExplosionMedium:
		return render.ColorExplosionMedium
	default:
		return render.ColorExplosionDark
	}
}

func particleGlyph(rng *rand.Rand) rune {
	switch {
	case rng.IntN(3) == 0:
		return '*'
	case rng.IntN(2) == 0:
		return '+'
	default:
		return '.'
	}
}

// CheckFoodCollision reports whether the head is on the food cell
func (s *Snake) CheckFoodCollision(food *Food) bool {
	x, y := s.Head()
	fx, fy := food.Position()
	return x == fx && y == fy
}

// CheckSelfCollision reports whether the head shares a cell with the body from index 3 on
func (s *Snake) CheckSelfCollision() bool {
	if len(s.body) == 0 {
		return false
	}
	head := s.body[0].Cell()
	for i := constant.SelfCollisionStartIndex; i < len(s.body); i++ {
		if s.body[i].Cell() == head {
			return true
		}
	}
	return false
}

// Grow retains the tail for another growth quantum of steps, stacking with pending growth
func (s *Snake) Grow() {
	s.growing = true
	s.growthAmount += constant.SnakeGrowthQuantum
}

// ContainsPosition reports whether any segment occupies the cell
func (s *Snake) ContainsPosition(x, y int) bool {
	p := core.Point{X: x, Y: y}
	for _, seg := range s.body {
		if seg.Cell() == p {
			return true
		}
	}
	return false
}

// Head returns the head grid cell
func (s *Snake) Head() (int, int) {
	if len(s.body) == 0 {
		return 0, 0
	}
	p := s.body[0].Cell()
	return p.X, p.Y
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns the occupied grid cells, head first
func (s *Snake) Cells() []core.Point {
	cells := make([]core.Point, len(s.body))
	for i, seg := range s.body {
		cells[i] = seg.Cell()
	}
	return cells
}

// Segments returns a copy of the body
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the committed heading
func (s *Snake) Direction() core.Direction {
	return s.currentDirection
}

// QueuedDirection returns the heading pending for the next grid step
func (s *Snake) QueuedDirection() core.Direction {
	return s.queuedDirection
}

// MoveProgress returns the fraction of the current grid step elapsed
func (s *Snake) MoveProgress() float64 {
	return s.moveProgress
}

// GrowthPending returns the number of steps the tail is still retained
func (s *Snake) GrowthPending() int {
	if !s.growing {
		return 0
	}
	return s.growthAmount
}

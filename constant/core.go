package constant

import "time"

// Game Loop Timing
const (
	// FrameDelay is the minimum interval between two main loop iterations (render cadence cap)
	FrameDelay = 10 * time.Millisecond

	// AssumedRenderHz is the render rate the snake's per-step progress increment is derived from
	AssumedRenderHz = 60.0
)

// Screen Timing
const (
	// IntroDuration is the length of the animated title reveal
	IntroDuration = 2 * time.Second

	// DeathFrameCount is the number of frames in the game over explosion
	DeathFrameCount = 10

	// DeathFrameInterval is the display time of one explosion frame
	DeathFrameInterval = 100 * time.Millisecond
)

// Board
const (
	// DefaultBoardWidth is the board width when no config overrides it
	DefaultBoardWidth = 80

	// DefaultBoardHeight is the board height when no config overrides it
	DefaultBoardHeight = 24

	// MinBoardWidth is the smallest board that still fits the menu and HUD
	MinBoardWidth = 60

	// MinBoardHeight is the smallest board that still fits the menu list
	MinBoardHeight = 20
)

// Input
const (
	// InputQueueSize bounds the number of terminal events buffered between loop ticks
	InputQueueSize = 64
)

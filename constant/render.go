package constant

// Explosion
const (
	// ExplosionMaxRadius is the ring radius reached at the end of a segment's explosion
	ExplosionMaxRadius = 3

	// ExplosionStagger is the fraction of total progress spread across the body, head first
	ExplosionStagger = 0.5

	// Intensity thresholds for explosion tint, strictly greater than
	ExplosionBright = 0.7
	ExplosionMedium = 0.4
)

// Text
const (
	GameTitle    = "TERMINAL SNAKE"
	GameSubtitle = "The Most Advanced Terminal Snake Game"
	PressAnyKey  = "Press any key to continue"
	ControlsHelp = "Controls: Arrow Keys/WASD - Move, P - Pause, Q - Quit"
)

// Menu Layout
const (
	MenuTitleRow    = 5
	MenuFirstRow    = 10
	MenuRowSpacing  = 2
	FooterRowOffset = 3
)

// Pulse rates for blinking prompts, radians per millisecond
const (
	IntroPulseRate    = 0.01
	GameOverPulseRate = 0.005
)

package constant

// Snake Movement
const (
	// SnakeMoveSpeed is the nominal snake speed in cells per second at AssumedRenderHz
	SnakeMoveSpeed = 8.0

	// SnakeInitialLength is the body length after Initialize
	SnakeInitialLength = 3

	// SnakeGrowthQuantum is the number of grid steps the tail is retained after one eat
	SnakeGrowthQuantum = 3

	// SelfCollisionStartIndex is the first body index tested against the head
	// Indices below it trail the head too closely to be a real collision
	SelfCollisionStartIndex = 3
)

// Food Animation
const (
	// FoodBlinkRate is the number of glow cycles per second
	FoodBlinkRate = 3.0

	// Glow band thresholds, strictly greater than
	FoodGlowBright = 0.8
	FoodGlowMedium = 0.5
	FoodGlowDim    = 0.2
)

// Scoring and Levels
const (
	// ScorePerFoodStep is multiplied by the difficulty ordinal for each food eaten
	ScorePerFoodStep = 10

	// ScorePerFoodBase is added on top of the difficulty bonus for each food eaten
	ScorePerFoodBase = 1

	// LevelScoreStep times (difficulty ordinal + 1) is the score period of a level up
	LevelScoreStep = 50

	// LevelSpeedFactor multiplies frame time on every level up
	LevelSpeedFactor = 0.95

	// BaseFrameTime is the seconds per logical step before the difficulty adjustment
	BaseFrameTime = 0.2

	// DifficultyFrameScale scales the difficulty multiplier in the frame time divisor
	DifficultyFrameScale = 0.5

	// DefaultMinFrameTime is the floor for level-up frame time decay, in seconds
	DefaultMinFrameTime = 0.02
)

// High Scores
const (
	// MaxHighScores is the bounded length of the persisted table
	MaxHighScores = 10

	// MaxNameLength is the longest name accepted by the score file codec
	MaxNameLength = 256

	// DefaultPlayerName is recorded with every score when no config overrides it
	DefaultPlayerName = "Player"
)

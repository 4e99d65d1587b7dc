package core

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-snake/constant"
)

// Difficulty selects speed and scoring, ordinal values are persisted in the score file
type Difficulty int32

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExtreme

	difficultyCount
)

// Multiplier is the speed factor feeding the base frame time
func (d Difficulty) Multiplier() float64 {
	switch d {
	case DifficultyEasy:
		return 0.8
	case DifficultyMedium:
		return 1.0
	case DifficultyHard:
		return 1.2
	case DifficultyExtreme:
		return 1.5
	default:
		return 1.0
	}
}

// FrameTime returns the seconds per logical step at level 1
func (d Difficulty) FrameTime() float64 {
	return constant.BaseFrameTime / (1 + d.Multiplier()*constant.DifficultyFrameScale)
}

// FoodScore is the number of points awarded per food eaten
func (d Difficulty) FoodScore() int {
	return constant.ScorePerFoodStep*int(d) + constant.ScorePerFoodBase
}

// LevelPeriod is the score period at which a level up triggers
func (d Difficulty) LevelPeriod() int {
	return constant.LevelScoreStep * (int(d) + 1)
}

// Next cycles forward with wrap-around
func (d Difficulty) Next() Difficulty {
	return (d + 1) % difficultyCount
}

// Prev cycles backward with wrap-around
func (d Difficulty) Prev() Difficulty {
	return (d - 1 + difficultyCount) % difficultyCount
}

// Valid reports whether d is one of the defined levels
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d < difficultyCount
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExtreme:
		return "Extreme"
	default:
		return "Unknown"
	}
}

// ParseDifficulty accepts a case-insensitive level name
func ParseDifficulty(s string) (Difficulty, error) {
	for d := DifficultyEasy; d < difficultyCount; d++ {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return DifficultyMedium, fmt.Errorf("unknown difficulty %q", s)
}

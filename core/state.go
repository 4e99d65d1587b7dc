package core

// GameState is the active screen of the game loop
type GameState uint8

const (
	StateIntro GameState = iota
	StateMenu
	StatePlaying
	StatePaused
	StateGameOver
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Package config loads game settings from an optional ini file.
// The process takes no flags, so the file location comes from the
// TERM_SNAKE_CONFIG environment variable or defaults to the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/ini.v1"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

const (
	// EnvPath overrides the config file location
	EnvPath = "TERM_SNAKE_CONFIG"

	// DefaultPath is used when EnvPath is unset
	DefaultPath = "term-snake.ini"
)

// Config holds every tunable of the game
type Config struct {
	BoardWidth  int
	BoardHeight int

	Difficulty   core.Difficulty
	PlayerName   string
	Seed         uint64  // 0 selects a random seed
	MinFrameTime float64 // Floor for level-up frame time decay, seconds
	FrameDelay   time.Duration

	ScoresPath string
	LogPath    string

	LogLevel      string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		BoardWidth:    constant.DefaultBoardWidth,
		BoardHeight:   constant.DefaultBoardHeight,
		Difficulty:    core.DifficultyMedium,
		PlayerName:    constant.DefaultPlayerName,
		Seed:          0,
		MinFrameTime:  constant.DefaultMinFrameTime,
		FrameDelay:    constant.FrameDelay,
		ScoresPath:    "snake_high_scores.dat",
		LogPath:       "term-snake.log",
		LogLevel:      "info",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
	}
}

// Path resolves the config file location from the environment
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads path over the defaults, a missing file yields the defaults
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return FromFile(ini.Empty())
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return FromFile(file)
}

// FromFile applies the sections of file over the defaults and validates the result
func FromFile(file *ini.File) (*Config, error) {
	cfg := Default()
	r := reader{file: file}

	cfg.BoardWidth = r.integer("board", "width", cfg.BoardWidth)
	cfg.BoardHeight = r.integer("board", "height", cfg.BoardHeight)

	if s := r.str("game", "difficulty", ""); s != "" {
		d, err := core.ParseDifficulty(s)
		if err != nil {
			r.fail("game", "difficulty", err)
		} else {
			cfg.Difficulty = d
		}
	}
	cfg.PlayerName = r.str("game", "player", cfg.PlayerName)
	cfg.Seed = r.unsigned("game", "seed", cfg.Seed)
	cfg.MinFrameTime = r.float("game", "min_frame_time", cfg.MinFrameTime)
	cfg.FrameDelay = time.Duration(r.integer("game", "frame_delay_ms", int(cfg.FrameDelay/time.Millisecond))) * time.Millisecond

	cfg.ScoresPath = r.str("files", "scores", cfg.ScoresPath)
	cfg.LogPath = r.str("files", "log", cfg.LogPath)

	cfg.LogLevel = r.str("log", "level", cfg.LogLevel)
	cfg.LogMaxSizeMB = r.integer("log", "max_size_mb", cfg.LogMaxSizeMB)
	cfg.LogMaxBackups = r.integer("log", "max_backups", cfg.LogMaxBackups)

	if r.err != nil {
		return nil, r.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.BoardWidth < constant.MinBoardWidth {
		errs = append(errs, fmt.Errorf("board width %d below minimum %d", c.BoardWidth, constant.MinBoardWidth))
	}
	if c.BoardHeight < constant.MinBoardHeight {
		errs = append(errs, fmt.Errorf("board height %d below minimum %d", c.BoardHeight, constant.MinBoardHeight))
	}
	if c.PlayerName == "" || len(c.PlayerName) > constant.MaxNameLength {
		errs = append(errs, fmt.Errorf("player name must be 1..%d bytes", constant.MaxNameLength))
	}
	if c.MinFrameTime <= 0 {
		errs = append(errs, fmt.Errorf("min_frame_time must be positive, got %g", c.MinFrameTime))
	}
	if c.FrameDelay < 0 {
		errs = append(errs, fmt.Errorf("frame_delay_ms must not be negative"))
	}
	if c.ScoresPath == "" {
		errs = append(errs, errors.New("scores path must not be empty"))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if c.LogMaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log max_size_mb must be positive, got %d", c.LogMaxSizeMB))
	}
	if c.LogMaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log max_backups must not be negative"))
	}
	return errors.Join(errs...)
}

// reader collects the first parse error while applying defaults for absent keys
type reader struct {
	file *ini.File
	err  error
}

func (r *reader) key(section, name string) (*ini.Key, bool) {
	sec, err := r.file.GetSection(section)
	if err != nil || !sec.HasKey(name) {
		return nil, false
	}
	return sec.Key(name), true
}

func (r *reader) fail(section, name string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("config [%s] %s: %w", section, name, err)
	}
}

func (r *reader) str(section, name, def string) string {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	return k.String()
}

func (r *reader) integer(section, name string, def int) int {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	v, err := k.Int()
	if err != nil {
		r.fail(section, name, err)
		return def
	}
	return v
}

func (r *reader) unsigned(section, name string, def uint64) uint64 {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	v, err := k.Uint64()
	if err != nil {
		r.fail(section, name, err)
		return def
	}
	return v
}

func (r *reader) float(section, name string, def float64) float64 {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	v, err := k.Float64()
	if err != nil {
		r.fail(section, name, err)
		return def
	}
	return v
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/game"
	"github.com/lixenwraith/term-snake/highscore"
	"github.com/lixenwraith/term-snake/input"
	"github.com/lixenwraith/term-snake/render"
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run())
}

// run returns the process exit code: 0 on quit, the signal number on interrupt, 1 on error
func run() int {
	cfg, err := config.Load(config.Path())
	if err != nil {
		reportError(fmt.Errorf("load config: %w", err))
		return 1
	}

	log, closeLog, err := setupLogging(cfg)
	if err != nil {
		reportError(fmt.Errorf("setup logging: %w", err))
		return 1
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		reportError(errors.New("stdin and stdout must be an interactive terminal"))
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		reportError(fmt.Errorf("open terminal: %w", err))
		return 1
	}
	renderer := render.NewTerminalRenderer(screen, render.DefaultPalette())
	core.RegisterCrashTerminal(renderer)
	defer core.RegisterCrashTerminal(nil)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	// Raw mode swallows SIGINT from the tty, Ctrl-C arrives as a key instead
	handler := input.NewHandler(screen, input.DefaultKeyTable(), log)
	handler.OnInterrupt(func() {
		cancel(&core.InterruptError{Signal: syscall.SIGINT})
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	core.Go(func() {
		select {
		case sig := <-signals:
			cancel(&core.InterruptError{Signal: sig})
		case <-ctx.Done():
		}
	})

	g, err := game.New(cfg, game.Deps{
		Renderer: renderer,
		Input:    handler,
		Store:    highscore.NewManager(cfg.ScoresPath),
		Log:      log,
	})
	if err != nil {
		reportError(err)
		return 1
	}

	// The poller needs an initialized screen
	if err := g.Init(); err != nil {
		reportError(err)
		return 1
	}
	handler.Start()

	err = g.Run(ctx)

	var interrupt *core.InterruptError
	switch {
	case errors.As(err, &interrupt):
		log.Infow("interrupted", "signal", interrupt.Signal.String())
		return interrupt.ExitCode()
	case err != nil:
		log.Errorw("game stopped", "error", err)
		reportError(err)
		return 1
	}
	return 0
}

func reportError(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "term-snake: %v\n", err)
}

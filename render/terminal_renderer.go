package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TerminalRenderer composes frames in a Buffer and flushes them to a tcell screen on Refresh
type TerminalRenderer struct {
	*Buffer

	screen      tcell.Screen
	palette     *Palette
	initialized bool
}

// NewTerminalRenderer wraps screen, the screen is initialized by Initialize
func NewTerminalRenderer(screen tcell.Screen, palette *Palette) *TerminalRenderer {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &TerminalRenderer{
		Buffer:  NewBuffer(0, 0),
		screen:  screen,
		palette: palette,
	}
}

// Initialize enters raw mode, hides the cursor and sizes the frame buffer
func (r *TerminalRenderer) Initialize(width, height int) error {
	if r.initialized {
		r.Resize(width, height)
		return nil
	}
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	r.screen.SetStyle(r.palette.Background())
	r.screen.HideCursor()
	r.screen.Clear()

	r.Resize(width, height)
	r.initialized = true
	return nil
}

// Refresh writes every buffer cell to the screen and shows it
// Cells beyond the physical terminal are dropped by tcell
func (r *TerminalRenderer) Refresh() {
	if !r.initialized {
		return
	}
	w, h := r.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := r.Get(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, r.palette.Style(c.Tag))
		}
	}
	r.screen.Show()
}

// Cleanup restores the terminal, safe to call more than once
func (r *TerminalRenderer) Cleanup() {
	if !r.initialized {
		return
	}
	r.initialized = false
	r.screen.Fini()
}

// Fini satisfies core.Finalizer so the crash handler can restore the terminal
func (r *TerminalRenderer) Fini() {
	r.Cleanup()
}

// Screen exposes the underlying tcell screen for the input poller
func (r *TerminalRenderer) Screen() tcell.Screen {
	return r.screen
}

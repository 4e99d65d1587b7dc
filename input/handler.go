package input

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/term-snake/constant"
	"github.com/lixenwraith/term-snake/core"
)

// EventSource is the blocking event stream of a terminal, tcell.Screen satisfies it
// PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Handler buffers key actions from a poller goroutine and hands out one per Sample
type Handler struct {
	source EventSource
	table  *KeyTable
	log    *zap.SugaredLogger

	events      chan Action
	onInterrupt func()

	last Frame
}

// NewHandler creates a handler, nil table selects DefaultKeyTable
func NewHandler(source EventSource, table *KeyTable, log *zap.SugaredLogger) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handler{
		source: source,
		table:  table,
		log:    log,
		events: make(chan Action, constant.InputQueueSize),
	}
}

// OnInterrupt sets the hook run from the poller when Ctrl-C arrives in raw mode
func (h *Handler) OnInterrupt(fn func()) {
	h.onInterrupt = fn
}

// Start launches the poller goroutine, it exits when the source is finalized
func (h *Handler) Start() {
	core.Go(h.pollLoop)
}

func (h *Handler) pollLoop() {
	for {
		ev := h.source.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			h.push(h.table.Lookup(key))
		}
	}
}

// push queues an action, dropping it when the loop has fallen behind
func (h *Handler) push(a Action) {
	if a == ActionInterrupt && h.onInterrupt != nil {
		h.onInterrupt()
		return
	}
	select {
	case h.events <- a:
	default:
		h.log.Debugw("input queue full, key dropped", "action", a.String())
	}
}

// Sample consumes at most one buffered key and makes it the frame for this tick
func (h *Handler) Sample() Frame {
	select {
	case a := <-h.events:
		h.last = Frame{Action: a}
	default:
		h.last = Frame{}
	}
	return h.last
}

// ClearKeys drains pending input and clears the current frame
func (h *Handler) ClearKeys() {
	for {
		select {
		case <-h.events:
		default:
			h.last = Frame{}
			return
		}
	}
}

// Last returns the frame of the most recent Sample
func (h *Handler) Last() Frame {
	return h.last
}

// GetDirection returns the heading pressed in the current frame
func (h *Handler) GetDirection() core.Direction { return h.last.Direction() }

func (h *Handler) IsKeyPressed() bool   { return h.last.AnyKey() }
func (h *Handler) IsUpPressed() bool    { return h.last.Up() }
func (h *Handler) IsDownPressed() bool  { return h.last.Down() }
func (h *Handler) IsLeftPressed() bool  { return h.last.Left() }
func (h *Handler) IsRightPressed() bool { return h.last.Right() }
func (h *Handler) IsPausePressed() bool { return h.last.Pause() }
func (h *Handler) IsQuitPressed() bool  { return h.last.Quit() }
func (h *Handler) IsEnterPressed() bool { return h.last.Enter() }

package fsm

import "errors"

// ErrUnknownState is returned when a transition names a state that was never added
var ErrUnknownState = errors.New("fsm: unknown state")

// ErrInvalidTransition is returned when no edge links the active state to the target
var ErrInvalidTransition = errors.New("fsm: invalid transition")

// ErrNotInitialized is returned when the machine is used before Init
var ErrNotInitialized = errors.New("fsm: not initialized")

// Node represents a state in the graph
type Node[S comparable, T any] struct {
	ID   S
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Allowed targets, each optionally guarded
	Transitions map[S]GuardFunc[T]
}

// GuardFunc returns true if the transition may occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)

// ObserverFunc is notified after every completed transition
type ObserverFunc[S comparable] func(from, to S)

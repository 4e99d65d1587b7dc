package fsm

import "fmt"

// Machine is a flat finite state machine with validated edges and enter/exit hooks
// S is the state identifier, T is the context passed to actions and guards
type Machine[S comparable, T any] struct {
	nodes map[S]*Node[S, T]

	// InitialStateID is stored during Init for Reset
	InitialStateID S

	active      S
	initialized bool

	observers []ObserverFunc[S]
}

// NewMachine creates a new FSM instance
func NewMachine[S comparable, T any]() *Machine[S, T] {
	return &Machine[S, T]{
		nodes: make(map[S]*Node[S, T]),
	}
}

// Observe registers fn to be called after each transition
func (m *Machine[S, T]) Observe(fn ObserverFunc[S]) {
	m.observers = append(m.observers, fn)
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[S, T]) Init(ctx T, initial S) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("%w: initial %v", ErrUnknownState, initial)
	}

	m.InitialStateID = initial
	m.active = initial
	m.initialized = true

	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[S, T]) Reset(ctx T) error {
	if !m.initialized {
		return ErrNotInitialized
	}
	m.runExit(ctx, m.active)
	return m.Init(ctx, m.InitialStateID)
}

// Transition moves to target if an edge exists and its guard passes
// A transition to the active state is rejected unless a self edge was added
func (m *Machine[S, T]) Transition(ctx T, target S) error {
	if !m.initialized {
		return ErrNotInitialized
	}

	targetNode, ok := m.nodes[target]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownState, target)
	}

	current := m.nodes[m.active]
	guard, allowed := current.Transitions[target]
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Name, targetNode.Name)
	}
	if guard != nil && !guard(ctx) {
		return fmt.Errorf("%w: %s -> %s rejected by guard", ErrInvalidTransition, current.Name, targetNode.Name)
	}

	from := m.active
	m.runExit(ctx, from)
	m.active = target
	for _, fn := range targetNode.OnEnter {
		fn(ctx)
	}

	for _, obs := range m.observers {
		obs(from, target)
	}
	return nil
}

// CanTransition reports whether an edge exists from the active state to target, ignoring guards
func (m *Machine[S, T]) CanTransition(target S) bool {
	if !m.initialized {
		return false
	}
	_, ok := m.nodes[m.active].Transitions[target]
	return ok
}

// Active returns the current state
func (m *Machine[S, T]) Active() S {
	return m.active
}

// ActiveName returns the name of the current state
func (m *Machine[S, T]) ActiveName() string {
	if node, ok := m.nodes[m.active]; ok && m.initialized {
		return node.Name
	}
	return ""
}

func (m *Machine[S, T]) runExit(ctx T, id S) {
	if node, ok := m.nodes[id]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}
}

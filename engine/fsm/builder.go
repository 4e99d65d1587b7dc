package fsm

// AddState adds a node to the machine, re-adding an ID replaces its node
func (m *Machine[S, T]) AddState(id S, name string) *Node[S, T] {
	node := &Node[S, T]{
		ID:          id,
		Name:        name,
		Transitions: make(map[S]GuardFunc[T]),
	}
	m.nodes[id] = node
	return node
}

// AddTransition allows source -> target, guard may be nil
func (m *Machine[S, T]) AddTransition(source, target S, guard GuardFunc[T]) {
	if node, ok := m.nodes[source]; ok {
		node.Transitions[target] = guard
	}
}

// OnEnter appends an action run every time id becomes active
func (m *Machine[S, T]) OnEnter(id S, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an action run every time id stops being active
func (m *Machine[S, T]) OnExit(id S, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

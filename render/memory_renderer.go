package render

// MemoryRenderer is a headless Renderer that keeps the last refreshed frame
type MemoryRenderer struct {
	*Buffer

	frame       *Buffer
	refreshes   int
	initialized bool
	cleanups    int
}

// NewMemoryRenderer creates an uninitialized headless renderer
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{
		Buffer: NewBuffer(0, 0),
		frame:  NewBuffer(0, 0),
	}
}

// Initialize sizes the draw and frame buffers
func (m *MemoryRenderer) Initialize(width, height int) error {
	m.Resize(width, height)
	m.frame.Resize(width, height)
	m.initialized = true
	return nil
}

// Refresh snapshots the draw buffer as the visible frame
func (m *MemoryRenderer) Refresh() {
	w, h := m.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := m.Get(x, y)
			m.frame.DrawChar(x, y, c.Rune, c.Tag)
		}
	}
	m.refreshes++
}

// Cleanup marks the renderer released
func (m *MemoryRenderer) Cleanup() {
	if m.initialized {
		m.cleanups++
	}
	m.initialized = false
}

// Frame returns the last refreshed frame
func (m *MemoryRenderer) Frame() *Buffer {
	return m.frame
}

// Refreshes returns the number of Refresh calls
func (m *MemoryRenderer) Refreshes() int {
	return m.refreshes
}

// Cleanups returns how many times an initialized renderer was cleaned up
func (m *MemoryRenderer) Cleanups() int {
	return m.cleanups
}

package highscore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Manager handles save/load of the score file
type Manager struct {
	path string
}

// NewManager creates a manager for the file at path
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Path returns the score file location
func (m *Manager) Path() string {
	return m.path
}

// Exists checks if the score file exists
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}

// Save rewrites the whole file with entries
// Data goes to a sibling temp file first so a crash never leaves a half-written table
func (m *Manager) Save(entries []Entry) error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create score dir: %w", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries); err != nil {
		return err
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}

// Load reads the score file, a missing file surfaces as an fs.ErrNotExist error
func (m *Manager) Load() ([]Entry, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, err
	}

	entries, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", m.path, err)
	}
	return entries, nil
}

package highscore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lixenwraith/term-snake/core"
)

func TestManagerSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snake_high_scores.dat")
	m := NewManager(path)

	if m.Exists() {
		t.Fatal("file exists before save")
	}
	if _, err := m.Load(); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Load missing = %v, want fs.ErrNotExist", err)
	}

	entries := []Entry{
		{Name: "Player", Score: 42, Difficulty: core.DifficultyHard},
		{Name: "Other", Score: 11, Difficulty: core.DifficultyMedium},
	}
	if err := m.Save(entries); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !m.Exists() {
		t.Fatal("file missing after save")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("loaded = %+v, want %+v", got, entries)
	}
}

func TestManagerLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.dat")
	if err := os.WriteFile(path, []byte{7, 0, 0, 0, 1}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewManager(path).Load()
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Load corrupt = %v, want ErrMalformed", err)
	}
}

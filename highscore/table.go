package highscore

import (
	"sort"

	"github.com/lixenwraith/term-snake/core"
)

// Entry is one recorded score
type Entry struct {
	Name       string
	Score      int
	Difficulty core.Difficulty
}

// Table is a bounded list of entries in descending score order
type Table struct {
	entries []Entry
	limit   int
}

// NewTable creates an empty table holding at most limit entries
func NewTable(limit int) *Table {
	return &Table{limit: limit}
}

// Replace discards the current entries and inserts all of entries
func (t *Table) Replace(entries []Entry) {
	t.entries = t.entries[:0]
	t.entries = append(t.entries, entries...)
	t.normalize()
}

// Insert adds e and returns its zero-based rank, or -1 if it fell off the table
// Ties keep earlier entries ahead of later ones
func (t *Table) Insert(e Entry) int {
	t.entries = append(t.entries, e)
	t.normalize()
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i] == e {
			return i
		}
	}
	return -1
}

func (t *Table) normalize() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
	if t.limit > 0 && len(t.entries) > t.limit {
		t.entries = t.entries[:t.limit]
	}
}

// Entries returns a copy of the ordered entries
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Best returns the top score, 0 when empty
func (t *Table) Best() int {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[0].Score
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Package aggro keeps the per-entity threat ranking of opposing entities.
package aggro

// Entry is the aggro one entity holds towards a single opponent
type Entry struct {
	ID     string `json:"id"`
	Value  int    `json:"value"`
	Locked bool   `json:"locked"`
}

// Table is an ordered collection of aggro entries. Insertion order is stable and
// decides exact ties, so reading the highest entry never mutates the table.
type Table struct {
	entries []*Entry
	index   map[string]*Entry
	locked  bool
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{index: make(map[string]*Entry)}
}

// AddOrUpdate adds delta to the entry for id, creating it first if needed. Changes
// are ignored while the table or the entry is locked unless forced. Aggro never
// drops below zero.
func (t *Table) AddOrUpdate(id string, delta int, forced bool) {
	if id == "" {
		return
	}
	if t.locked && !forced {
		return
	}

	entry, ok := t.index[id]
	if !ok {
		entry = &Entry{ID: id}
		t.index[id] = entry
		t.entries = append(t.entries, entry)
	}
	if entry.Locked && !forced {
		return
	}

	entry.Value = max(entry.Value+delta, 0)
}

// Set overwrites the aggro for id under the same lock rules as AddOrUpdate
func (t *Table) Set(id string, value int, forced bool) {
	current := 0
	if entry, ok := t.index[id]; ok {
		current = entry.Value
	}
	t.AddOrUpdate(id, value-current, forced)
}

// Get returns the entry for id
func (t *Table) Get(id string) (Entry, bool) {
	entry, ok := t.index[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Has reports whether the table tracks id
func (t *Table) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// Highest returns the entry with the most aggro. Among exactly equal values the one
// inserted first wins.
func (t *Table) Highest() (Entry, bool) {
	var best *Entry
	for _, entry := range t.entries {
		if best == nil || entry.Value > best.Value {
			best = entry
		}
	}
	if best == nil {
		return Entry{}, false
	}
	return *best, true
}

// All returns a copy of every entry in insertion order
func (t *Table) All() []Entry {
	out := make([]Entry, len(t.entries))
	for i, entry := range t.entries {
		out[i] = *entry
	}
	return out
}

// Len returns the number of tracked opponents
func (t *Table) Len() int {
	return len(t.entries)
}

// Remove stops tracking id
func (t *Table) Remove(id string) {
	if _, ok := t.index[id]; !ok {
		return
	}
	delete(t.index, id)
	for i, entry := range t.entries {
		if entry.ID == id {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return
		}
	}
}

// Reset zeroes every unlocked entry, keeping the opponents tracked
func (t *Table) Reset() {
	for _, entry := range t.entries {
		if !entry.Locked {
			entry.Value = 0
		}
	}
}

// Clear drops every entry
func (t *Table) Clear() {
	t.entries = nil
	t.index = make(map[string]*Entry)
}

// Lock freezes the whole table against unforced changes
func (t *Table) Lock() {
	t.locked = true
}

// Unlock lifts a table lock
func (t *Table) Unlock() {
	t.locked = false
}

// IsLocked reports whether the table is locked
func (t *Table) IsLocked() bool {
	return t.locked
}

// LockEntry freezes a single entry
func (t *Table) LockEntry(id string, locked bool) {
	if entry, ok := t.index[id]; ok {
		entry.Locked = locked
	}
}

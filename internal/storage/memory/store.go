package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// MemoryEntryStore is an in-memory implementation of interfaces.EntryStore.
// Each entry type has its own slice kept in insertion order.
type MemoryEntryStore struct {
	mu    sync.Mutex                          // protects items
	items map[models.EntryType][]models.Entry // ordered entries per type
}

// NewMemoryEntryStore creates an empty store with one collection per type
func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		items: map[models.EntryType][]models.Entry{
			models.Income:  make([]models.Entry, 0),
			models.Expense: make([]models.Entry, 0),
		},
	}
}

// SaveEntry appends the entry to the end of its type's collection.
func (m *MemoryEntryStore) SaveEntry(ctx context.Context, entry models.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := entry.Type()
	if _, ok := m.items[t]; !ok {
		return fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(t))
	}
	m.items[t] = append(m.items[t], entry)
	return nil
}

// DeleteEntry removes the first entry with the given id, keeping the order of
// the rest. It reports whether anything was removed.
func (m *MemoryEntryStore) DeleteEntry(ctx context.Context, entryType models.EntryType, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.items[entryType]
	if !ok {
		return false, fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(entryType))
	}

	for i, e := range entries {
		if e.EntryID() == id {
			m.items[entryType] = append(entries[:i], entries[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetEntries returns a copy of the collection so callers can't reorder it.
// The entries themselves are shared.
func (m *MemoryEntryStore) GetEntries(entryType models.EntryType) ([]models.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, ok := m.items[entryType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(entryType))
	}
	copied := make([]models.Entry, len(entries))
	copy(copied, entries)
	return copied, nil
}

// Compile-time check: ensure MemoryEntryStore implements EntryStore interface
var _ interfaces.EntryStore = (*MemoryEntryStore)(nil)

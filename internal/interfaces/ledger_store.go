package interfaces

import (
	"context"

	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// EntryStore holds the ordered entry collections, one per EntryType.
// Implementations must keep insertion order.
type EntryStore interface {
	SaveEntry(ctx context.Context, entry models.Entry) error
	DeleteEntry(ctx context.Context, entryType models.EntryType, id int) (bool, error)
	GetEntries(entryType models.EntryType) ([]models.Entry, error)
}

package interfaces

import (
	"context"
	"time"

	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// Presenter renders ledger-derived values. It never mutates the ledger.
//
//go:generate mockgen -destination=mocks/mock_presenter.go -package=mocks -source=presenter.go Presenter
type Presenter interface {
	DisplayDate(ctx context.Context, now time.Time) error
	ClearFields(ctx context.Context) error
	DisplayListItem(ctx context.Context, entry models.Entry) error
	RemoveListItem(ctx context.Context, ref models.ItemRef) error
	DisplayBudget(ctx context.Context, snapshot models.BudgetSnapshot) error
	DisplayExpensePercentages(ctx context.Context, percentages []models.Percentage) error
	ChangedType(ctx context.Context, entryType models.EntryType) error
}

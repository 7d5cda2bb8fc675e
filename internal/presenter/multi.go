// Package presenter holds helpers shared by the Presenter implementations.
package presenter

import (
	"context"
	"time"

	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// Multi forwards every call to each presenter in order and stops at the
// first error.
type Multi []interfaces.Presenter

// each stops at the first failing presenter.
func (m Multi) each(fn func(p interfaces.Presenter) error) error {
	for _, p := range m {
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) DisplayDate(ctx context.Context, now time.Time) error {
	return m.each(func(p interfaces.Presenter) error { return p.DisplayDate(ctx, now) })
}

func (m Multi) ClearFields(ctx context.Context) error {
	return m.each(func(p interfaces.Presenter) error { return p.ClearFields(ctx) })
}

func (m Multi) DisplayListItem(ctx context.Context, entry models.Entry) error {
	return m.each(func(p interfaces.Presenter) error { return p.DisplayListItem(ctx, entry) })
}

func (m Multi) RemoveListItem(ctx context.Context, ref models.ItemRef) error {
	return m.each(func(p interfaces.Presenter) error { return p.RemoveListItem(ctx, ref) })
}

func (m Multi) DisplayBudget(ctx context.Context, snapshot models.BudgetSnapshot) error {
	return m.each(func(p interfaces.Presenter) error { return p.DisplayBudget(ctx, snapshot) })
}

func (m Multi) DisplayExpensePercentages(ctx context.Context, percentages []models.Percentage) error {
	return m.each(func(p interfaces.Presenter) error { return p.DisplayExpensePercentages(ctx, percentages) })
}

func (m Multi) ChangedType(ctx context.Context, entryType models.EntryType) error {
	return m.each(func(p interfaces.Presenter) error { return p.ChangedType(ctx, entryType) })
}

var _ interfaces.Presenter = Multi(nil)

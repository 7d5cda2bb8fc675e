package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// Ledger owns the income and expense entries and the aggregates derived
// from them.
//
// Mutations (AddEntry, DeleteEntry) never touch the aggregates. Callers must
// call UpdateBudget after every mutation and before reading the snapshot or
// computing expense percentages.
type Ledger struct {
	store  interfaces.EntryStore // ordered entry collections
	logger *zap.Logger

	mu            sync.Mutex // guards everything below and serialises mutations
	nextIDs       map[models.EntryType]int
	totalIncome   decimal.Decimal
	totalExpenses decimal.Decimal
	budget        decimal.Decimal
	percentage    models.Percentage
}

// NewLedger creates a Ledger with zero totals over the given store.
func NewLedger(store interfaces.EntryStore, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		store:         store,
		logger:        logger,
		nextIDs:       map[models.EntryType]int{models.Income: 0, models.Expense: 0},
		totalIncome:   decimal.Zero,
		totalExpenses: decimal.Zero,
		budget:        decimal.Zero,
		percentage:    models.UndefinedPercentage,
	}
}

// AddEntry appends a new entry of the given type and returns it.
// Ids start at 0 and each type counts up from the highest id it has ever
// issued, so an id is never handed out twice, even after deletes.
// Description and amount are assumed to be validated by the caller.
func (l *Ledger) AddEntry(ctx context.Context, entryType models.EntryType, description string, amount decimal.Decimal) (models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !entryType.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(entryType))
	}

	newID := l.nextIDs[entryType]
	entry, err := models.NewEntry(entryType, newID, description, amount)
	if err != nil {
		return nil, err
	}
	if err := l.store.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	l.nextIDs[entryType] = newID + 1

	l.logger.Debug("entry added",
		zap.String("op", "ledger.AddEntry"),
		zap.String("type", string(entryType)),
		zap.Int("id", newID),
		zap.String("amount", amount.String()),
	)
	return entry, nil
}

// DeleteEntry removes the entry with the given id. Deleting an id that does
// not exist is a no-op.
func (l *Ledger) DeleteEntry(ctx context.Context, entryType models.EntryType, id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !entryType.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(entryType))
	}

	removed, err := l.store.DeleteEntry(ctx, entryType, id)
	if err != nil {
		return err
	}
	if !removed {
		l.logger.Debug("delete of unknown entry ignored",
			zap.String("op", "ledger.DeleteEntry"),
			zap.String("type", string(entryType)),
			zap.Int("id", id),
		)
	}
	return nil
}

// Entries returns the entries of one type in insertion order.
func (l *Ledger) Entries(entryType models.EntryType) ([]models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.store.GetEntries(entryType)
}

func (l *Ledger) calculateTotal(entryType models.EntryType) (decimal.Decimal, error) {
	entries, err := l.store.GetEntries(entryType)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.EntryAmount())
	}
	return sum, nil
}

// UpdateBudget recomputes totals, budget and the overall expense percentage
// from the current entries. It is the only way aggregates change.
func (l *Ledger) UpdateBudget() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	income, err := l.calculateTotal(models.Income)
	if err != nil {
		return err
	}
	expenses, err := l.calculateTotal(models.Expense)
	if err != nil {
		return err
	}

	l.totalIncome = income
	l.totalExpenses = expenses
	l.budget = income.Sub(expenses)
	l.percentage = models.PercentageOf(expenses, income)

	l.logger.Debug("budget updated",
		zap.String("op", "ledger.UpdateBudget"),
		zap.String("income", l.totalIncome.String()),
		zap.String("expenses", l.totalExpenses.String()),
		zap.String("budget", l.budget.String()),
		zap.Stringer("percentage", l.percentage),
	)
	return nil
}

// GetBudgetSnapshot returns the aggregates as of the last UpdateBudget.
func (l *Ledger) GetBudgetSnapshot() models.BudgetSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return models.BudgetSnapshot{
		TotalIncome:   l.totalIncome,
		TotalExpenses: l.totalExpenses,
		Budget:        l.budget,
		Percentage:    l.percentage,
	}
}

// ComputeExpensePercentages recomputes each expense's share of the total
// income known at the last UpdateBudget, stores it on the entry and returns
// the values in storage order.
func (l *Ledger) ComputeExpensePercentages() ([]models.Percentage, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.store.GetEntries(models.Expense)
	if err != nil {
		return nil, err
	}

	percentages := make([]models.Percentage, 0, len(entries))
	for _, e := range entries {
		exp, ok := e.(*models.ExpenseEntry)
		if !ok {
			return nil, fmt.Errorf("expense collection holds %T", e)
		}
		percentages = append(percentages, exp.CalcPercentage(l.totalIncome))
	}
	return percentages, nil
}

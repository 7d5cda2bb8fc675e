package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/budget-tracker/internal/ledger"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
	"github.com/sheikh-saqib/budget-tracker/internal/storage/memory"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	return ledger.NewLedger(memory.NewMemoryEntryStore(), zap.NewNop())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func add(t *testing.T, l *ledger.Ledger, typ models.EntryType, desc, amount string) models.Entry {
	t.Helper()
	e, err := l.AddEntry(context.Background(), typ, desc, dec(amount))
	require.NoError(t, err)
	return e
}

func ids(t *testing.T, l *ledger.Ledger, typ models.EntryType) []int {
	t.Helper()
	entries, err := l.Entries(typ)
	require.NoError(t, err)
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.EntryID())
	}
	return out
}

func TestLedger_EndToEnd(t *testing.T) {
	l := newLedger(t)

	inc := add(t, l, models.Income, "Salary", "1000")
	exp := add(t, l, models.Expense, "Rent", "300")
	assert.Equal(t, 0, inc.EntryID())
	assert.Equal(t, 0, exp.EntryID())
	assert.IsType(t, &models.IncomeEntry{}, inc)
	assert.IsType(t, &models.ExpenseEntry{}, exp)

	require.NoError(t, l.UpdateBudget())
	snap := l.GetBudgetSnapshot()
	assert.True(t, snap.TotalIncome.Equal(dec("1000")))
	assert.True(t, snap.TotalExpenses.Equal(dec("300")))
	assert.True(t, snap.Budget.Equal(dec("700")))
	assert.Equal(t, models.NewPercentage(30), snap.Percentage)

	pcts, err := l.ComputeExpensePercentages()
	require.NoError(t, err)
	assert.Equal(t, []models.Percentage{models.NewPercentage(30)}, pcts)
}

func TestLedger_NewLedgerIsEmpty(t *testing.T) {
	l := newLedger(t)

	snap := l.GetBudgetSnapshot()
	assert.True(t, snap.TotalIncome.IsZero())
	assert.True(t, snap.TotalExpenses.IsZero())
	assert.True(t, snap.Budget.IsZero())
	assert.False(t, snap.Percentage.IsDefined())
	assert.Empty(t, ids(t, l, models.Income))
	assert.Empty(t, ids(t, l, models.Expense))
}

func TestLedger_IDAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("ids are not reused after deleting the only entry", func(t *testing.T) {
		l := newLedger(t)
		add(t, l, models.Income, "a", "1")
		last := add(t, l, models.Income, "b", "1")
		require.NoError(t, l.DeleteEntry(ctx, models.Income, 0))
		require.NoError(t, l.DeleteEntry(ctx, models.Income, last.EntryID()))
		assert.Empty(t, ids(t, l, models.Income))

		next := add(t, l, models.Income, "c", "1")
		assert.Equal(t, last.EntryID()+1, next.EntryID())
	})

	t.Run("deleting the last entry does not free its id", func(t *testing.T) {
		l := newLedger(t)
		add(t, l, models.Expense, "a", "1")
		add(t, l, models.Expense, "b", "1")
		require.NoError(t, l.DeleteEntry(ctx, models.Expense, 1))

		e := add(t, l, models.Expense, "c", "1")
		assert.Equal(t, 2, e.EntryID())
	})

	t.Run("id follows the highest issued id, not the count", func(t *testing.T) {
		l := newLedger(t)
		add(t, l, models.Expense, "a", "1")
		add(t, l, models.Expense, "b", "1")
		add(t, l, models.Expense, "c", "1")
		require.NoError(t, l.DeleteEntry(ctx, models.Expense, 0))
		require.NoError(t, l.DeleteEntry(ctx, models.Expense, 1))

		e := add(t, l, models.Expense, "d", "1")
		assert.Equal(t, 3, e.EntryID())
	})

	t.Run("income and expense ids are independent", func(t *testing.T) {
		l := newLedger(t)
		add(t, l, models.Income, "a", "1")
		add(t, l, models.Income, "b", "1")
		e := add(t, l, models.Expense, "c", "1")
		assert.Equal(t, 0, e.EntryID())
	})
}

func TestLedger_SumAndBudget(t *testing.T) {
	tests := []struct {
		name         string
		incomes      []string
		expenses     []string
		wantIncome   string
		wantExpenses string
		wantBudget   string
	}{
		{
			name:         "income only",
			incomes:      []string{"10.10", "20.20", "0.01"},
			wantIncome:   "30.31",
			wantExpenses: "0",
			wantBudget:   "30.31",
		},
		{
			name:         "negative budget",
			incomes:      []string{"100"},
			expenses:     []string{"80", "70.5"},
			wantIncome:   "100",
			wantExpenses: "150.5",
			wantBudget:   "-50.5",
		},
		{
			name:         "no entries",
			wantIncome:   "0",
			wantExpenses: "0",
			wantBudget:   "0",
		},
		{
			name:         "fractions that drift in binary floating point",
			incomes:      []string{"0.1", "0.2"},
			expenses:     []string{"0.3"},
			wantIncome:   "0.3",
			wantExpenses: "0.3",
			wantBudget:   "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(t)
			for _, a := range tt.incomes {
				add(t, l, models.Income, "inc", a)
			}
			for _, a := range tt.expenses {
				add(t, l, models.Expense, "exp", a)
			}
			require.NoError(t, l.UpdateBudget())

			snap := l.GetBudgetSnapshot()
			assert.True(t, snap.TotalIncome.Equal(dec(tt.wantIncome)), "income %s", snap.TotalIncome)
			assert.True(t, snap.TotalExpenses.Equal(dec(tt.wantExpenses)), "expenses %s", snap.TotalExpenses)
			assert.True(t, snap.Budget.Equal(dec(tt.wantBudget)), "budget %s", snap.Budget)
			assert.True(t, snap.Budget.Equal(snap.TotalIncome.Sub(snap.TotalExpenses)))
		})
	}
}

func TestLedger_AggregatesOnlyChangeOnUpdateBudget(t *testing.T) {
	l := newLedger(t)
	add(t, l, models.Income, "Salary", "200")
	add(t, l, models.Expense, "Food", "50")

	// nothing recomputed yet
	snap := l.GetBudgetSnapshot()
	assert.True(t, snap.TotalIncome.IsZero())
	assert.False(t, snap.Percentage.IsDefined())

	pcts, err := l.ComputeExpensePercentages()
	require.NoError(t, err)
	assert.Equal(t, []models.Percentage{models.UndefinedPercentage}, pcts)

	require.NoError(t, l.UpdateBudget())
	pcts, err = l.ComputeExpensePercentages()
	require.NoError(t, err)
	assert.Equal(t, []models.Percentage{models.NewPercentage(25)}, pcts)
}

func TestLedger_PercentageSentinel(t *testing.T) {
	l := newLedger(t)
	add(t, l, models.Expense, "Rent", "300")
	add(t, l, models.Expense, "Food", "20")
	require.NoError(t, l.UpdateBudget())

	snap := l.GetBudgetSnapshot()
	assert.False(t, snap.Percentage.IsDefined())
	assert.True(t, snap.Budget.Equal(dec("-320")))

	pcts, err := l.ComputeExpensePercentages()
	require.NoError(t, err)
	require.Len(t, pcts, 2)
	for _, p := range pcts {
		assert.False(t, p.IsDefined())
	}

	entries, err := l.Entries(models.Expense)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, e.(*models.ExpenseEntry).Percentage.IsDefined())
	}
}

func TestLedger_ExpensePercentages(t *testing.T) {
	l := newLedger(t)
	add(t, l, models.Income, "Salary", "150")
	add(t, l, models.Income, "Bonus", "50")
	add(t, l, models.Expense, "Rent", "50")
	add(t, l, models.Expense, "Coffee", "1")
	add(t, l, models.Expense, "Car", "300")
	require.NoError(t, l.UpdateBudget())

	pcts, err := l.ComputeExpensePercentages()
	require.NoError(t, err)
	// 50/200=25, 1/200=0.5 rounds up, 300/200=150 is not clamped
	assert.Equal(t, []models.Percentage{
		models.NewPercentage(25),
		models.NewPercentage(1),
		models.NewPercentage(150),
	}, pcts)

	entries, err := l.Entries(models.Expense)
	require.NoError(t, err)
	for i, e := range entries {
		assert.Equal(t, pcts[i], e.(*models.ExpenseEntry).Percentage)
	}
	assert.Equal(t, models.NewPercentage(176), l.GetBudgetSnapshot().Percentage)
}

func TestLedger_DeleteIdempotence(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)
	add(t, l, models.Income, "Salary", "1000")
	add(t, l, models.Expense, "Rent", "300")
	add(t, l, models.Expense, "Food", "100")

	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 1))
	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 1))
	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 42))
	require.NoError(t, l.DeleteEntry(ctx, models.Income, 7))

	assert.Equal(t, []int{0}, ids(t, l, models.Expense))
	assert.Equal(t, []int{0}, ids(t, l, models.Income))

	require.NoError(t, l.UpdateBudget())
	assert.True(t, l.GetBudgetSnapshot().Budget.Equal(dec("700")))
}

func TestLedger_OrderPreservation(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	for i := 0; i < 5; i++ {
		add(t, l, models.Expense, "e", "1")
	}
	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 2))
	add(t, l, models.Expense, "e", "1") // id 5
	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 0))
	add(t, l, models.Expense, "e", "1") // id 6
	require.NoError(t, l.DeleteEntry(ctx, models.Expense, 6))
	add(t, l, models.Expense, "e", "1") // id 7

	assert.Equal(t, []int{1, 3, 4, 5, 7}, ids(t, l, models.Expense))
}

func TestLedger_UnknownEntryType(t *testing.T) {
	l := newLedger(t)

	_, err := l.AddEntry(context.Background(), models.EntryType("savings"), "x", dec("1"))
	assert.True(t, errors.Is(err, models.ErrUnknownEntryType))

	err = l.DeleteEntry(context.Background(), models.EntryType("savings"), 0)
	assert.True(t, errors.Is(err, models.ErrUnknownEntryType))
}

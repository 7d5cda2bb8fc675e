// Package terminal renders the budget view as plain text.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/budget-tracker/internal/format"
	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

// Row is one rendered list item.
type Row struct {
	ElementID   string
	Description string
	Value       string
	Percentage  string // expense rows only
}

// View is everything currently on screen.
type View struct {
	Title           string
	BudgetLabel     string
	IncomeLabel     string
	ExpensesLabel   string
	PercentageLabel string
	InputType       models.EntryType
	Income          []Row
	Expenses        []Row
}

// Presenter keeps a View up to date and prints it on Render.
type Presenter struct {
	mu   sync.Mutex
	view View
}

// NewPresenter creates an empty view with zero totals and income selected.
func NewPresenter() *Presenter {
	return &Presenter{
		view: View{
			BudgetLabel:     format.Currency(decimal.Zero),
			IncomeLabel:     format.Currency(decimal.Zero),
			ExpensesLabel:   format.Currency(decimal.Zero),
			PercentageLabel: format.NoPercentage,
			InputType:       models.Income,
		},
	}
}

func (p *Presenter) DisplayDate(ctx context.Context, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.view.Title = format.MonthTitle(now)
	return nil
}

// ClearFields has nothing to clear: the command line is consumed on read.
func (p *Presenter) ClearFields(ctx context.Context) error {
	return nil
}

func (p *Presenter) DisplayListItem(ctx context.Context, entry models.Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	row := Row{
		ElementID:   models.RefOf(entry).String(),
		Description: entry.EntryDescription(),
		Value:       format.Currency(entry.EntryAmount()),
	}

	switch entry.Type() {
	case models.Income:
		p.view.Income = append(p.view.Income, row)
	case models.Expense:
		row.Percentage = format.NoPercentage
		p.view.Expenses = append(p.view.Expenses, row)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(entry.Type()))
	}
	return nil
}

func (p *Presenter) RemoveListItem(ctx context.Context, ref models.ItemRef) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := ref.String()
	p.view.Income = removeRow(p.view.Income, id)
	p.view.Expenses = removeRow(p.view.Expenses, id)
	return nil
}

func removeRow(rows []Row, elementID string) []Row {
	for i, r := range rows {
		if r.ElementID == elementID {
			return append(rows[:i], rows[i+1:]...)
		}
	}
	return rows
}

// DisplayBudget refreshes the summary labels.
func (p *Presenter) DisplayBudget(ctx context.Context, snapshot models.BudgetSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.view.IncomeLabel = format.Currency(snapshot.TotalIncome)
	p.view.ExpensesLabel = format.Currency(snapshot.TotalExpenses)
	p.view.BudgetLabel = format.Currency(snapshot.Budget)
	p.view.PercentageLabel = format.Percentage(snapshot.Percentage)
	return nil
}

// DisplayExpensePercentages assigns percentages to expense rows by position.
func (p *Presenter) DisplayExpensePercentages(ctx context.Context, percentages []models.Percentage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.view.Expenses {
		if i >= len(percentages) {
			break
		}
		p.view.Expenses[i].Percentage = format.Percentage(percentages[i])
	}
	return nil
}

// ChangedType records which type new items are added as.
func (p *Presenter) ChangedType(ctx context.Context, entryType models.EntryType) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.view.InputType = entryType
	return nil
}

// Snapshot returns a copy of the current view.
func (p *Presenter) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := p.view
	v.Income = append([]Row(nil), p.view.Income...)
	v.Expenses = append([]Row(nil), p.view.Expenses...)
	return v
}

// Render writes the current view to w.
func (p *Presenter) Render(w io.Writer) error {
	v := p.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Available budget in %s\n", v.Title)
	fmt.Fprintf(&b, "  %s\n", v.BudgetLabel)
	fmt.Fprintf(&b, "  Income   %s\n", v.IncomeLabel)
	fmt.Fprintf(&b, "  Expenses %s %s\n", v.ExpensesLabel, v.PercentageLabel)
	b.WriteString("Income\n")
	for _, r := range v.Income {
		fmt.Fprintf(&b, "  [%s] %s %s\n", r.ElementID, r.Description, r.Value)
	}
	b.WriteString("Expenses\n")
	for _, r := range v.Expenses {
		fmt.Fprintf(&b, "  [%s] %s %s %s\n", r.ElementID, r.Description, r.Value, r.Percentage)
	}
	fmt.Fprintf(&b, "adding: %s\n", v.InputType)

	_, err := io.WriteString(w, b.String())
	return err
}

var _ interfaces.Presenter = (*Presenter)(nil)

package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// EntryType tags which collection an entry belongs to
type EntryType string

const (
	Income  EntryType = "inc"
	Expense EntryType = "exp"
)

// ErrUnknownEntryType is returned for a type other than Income or Expense.
var ErrUnknownEntryType = errors.New("unknown entry type")

// ParseEntryType accepts the short tags used in element ids ("inc", "exp")
// as well as the long names.
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "inc", "income":
		return Income, nil
	case "exp", "expense":
		return Expense, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEntryType, s)
}

// Valid reports whether t is one of the known entry types
func (t EntryType) Valid() bool {
	return t == Income || t == Expense
}

// Entry is the shape shared by both variants.
type Entry interface {
	Type() EntryType
	EntryID() int
	EntryDescription() string
	EntryAmount() decimal.Decimal
}

// IncomeEntry represents a single income line item
type IncomeEntry struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Entry accessors for IncomeEntry
func (e *IncomeEntry) Type() EntryType { return Income }
func (e *IncomeEntry) EntryID() int { return e.ID }
func (e *IncomeEntry) EntryDescription() string { return e.Description }
func (e *IncomeEntry) EntryAmount() decimal.Decimal { return e.Amount }

// ExpenseEntry represents a single expense line item.
// Percentage is derived from total income and only valid after the
// last recompute.
type ExpenseEntry struct {
	ID          int             `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Percentage  Percentage      `json:"percentage"`
}

// Entry accessors for ExpenseEntry
func (e *ExpenseEntry) Type() EntryType { return Expense }
func (e *ExpenseEntry) EntryID() int { return e.ID }
func (e *ExpenseEntry) EntryDescription() string { return e.Description }
func (e *ExpenseEntry) EntryAmount() decimal.Decimal { return e.Amount }

// CalcPercentage stores the share of totalIncome this expense represents,
// or the undefined sentinel when there is no positive income.
func (e *ExpenseEntry) CalcPercentage(totalIncome decimal.Decimal) Percentage {
	e.Percentage = PercentageOf(e.Amount, totalIncome)
	return e.Percentage
}

// NewEntry builds the variant matching t.
func NewEntry(t EntryType, id int, description string, amount decimal.Decimal) (Entry, error) {
	switch t {
	case Income:
		return &IncomeEntry{ID: id, Description: description, Amount: amount}, nil
	case Expense:
		return &ExpenseEntry{ID: id, Description: description, Amount: amount, Percentage: UndefinedPercentage}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEntryType, string(t))
}

// ItemRef identifies a rendered list item, e.g. "exp-3".
type ItemRef struct {
	Type EntryType
	ID   int
}

// String returns the element id, "<type>-<id>".
func (r ItemRef) String() string {
	return fmt.Sprintf("%s-%d", r.Type, r.ID)
}

// RefOf returns the list reference for e.
func RefOf(e Entry) ItemRef {
	return ItemRef{Type: e.Type(), ID: e.EntryID()}
}

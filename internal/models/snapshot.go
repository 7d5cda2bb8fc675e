package models

import "github.com/shopspring/decimal"

// BudgetSnapshot is a read-only copy of the ledger aggregates
type BudgetSnapshot struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Budget        decimal.Decimal `json:"budget"`
	Percentage    Percentage      `json:"percentage"`
}

// EmptySnapshot is what a fresh ledger reports.
func EmptySnapshot() BudgetSnapshot {
	return BudgetSnapshot{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Budget:        decimal.Zero,
		Percentage:    UndefinedPercentage,
	}
}

package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

type BudgetUpdated struct {
	EventID            string              `json:"event_id"`
	TotalIncome        decimal.Decimal     `json:"total_income"`
	TotalExpenses      decimal.Decimal     `json:"total_expenses"`
	Budget             decimal.Decimal     `json:"budget"`
	Percentage         models.Percentage   `json:"percentage"`
	ExpensePercentages []models.Percentage `json:"expense_percentages"`
	OccurredAt         time.Time           `json:"occurred_at"`
}

package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/budget-tracker/internal/interfaces/mocks"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
	modelevents "github.com/sheikh-saqib/budget-tracker/internal/models/events"
	"github.com/sheikh-saqib/budget-tracker/internal/presenter/events"
)

func TestPresenter_PublishesSnapshotWithPercentages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	pub := mocks.NewMockEventPublisher(ctrl)

	var got modelevents.BudgetUpdated
	pub.EXPECT().
		Publish(gomock.Any(), "budget_updated", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, event any) error {
			got = event.(modelevents.BudgetUpdated)
			return nil
		})

	p := events.NewPresenter(pub, "budget_updated", nil)
	p.Now = func() time.Time { return at }
	p.NewID = func() string { return "evt-1" }

	snap := models.BudgetSnapshot{
		TotalIncome:   decimal.NewFromInt(1000),
		TotalExpenses: decimal.NewFromInt(300),
		Budget:        decimal.NewFromInt(700),
		Percentage:    models.NewPercentage(30),
	}
	require.NoError(t, p.DisplayBudget(ctx, snap))
	require.NoError(t, p.DisplayExpensePercentages(ctx, []models.Percentage{models.NewPercentage(30)}))

	assert.Equal(t, modelevents.BudgetUpdated{
		EventID:            "evt-1",
		TotalIncome:        snap.TotalIncome,
		TotalExpenses:      snap.TotalExpenses,
		Budget:             snap.Budget,
		Percentage:         snap.Percentage,
		ExpensePercentages: []models.Percentage{models.NewPercentage(30)},
		OccurredAt:         at,
	}, got)
}

func TestPresenter_ListCallsPublishNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pub := mocks.NewMockEventPublisher(ctrl)
	p := events.NewPresenter(pub, "t", nil)

	entry, err := models.NewEntry(models.Income, 0, "Salary", decimal.NewFromInt(1))
	require.NoError(t, err)

	assert.NoError(t, p.DisplayDate(ctx, time.Now()))
	assert.NoError(t, p.ClearFields(ctx))
	assert.NoError(t, p.DisplayListItem(ctx, entry))
	assert.NoError(t, p.RemoveListItem(ctx, models.RefOf(entry)))
	assert.NoError(t, p.ChangedType(ctx, models.Expense))
	assert.NoError(t, p.DisplayBudget(ctx, models.EmptySnapshot()))
}

func TestPresenter_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("broker down")
	pub := mocks.NewMockEventPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), "t", gomock.Any()).Return(boom)

	p := events.NewPresenter(pub, "t", nil)
	err := p.DisplayExpensePercentages(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

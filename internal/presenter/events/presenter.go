// Package events presents budget updates as published events instead of
// on-screen labels.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
	modelevents "github.com/sheikh-saqib/budget-tracker/internal/models/events"
)

// Presenter remembers the last budget snapshot and publishes it together
// with the expense percentages, which are always pushed last in an update.
type Presenter struct {
	publisher interfaces.EventPublisher
	topic     string
	logger    *zap.Logger

	// clock and id source, replaceable in tests
	Now   func() time.Time
	NewID func() string

	mu       sync.Mutex
	snapshot models.BudgetSnapshot
}

// NewPresenter creates a presenter publishing BudgetUpdated events to topic.
func NewPresenter(publisher interfaces.EventPublisher, topic string, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Presenter{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		Now:       time.Now,
		NewID:     uuid.NewString,
		snapshot:  models.EmptySnapshot(),
	}
}

// Only the budget and the percentages reach the event stream; the list and
// input calls are ignored.
func (p *Presenter) DisplayDate(ctx context.Context, now time.Time) error { return nil }

func (p *Presenter) ClearFields(ctx context.Context) error { return nil }

func (p *Presenter) DisplayListItem(ctx context.Context, entry models.Entry) error { return nil }

func (p *Presenter) RemoveListItem(ctx context.Context, ref models.ItemRef) error { return nil }

func (p *Presenter) ChangedType(ctx context.Context, entryType models.EntryType) error { return nil }

// DisplayBudget keeps the snapshot for the next published event.
func (p *Presenter) DisplayBudget(ctx context.Context, snapshot models.BudgetSnapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot = snapshot
	return nil
}

// DisplayExpensePercentages publishes one BudgetUpdated event with the
// stored snapshot and the given percentages.
func (p *Presenter) DisplayExpensePercentages(ctx context.Context, percentages []models.Percentage) error {
	p.mu.Lock()
	snap := p.snapshot
	p.mu.Unlock()

	event := modelevents.BudgetUpdated{
		EventID:            p.NewID(),
		TotalIncome:        snap.TotalIncome,
		TotalExpenses:      snap.TotalExpenses,
		Budget:             snap.Budget,
		Percentage:         snap.Percentage,
		ExpensePercentages: append([]models.Percentage{}, percentages...),
		OccurredAt:         p.Now(),
	}

	if err := p.publisher.Publish(ctx, p.topic, event); err != nil {
		return err
	}
	p.logger.Debug("budget update published",
		zap.String("op", "events.DisplayExpensePercentages"),
		zap.String("event_id", event.EventID),
		zap.String("topic", p.topic),
	)
	return nil
}

var _ interfaces.Presenter = (*Presenter)(nil)

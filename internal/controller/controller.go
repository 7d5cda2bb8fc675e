package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/ledger"
	"github.com/sheikh-saqib/budget-tracker/internal/models"
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
)

// AddRequest is a structured "add item" action from the input layer.
type AddRequest struct {
	Type        models.EntryType
	Description string
	Amount      decimal.Decimal
}

// Validate applies the only checks the ledger relies on.
func (r AddRequest) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(r.Type))
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if !r.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// Controller sequences ledger mutations and presenter updates.
// Every add or delete is followed by the same steps, in this order:
// mutate the ledger, update the list, UpdateBudget, push the snapshot,
// compute expense percentages, push them.
type Controller struct {
	ledger    *ledger.Ledger
	presenter interfaces.Presenter
	logger    *zap.Logger
	now       func() time.Time

	mu        sync.Mutex // one action at a time
	inputType models.EntryType
}

// NewController wires a ledger to a presenter.
func NewController(l *ledger.Ledger, p interfaces.Presenter, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		ledger:    l,
		presenter: p,
		logger:    logger,
		now:       time.Now,
		inputType: models.Income,
	}
}

// Init shows the current month and an empty budget.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.presenter.DisplayDate(ctx, c.now()); err != nil {
		return fmt.Errorf("display date: %w", err)
	}
	if err := c.presenter.DisplayBudget(ctx, models.EmptySnapshot()); err != nil {
		return fmt.Errorf("display budget: %w", err)
	}
	c.logger.Info("budget tracker started", zap.String("op", "controller.Init"))
	return nil
}

// AddItem validates the request, stores the new entry and refreshes the view.
// Invalid requests change nothing.
func (c *Controller) AddItem(ctx context.Context, req AddRequest) (models.Entry, error) {
	if err := req.Validate(); err != nil {
		c.logger.Debug("add rejected",
			zap.String("op", "controller.AddItem"),
			zap.Error(err),
		)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.presenter.ClearFields(ctx); err != nil {
		return nil, fmt.Errorf("clear fields: %w", err)
	}

	entry, err := c.ledger.AddEntry(ctx, req.Type, req.Description, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("could not add entry: %w", err)
	}

	if err := c.presenter.DisplayListItem(ctx, entry); err != nil {
		return entry, fmt.Errorf("display list item: %w", err)
	}
	if err := c.updateBudget(ctx); err != nil {
		return entry, err
	}
	if err := c.updatePercentages(ctx); err != nil {
		return entry, err
	}

	c.logger.Info("item added",
		zap.String("op", "controller.AddItem"),
		zap.String("item", models.RefOf(entry).String()),
	)
	return entry, nil
}

// DeleteItem removes an item and refreshes the view. Unknown items are
// tolerated: the view and ledger are left as they are and the totals are
// still refreshed.
func (c *Controller) DeleteItem(ctx context.Context, ref models.ItemRef) error {
	if !ref.Type.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownEntryType, string(ref.Type))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.presenter.RemoveListItem(ctx, ref); err != nil {
		return fmt.Errorf("remove list item: %w", err)
	}
	if err := c.ledger.DeleteEntry(ctx, ref.Type, ref.ID); err != nil {
		return fmt.Errorf("could not delete entry: %w", err)
	}
	if err := c.updateBudget(ctx); err != nil {
		return err
	}
	if err := c.updatePercentages(ctx); err != nil {
		return err
	}

	c.logger.Info("item deleted",
		zap.String("op", "controller.DeleteItem"),
		zap.String("item", ref.String()),
	)
	return nil
}

// ChangeType flips the type new items are added as.
func (c *Controller) ChangeType(ctx context.Context) (models.EntryType, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := models.Expense
	if c.inputType == models.Expense {
		next = models.Income
	}
	if err := c.presenter.ChangedType(ctx, next); err != nil {
		return c.inputType, fmt.Errorf("changed type: %w", err)
	}
	c.inputType = next
	return next, nil
}

// InputType is the type currently selected for new items.
func (c *Controller) InputType() models.EntryType {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inputType
}

func (c *Controller) updateBudget(ctx context.Context) error {
	if err := c.ledger.UpdateBudget(); err != nil {
		return fmt.Errorf("could not update budget: %w", err)
	}
	if err := c.presenter.DisplayBudget(ctx, c.ledger.GetBudgetSnapshot()); err != nil {
		return fmt.Errorf("display budget: %w", err)
	}
	return nil
}

func (c *Controller) updatePercentages(ctx context.Context) error {
	percentages, err := c.ledger.ComputeExpensePercentages()
	if err != nil {
		return fmt.Errorf("could not compute expense percentages: %w", err)
	}
	if err := c.presenter.DisplayExpensePercentages(ctx, percentages); err != nil {
		return fmt.Errorf("display expense percentages: %w", err)
	}
	return nil
}

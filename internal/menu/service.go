package menu

import (
	"context"
	"fmt"
	"time"

	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for menu items.
type Service interface {
	ListItems(ctx context.Context) ([]MenuItem, error)
	GetItem(ctx context.Context, itemID string) (*MenuItem, error)
	CreateItem(ctx context.Context, input ItemInput) (*MenuItem, error)
	UpdateItem(ctx context.Context, itemID string, input ItemInput) (*MenuItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new menu service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListItems(ctx context.Context) ([]MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *service) GetItem(ctx context.Context, itemID string) (*MenuItem, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) CreateItem(ctx context.Context, input ItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateItem"),
		zap.String("name", input.Name),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid menu item input", zap.Error(err))
		return nil, err
	}

	item := &MenuItem{
		ItemID:      uuid.NewString(),
		Name:        input.Name,
		Price:       normalizePrice(input.Price),
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   money.FormatUnix(s.now()),
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	log.Info("menu item created", zap.String("item_id", item.ItemID))
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, itemID string, input ItemInput) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateItem"),
		zap.String("item_id", itemID),
	)

	if err := validateInput(input); err != nil {
		log.Warn("invalid menu item input", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Price = normalizePrice(input.Price)
	existing.Description = input.Description
	existing.Category = input.Category

	// Orders hold their own snapshot of the item, so edits here never
	// touch historical totals.
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}

	log.Info("menu item updated")
	return existing, nil
}

func (s *service) DeleteItem(ctx context.Context, itemID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteItem"),
		zap.String("item_id", itemID),
	)

	if err := s.repo.Delete(ctx, itemID); err != nil {
		return err
	}

	log.Info("menu item deleted")
	return nil
}

func validateInput(input ItemInput) error {
	if input.Name == "" {
		return ErrMissingName
	}

	price, err := money.Parse(input.Price)
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativePrice, input.Price)
	}

	return nil
}

// normalizePrice re-renders a validated price with two decimal places.
func normalizePrice(s string) string {
	price, err := money.Parse(s)
	if err != nil {
		return s
	}
	return money.Format(price)
}

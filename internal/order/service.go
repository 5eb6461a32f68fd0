package order

import (
	"context"
	"fmt"
	"time"

	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/money"
	"resto-admin-be/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// numberAttempts bounds the retry loop for order-number collisions.
const numberAttempts = 5

// Service defines the business logic for orders. Monetary fields are
// always recomputed here from the submitted line items; figures sent by
// the client are treated as display values and discarded.
type Service interface {
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	CreateOrder(ctx context.Context, sub Submission) (*Order, error)
	UpdateOrder(ctx context.Context, orderID string, sub Submission) (*Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *service) CreateOrder(ctx context.Context, sub Submission) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("item_count", len(sub.Items)),
	)

	o, err := s.finalize(sub)
	if err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	o.OrderID = uuid.NewString()

	number, err := s.assignNumber(ctx, sub.OrderNumber)
	if err != nil {
		return nil, err
	}
	o.OrderNumber = number

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.OrderID),
		zap.String("order_number", o.OrderNumber),
		zap.String("total", o.Total),
	)
	return o, nil
}

func (s *service) UpdateOrder(ctx context.Context, orderID string, sub Submission) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrder"),
		zap.String("order_id", orderID),
	)

	existing, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o, err := s.finalize(sub)
	if err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	// The human-facing number survives edits.
	o.OrderID = existing.OrderID
	o.OrderNumber = existing.OrderNumber

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order updated", zap.String("total", o.Total))
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, orderID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteOrder"),
		zap.String("order_id", orderID),
	)

	if err := s.repo.Delete(ctx, orderID); err != nil {
		return err
	}

	log.Info("order deleted")
	return nil
}

// finalize validates a submission and derives the stored monetary
// fields: subtotal and total from the snapshot prices, discount_pct
// clamped into [0, 1], order_date at the submission instant.
func (s *service) finalize(sub Submission) (*Order, error) {
	if len(sub.Items) == 0 {
		return nil, ErrNoItems
	}

	basket := make(pricing.Basket, 0, len(sub.Items))
	for _, oi := range sub.Items {
		if oi.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, oi.Item.Name, oi.Quantity)
		}
		basket = append(basket, pricing.LineItem{Item: oi.Item, Quantity: oi.Quantity})
	}

	frac, err := money.Parse(sub.DiscountPct)
	if err != nil {
		return nil, fmt.Errorf("discount_pct: %w", err)
	}
	frac = clampFraction(frac)

	pct, _ := frac.Mul(decimal.NewFromInt(100)).Float64()
	totals, err := pricing.ComputeTotals(basket, pct)
	if err != nil {
		return nil, err
	}

	return &Order{
		Items:       sub.Items,
		Subtotal:    money.Format(totals.Subtotal),
		Total:       money.Format(totals.Total),
		DiscountPct: money.Format(frac),
		OrderDate:   money.FormatUnix(s.now()),
	}, nil
}

// assignNumber picks the stored order number. A client-sent number is a
// display placeholder only: it is kept when free, and regenerated when
// it collides with an existing order.
func (s *service) assignNumber(ctx context.Context, proposed string) (string, error) {
	candidate := proposed
	if candidate == "" {
		candidate = pricing.GenerateOrderNumber()
	}

	for i := 0; i < numberAttempts; i++ {
		exists, err := s.repo.OrderNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = pricing.GenerateOrderNumber()
	}

	return "", ErrNumbersExhausted
}

func clampFraction(frac decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if frac.IsNegative() {
		return decimal.Zero
	}
	if frac.GreaterThan(one) {
		return one
	}
	return frac
}

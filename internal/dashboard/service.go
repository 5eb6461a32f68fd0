package dashboard

import (
	"context"
	"time"

	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/order"

	"go.uber.org/zap"
)

// Stats is the full dashboard payload.
type Stats struct {
	Summary
	RecentOrders []order.Order `json:"recent_orders"`
	PopularItems []ItemStat    `json:"popular_items"`
}

// Service assembles dashboard statistics from the stored collections.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	orders order.Repository
	items  menu.Repository
	now    func() time.Time
}

// NewService creates a new dashboard service.
func NewService(orders order.Repository, items menu.Repository) Service {
	return &service{orders: orders, items: items, now: time.Now}
}

// Stats materializes both collections before any aggregation runs; a
// failed fetch surfaces as an error and no partial figures are produced.
func (s *service) Stats(ctx context.Context) (*Stats, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Stats"),
	)

	orders, err := s.orders.List(ctx)
	if err != nil {
		log.Error("failed to load orders", zap.Error(err))
		return nil, err
	}

	menuItems, err := s.items.List(ctx)
	if err != nil {
		log.Error("failed to load menu items", zap.Error(err))
		return nil, err
	}

	summary, err := ComputeSummary(orders, menuItems)
	if err != nil {
		log.Error("summary aggregation failed", zap.Error(err))
		return nil, err
	}

	recent, err := RecentOrders(orders, s.now(), DefaultWindowDays, DefaultRecentLimit)
	if err != nil {
		log.Error("recent-orders aggregation failed", zap.Error(err))
		return nil, err
	}

	popular, err := PopularItems(orders, DefaultPopularLimit)
	if err != nil {
		log.Error("popular-items aggregation failed", zap.Error(err))
		return nil, err
	}

	log.Info("dashboard stats computed",
		zap.Int("orders", summary.TotalOrders),
		zap.Int("menu_items", summary.MenuItemsCount),
	)

	return &Stats{
		Summary:      summary,
		RecentOrders: recent,
		PopularItems: popular,
	}, nil
}

// Command seed loads a small set of sample menu items and historical
// orders, enough to exercise the dashboard locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"resto-admin-be/internal/config"
	"resto-admin-be/internal/db"
	"resto-admin-be/internal/logger"
	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/money"
	"resto-admin-be/internal/order"
	"resto-admin-be/internal/pricing"

	"github.com/google/uuid"
)

func main() {
	days := flag.Int("days", 45, "spread sample orders over this many past days")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ctx := context.Background()
	menuSvc := menu.NewService(menu.NewRepository(database))
	orderRepo := order.NewRepository(database)

	items, err := seedMenu(ctx, menuSvc)
	if err != nil {
		log.Fatalf("seeding menu failed: %v", err)
	}
	fmt.Printf("Seeded %d menu items\n", len(items))

	n, err := seedOrders(ctx, orderRepo, items, *days)
	if err != nil {
		log.Fatalf("seeding orders failed: %v", err)
	}
	fmt.Printf("Seeded %d orders over the past %d days\n", n, *days)
}

func strPtr(s string) *string { return &s }

func seedMenu(ctx context.Context, svc menu.Service) ([]menu.MenuItem, error) {
	inputs := []menu.ItemInput{
		{Name: "Margherita Pizza", Price: "12.99", Description: strPtr("Classic tomato and mozzarella pizza"), Category: "Pizza"},
		{Name: "Spaghetti Carbonara", Price: "14.99", Description: strPtr("Creamy pasta with pancetta"), Category: "Pasta"},
		{Name: "Caesar Salad", Price: "8.99", Description: strPtr("Fresh romaine lettuce with Caesar dressing"), Category: "Salad"},
		{Name: "Tiramisu", Price: "6.50", Description: strPtr("Espresso-soaked ladyfingers with mascarpone"), Category: "Dessert"},
		{Name: "Sparkling Water", Price: "2.75", Category: "Drinks"},
	}

	items := make([]menu.MenuItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := svc.CreateItem(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("create %q: %w", in.Name, err)
		}
		items = append(items, *item)
	}
	return items, nil
}

// seedOrders writes orders directly through the repository so each one
// can carry a back-dated order_date. Totals are computed the same way
// the order service computes them.
func seedOrders(ctx context.Context, repo order.Repository, items []menu.MenuItem, days int) (int, error) {
	now := time.Now()
	count := 0

	for day := 0; day < days; day += 3 {
		basket := pricing.Basket{}
		for j := 0; j <= (day/3)%3; j++ {
			basket = pricing.AddItem(basket, items[(day+j)%len(items)])
		}
		if day%2 == 0 {
			basket = pricing.ChangeQuantity(basket, items[day%len(items)].ItemID, 1)
		}

		discountPct := 0.0
		if day%5 == 0 {
			discountPct = 10.0
		}

		totals, err := pricing.ComputeTotals(basket, discountPct)
		if err != nil {
			return count, err
		}

		orderItems := make([]order.OrderItem, 0, len(basket))
		for _, line := range basket {
			orderItems = append(orderItems, order.OrderItem{Item: line.Item, Quantity: line.Quantity})
		}

		o := &order.Order{
			OrderID:     uuid.New().String(),
			OrderNumber: strconv.Itoa(100000 + count),
			Items:       orderItems,
			Subtotal:    money.Format(totals.Subtotal),
			Total:       money.Format(totals.Total),
			DiscountPct: fmt.Sprintf("%.2f", discountPct/100),
			OrderDate:   money.FormatUnix(now.AddDate(0, 0, -day)),
		}
		if err := repo.Create(ctx, o); err != nil {
			return count, fmt.Errorf("create order %s: %w", o.OrderNumber, err)
		}
		count++
	}

	return count, nil
}

// Package dashboard rolls historical orders up into the summary figures
// the admin dashboard shows. Every aggregation is a pure function over
// materialized collections: inputs are never mutated, and repeated calls
// share no state.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/money"
	"resto-admin-be/internal/order"

	"github.com/shopspring/decimal"
)

const (
	DefaultWindowDays   = 30
	DefaultRecentLimit  = 5
	DefaultPopularLimit = 5
)

// Summary holds the headline dashboard figures.
type Summary struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalOrders        int             `json:"total_orders"`
	MenuItemsCount     int             `json:"menu_items_count"`
	AverageOrderAmount decimal.Decimal `json:"average_order_amount"`
}

// ItemStat is one entry of the popular-items ranking. Revenue is based
// on the snapshot price stored in each order, not the live menu price.
type ItemStat struct {
	Item         menu.MenuItem   `json:"item"`
	TotalOrdered int             `json:"total_ordered"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ComputeSummary sums order totals with exact decimal arithmetic. The
// average over zero orders is defined as zero, not an error.
func ComputeSummary(orders []order.Order, menuItems []menu.MenuItem) (Summary, error) {
	revenue := decimal.Zero

	for _, o := range orders {
		total, err := money.Parse(o.Total)
		if err != nil {
			return Summary{}, fmt.Errorf("order %s: %w", o.OrderID, err)
		}
		revenue = revenue.Add(total)
	}

	average := decimal.Zero
	if len(orders) > 0 {
		average = revenue.DivRound(decimal.NewFromInt(int64(len(orders))), 2)
	}

	return Summary{
		TotalRevenue:       revenue,
		TotalOrders:        len(orders),
		MenuItemsCount:     len(menuItems),
		AverageOrderAmount: average,
	}, nil
}

// RecentOrders returns at most limit orders whose order_date falls
// within the last windowDays before now, boundary included, most recent
// first. Ties keep the original collection order.
func RecentOrders(orders []order.Order, now time.Time, windowDays, limit int) ([]order.Order, error) {
	cutoff := now.Unix() - int64(windowDays)*86400

	type dated struct {
		o  order.Order
		ts int64
	}

	recent := make([]dated, 0, len(orders))
	for _, o := range orders {
		ts, err := money.ParseUnix(o.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", o.OrderID, err)
		}
		if ts >= cutoff {
			recent = append(recent, dated{o: o, ts: ts})
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].ts > recent[j].ts
	})

	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}

	result := make([]order.Order, len(recent))
	for i, d := range recent {
		result[i] = d.o
	}
	return result, nil
}

// PopularItems folds every line item of every order into per-item
// accumulated quantity and snapshot-price revenue, then returns the top
// limit items by quantity ordered. Ties keep encounter order: orders in
// collection order, line items in order sequence. The item snapshot
// reported is the first one encountered.
func PopularItems(orders []order.Order, limit int) ([]ItemStat, error) {
	stats := map[string]*ItemStat{}
	encounter := []string{}

	for _, o := range orders {
		for _, li := range o.Items {
			price, err := money.Parse(li.Item.Price)
			if err != nil {
				return nil, fmt.Errorf("order %s, item %q: %w", o.OrderID, li.Item.Name, err)
			}

			st, ok := stats[li.Item.ItemID]
			if !ok {
				st = &ItemStat{Item: li.Item, Revenue: decimal.Zero}
				stats[li.Item.ItemID] = st
				encounter = append(encounter, li.Item.ItemID)
			}

			st.TotalOrdered += li.Quantity
			st.Revenue = st.Revenue.Add(price.Mul(decimal.NewFromInt(int64(li.Quantity))))
		}
	}

	ranked := make([]ItemStat, 0, len(encounter))
	for _, id := range encounter {
		ranked = append(ranked, *stats[id])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalOrdered > ranked[j].TotalOrdered
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

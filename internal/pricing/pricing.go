// Package pricing maintains an editable basket of menu items and derives
// the monetary fields of an order. Every operation is a pure function:
// baskets are never mutated in place, and amounts are computed with exact
// decimal arithmetic.
package pricing

import (
	"fmt"
	"time"

	"resto-admin-be/internal/menu"
	"resto-admin-be/internal/money"

	"github.com/shopspring/decimal"
)

// LineItem pairs a menu item snapshot with a quantity. The snapshot is a
// value copy of the item as it exists when added; later menu edits do not
// reach into the basket.
type LineItem struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// Basket is the in-progress sequence of line items for an order being
// created or edited. Insertion order is preserved.
type Basket []LineItem

// Totals holds the exact monetary breakdown of a basket. Total always
// equals Subtotal minus Discount with no intermediate rounding; amounts
// round to cents only when an order payload is serialized.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// AddItem returns a new basket with the item added. When a line item with
// the same item_id already exists its quantity increments by one,
// otherwise a new line item with quantity 1 is appended.
func AddItem(b Basket, item menu.MenuItem) Basket {
	next := make(Basket, len(b))
	copy(next, b)

	for i := range next {
		if next[i].Item.ItemID == item.ItemID {
			next[i].Quantity++
			return next
		}
	}

	return append(next, LineItem{Item: item, Quantity: 1})
}

// ChangeQuantity returns a new basket with delta applied to the line item
// identified by itemID. A resulting quantity of zero or less removes the
// line item entirely; an unknown itemID leaves the basket unchanged.
func ChangeQuantity(b Basket, itemID string, delta int) Basket {
	next := make(Basket, 0, len(b))

	for _, li := range b {
		if li.Item.ItemID == itemID {
			li.Quantity += delta
			if li.Quantity <= 0 {
				continue
			}
		}
		next = append(next, li)
	}

	return next
}

// ComputeTotals sums the basket with exact decimal arithmetic.
// discountPct is a percentage in [0, 100]; values outside the range are
// clamped, not rejected. The only possible failure is a malformed price
// string on a line item.
func ComputeTotals(b Basket, discountPct float64) (Totals, error) {
	subtotal := decimal.Zero

	for _, li := range b {
		price, err := money.Parse(li.Item.Price)
		if err != nil {
			return Totals{}, fmt.Errorf("line item %q: %w", li.Item.Name, err)
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(li.Quantity))))
	}

	pct := clampPct(discountPct)
	discount := subtotal.Mul(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}

// OrderPayload is an order record ready for submission, matching the
// Order wire shape minus the server-assigned order_id.
type OrderPayload struct {
	OrderNumber string     `json:"order_number"`
	Items       []LineItem `json:"items"`
	Subtotal    string     `json:"subtotal"`
	Total       string     `json:"total"`
	DiscountPct string     `json:"discount_pct"`
	OrderDate   string     `json:"order_date"`
}

// BuildOrderPayload serializes a basket for submission. When editing,
// existingOrderNumber is carried over; otherwise a fresh 6-digit number
// is generated as a display placeholder (the server assigns the final,
// uniqueness-checked number). Subtotal and total are each rounded once,
// from their exact values, to two decimal places.
func BuildOrderPayload(b Basket, discountPct float64, existingOrderNumber string) (OrderPayload, error) {
	totals, err := ComputeTotals(b, discountPct)
	if err != nil {
		return OrderPayload{}, err
	}

	number := existingOrderNumber
	if number == "" {
		number = GenerateOrderNumber()
	}

	frac := decimal.NewFromFloat(clampPct(discountPct)).Div(decimal.NewFromInt(100))

	items := make([]LineItem, len(b))
	copy(items, b)

	return OrderPayload{
		OrderNumber: number,
		Items:       items,
		Subtotal:    money.Format(totals.Subtotal),
		Total:       money.Format(totals.Total),
		DiscountPct: money.Format(frac),
		OrderDate:   money.FormatUnix(time.Now()),
	}, nil
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

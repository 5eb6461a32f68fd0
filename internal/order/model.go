package order

import "resto-admin-be/internal/menu"

// OrderItem pairs a menu item snapshot with a quantity. The snapshot is
// a value copy taken at order time: menu edits and deletes never alter
// the line items of a stored order.
type OrderItem struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// Order is the wire shape of a stored order. Subtotal, Total and
// DiscountPct are fixed two-decimal strings; OrderDate is string-encoded
// Unix seconds.
type Order struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	Subtotal    string      `json:"subtotal"`
	Total       string      `json:"total"`
	DiscountPct string      `json:"discount_pct"`
	OrderDate   string      `json:"order_date"`
}

// Submission carries the client-editable fields of an order. Monetary
// fields are recomputed server-side and any client-sent figures are
// ignored.
type Submission struct {
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	DiscountPct string      `json:"discount_pct"`
}

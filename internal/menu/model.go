package menu

// MenuItem is the wire shape of a menu entry. Price and CreatedAt stay
// string-encoded; arithmetic goes through internal/money.
type MenuItem struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"created_at"`
}

// ItemInput carries the client-editable fields for create and update.
type ItemInput struct {
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
}

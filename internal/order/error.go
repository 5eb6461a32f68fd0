package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrNoItems          = errors.New("order must contain at least one line item")
	ErrInvalidQuantity  = errors.New("line item quantity must be positive")
	ErrNumbersExhausted = errors.New("could not assign a unique order number")
)

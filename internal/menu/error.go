package menu

import "errors"

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrMissingName   = errors.New("name is required")
)

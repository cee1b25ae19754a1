package inventory

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("item needs a name, a non-negative price and a non-negative stock")
)

package order

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")
	ErrTableRequired       = errors.New("a table must be selected while free tables exist")
	ErrTableUnavailable    = errors.New("selected table is no longer free")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotPending     = errors.New("order is not pending")
)

// InsufficientStockError names the item and how much of it is left.
type InsufficientStockError struct {
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: only %d available", e.Name, e.Available)
}

// UnknownItemError marks a cart line whose item left the catalog between
// cart-build and checkout. Placement fails rather than dropping the line.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("item %s is no longer in the catalog", e.ItemID)
}

// PartialWriteError reports a step that failed after an earlier write
// already committed. The committed write stands; the failure is surfaced,
// not rolled back.
type PartialWriteError struct {
	Op  string
	Err error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("%s failed after order update committed: %v", e.Op, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

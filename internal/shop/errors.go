package shop

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

// ValidationError reports malformed caller input. No state change
// accompanies it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientStockError rejects a sale whose quantity exceeds the
// available stock at transaction time.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

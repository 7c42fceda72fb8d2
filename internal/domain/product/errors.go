package product

import "fmt"

// ValidationError reports malformed construction arguments or an invalid
// quantity assignment. The caller never receives a half-built product.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid product: %s", e.Reason)
}

// InactiveProductError indicates a purchase attempt on a deactivated product.
type InactiveProductError struct {
	Name string
}

func (e *InactiveProductError) Error() string {
	return fmt.Sprintf("product %s is inactive", e.Name)
}

// InvalidQuantityError indicates a non-positive purchase quantity.
type InvalidQuantityError struct {
	Name      string
	Requested int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for product %s, got %d",
		e.Name, e.Requested)
}

// InsufficientStockError indicates the requested quantity exceeds the
// available stock.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("quantity requested for %s is larger than what exists: want %d, have %d",
		e.Name, e.Requested, e.Available)
}

// MaximumExceededError indicates the requested quantity exceeds a Limited
// product's per-order cap.
type MaximumExceededError struct {
	Name      string
	Requested int
	Maximum   int
}

func (e *MaximumExceededError) Error() string {
	return fmt.Sprintf("product %s is limited to %d per order, got %d",
		e.Name, e.Maximum, e.Requested)
}

package stock

import "fmt"

// InsufficientStockError is returned when a stock-out entry would drive an
// item's stock below zero. The whole transaction is rolled back.
type InsufficientStockError struct {
	ItemID uint
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock for item \"%d\" is not enough!", e.ItemID)
}

// ItemNotFoundError is returned when a transaction entry references an item
// id that does not exist.
type ItemNotFoundError struct {
	ItemID uint
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("Item with id %d not found", e.ItemID)
}

// InvalidQuantityError is returned for a negative qty, which would silently
// invert the movement's direction.
type InvalidQuantityError struct {
	ItemID uint
	Qty    int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("Invalid quantity %d for item %d: qty must not be negative", e.Qty, e.ItemID)
}

// InvalidTypeError is returned when the transaction type is neither "in"
// nor "out".
type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Invalid transaction type %q: must be \"in\" or \"out\"", e.Type)
}

package checkout

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no order matches the given order number.
	ErrNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when the unique index rejects a
	// generated order number. The generator is only collision-resistant in
	// practice; the index is the actual uniqueness guarantee.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// Store is the persistence surface of the checkout service.
type Store interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (Order, error)
	List(ctx context.Context) ([]Order, error)
}

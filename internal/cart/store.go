package cart

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an item id does not exist under the given
// session.
var ErrNotFound = errors.New("cart item not found")

// Store is the persistence surface of the cart service.
type Store interface {
	ItemsBySession(ctx context.Context, sessionID string) ([]Item, error)
	Add(ctx context.Context, sessionID string, in AddInput) (Item, error)
	SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (Item, error)
	Remove(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error
}

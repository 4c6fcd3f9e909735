package catalogue

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no wig matches the given id.
var ErrNotFound = errors.New("wig not found")

// Store is the persistence surface of the catalogue service.
type Store interface {
	List(ctx context.Context) ([]Wig, error)
	Get(ctx context.Context, id string) (Wig, error)
	Create(ctx context.Context, w Wig) (Wig, error)
	Update(ctx context.Context, id string, upd WigUpdate) (Wig, error)
	Delete(ctx context.Context, id string) error
}

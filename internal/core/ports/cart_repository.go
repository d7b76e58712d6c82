package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CartRepository defines persistence operations for the carts collection.
type CartRepository interface {
	Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	// ListByOwner returns all pending cart items for the given email.
	ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error)
	FindByID(ctx context.Context, id string) (*domain.CartItem, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// AddCartItemInput carries an add-to-cart request from the transport layer.
type AddCartItemInput struct {
	MenuItemID string
	Name       string
	Image      string
	Price      float64
	Email      string
}

// CartService defines use-case operations for shopping carts. Ownership is
// enforced here: list and delete both require the email of the verified
// caller and fail with domain.ErrForbidden on mismatch.
type CartService interface {
	Add(ctx context.Context, input AddCartItemInput) (*domain.CartItem, error)
	ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error)
	// Delete removes the cart item with the given id, provided it belongs
	// to requesterEmail.
	Delete(ctx context.Context, id, requesterEmail string) error
}

package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CreateMenuItemInput carries a new catalog entry from the transport layer.
type CreateMenuItemInput struct {
	Name     string
	Recipe   string
	Image    string
	Category string
	Price    float64
}

// CatalogService defines use-case operations for the public catalog:
// menu items and customer reviews.
type CatalogService interface {
	ListMenu(ctx context.Context) ([]*domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	ListReviews(ctx context.Context) ([]*domain.Review, error)
}

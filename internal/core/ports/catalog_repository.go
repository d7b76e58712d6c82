package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// MenuRepository defines persistence operations for the menus collection.
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository reads the reviews collection. Reviews have no mutation
// path in this system.
type ReviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
}

package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// PromoteToAdmin sets role = admin on the user with the given id.
	PromoteToAdmin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

package ports

import (
	"context"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CreateUserInput carries registration data from the transport layer.
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUserResult is returned by Create. AlreadyExisted is true when the
// email was taken; in that case no insert happened and User is the stored
// record, not a new one.
type CreateUserResult struct {
	User           *domain.User
	AlreadyExisted bool
}

// UserService defines use-case operations for identity management.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*CreateUserResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	// IsAdmin reports whether the stored role for email is admin.
	// Unknown emails report false rather than an error.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// UserService implements identity management on top of UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create registers a user unless the email is already taken. Duplicate
// registration is not an error: the existing record is returned with
// AlreadyExisted set and no insert is performed.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*ports.CreateUserResult, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return &ports.CreateUserResult{User: existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:      input.Name,
		Email:     input.Email,
		Role:      domain.RoleStandard,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		// Lost race against a concurrent registration for the same email.
		if errors.Is(err, domain.ErrUserExists) {
			if existing, findErr := s.repo.FindByEmail(ctx, input.Email); findErr == nil {
				return &ports.CreateUserResult{User: existing, AlreadyExisted: true}, nil
			}
		}
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return &ports.CreateUserResult{User: created}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) error {
	if err := s.repo.PromoteToAdmin(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user promoted to admin")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// IsAdmin reports the stored role for email. Unknown emails are simply not
// admins; only infrastructure failures surface as errors.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

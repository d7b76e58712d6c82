package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// CartService manages pending order lines. Reads and deletes are scoped to
// the verified owner; mismatched requesters get domain.ErrForbidden.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) Add(ctx context.Context, input ports.AddCartItemInput) (*domain.CartItem, error) {
	item, err := s.repo.Add(ctx, &domain.CartItem{
		MenuItemID: input.MenuItemID,
		Name:       input.Name,
		Image:      input.Image,
		Price:      input.Price,
		Email:      input.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return item, nil
}

func (s *CartService) ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error) {
	return s.repo.ListByOwner(ctx, email)
}

// Delete removes a single cart item after confirming the requester owns it.
// The stored owner is authoritative; the caller's claim alone is not enough.
func (s *CartService) Delete(ctx context.Context, id, requesterEmail string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if item.Email != requesterEmail {
		s.logger.Warn().Str("cart_item_id", id).Str("requester", requesterEmail).Msg("cart delete denied")
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

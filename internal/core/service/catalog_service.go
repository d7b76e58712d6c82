package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

// CatalogService exposes the public catalog: menu items and reviews.
type CatalogService struct {
	menus   ports.MenuRepository
	reviews ports.ReviewRepository
	logger  zerolog.Logger
}

func NewCatalogService(menus ports.MenuRepository, reviews ports.ReviewRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{menus: menus, reviews: reviews, logger: logger}
}

func (s *CatalogService) ListMenu(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.menus.List(ctx)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, input ports.CreateMenuItemInput) (*domain.MenuItem, error) {
	created, err := s.menus.Create(ctx, &domain.MenuItem{
		Name:     input.Name,
		Recipe:   input.Recipe,
		Image:    input.Image,
		Category: input.Category,
		Price:    input.Price,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_item_id", created.ID).Str("category", created.Category).Msg("menu item created")
	return created, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.menus.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("menu_item_id", id).Msg("menu item deleted")
	return nil
}

func (s *CatalogService) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

package services

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"

	"github.com/google/uuid"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(r *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: r}
}

func (s *MenuService) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	return s.Repo.GetAll(ctx)
}

func (s *MenuService) GetPopular(ctx context.Context) ([]model.MenuItem, error) {
	return s.Repo.GetPopular(ctx, 6)
}

func (s *MenuService) GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	if category == "" {
		return nil, errors.New("category is required")
	}
	return s.Repo.GetByCategory(ctx, category)
}

func (s *MenuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	return s.Repo.GetByID(ctx, id)
}

func validateMenuItem(it *model.MenuItem) error {
	if it.Name == "" {
		return errors.New("item name is required")
	}
	if it.Price < 0 {
		return errors.New("price cannot be negative")
	}
	for i := range it.Variants {
		if it.Variants[i].Price < 0 {
			return errors.New("variant price cannot be negative")
		}
		if it.Variants[i].ID == "" {
			it.Variants[i].ID = uuid.NewString()
		}
	}
	for i := range it.Addons {
		if it.Addons[i].Price < 0 {
			return errors.New("addon price cannot be negative")
		}
		if it.Addons[i].ID == "" {
			it.Addons[i].ID = uuid.NewString()
		}
	}
	return nil
}

func (s *MenuService) Create(ctx context.Context, it *model.MenuItem) (*model.MenuItem, error) {
	if err := validateMenuItem(it); err != nil {
		return nil, err
	}
	it.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *MenuService) Update(ctx context.Context, it *model.MenuItem) (*model.MenuItem, error) {
	if it.ID == "" {
		return nil, errors.New("item id is required")
	}
	if err := validateMenuItem(it); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// ToggleStock flips availability. Clients apply this optimistically and
// refetch the list when the call fails.
func (s *MenuService) ToggleStock(ctx context.Context, id string, inStock bool) error {
	return s.Repo.SetStock(ctx, id, inStock)
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

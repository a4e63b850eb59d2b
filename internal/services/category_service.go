package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"

	"github.com/google/uuid"
)

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(r *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: r}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]model.CategoryItem, error) {
	return s.Repo.GetAll(ctx)
}

func slugify(name string) string {
	slug := slugCleanup.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func (s *CategoryService) Create(ctx context.Context, c *model.CategoryItem) (*model.CategoryItem, error) {
	if c.Name == "" {
		return nil, errors.New("category name is required")
	}
	c.ID = uuid.NewString()
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, c *model.CategoryItem) (*model.CategoryItem, error) {
	if c.ID == "" {
		return nil, errors.New("category id is required")
	}
	if c.Name == "" {
		return nil, errors.New("category name is required")
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

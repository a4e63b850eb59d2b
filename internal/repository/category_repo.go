package repository

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]model.CategoryItem, error) {
	query := `SELECT id, name, slug, COALESCE(image_url, ''), display_order FROM categories ORDER BY display_order, name`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []model.CategoryItem{}
	for rows.Next() {
		var c model.CategoryItem
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ImageURL, &c.DisplayOrder); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.CategoryItem) error {
	query := `INSERT INTO categories (id, name, slug, image_url, display_order) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.Exec(ctx, query, c.ID, c.Name, c.Slug, c.ImageURL, c.DisplayOrder)
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.CategoryItem) error {
	query := `UPDATE categories SET name=$1, slug=$2, image_url=$3, display_order=$4 WHERE id=$5`
	tag, err := r.DB.Exec(ctx, query, c.Name, c.Slug, c.ImageURL, c.DisplayOrder, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

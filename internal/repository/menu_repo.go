package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMenuItemNotFound is returned when the menu item id does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

type MenuRepository struct {
	DB *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{DB: db}
}

const menuColumns = `id, name, description, price, image_url, category, popular, in_stock,
	COALESCE(variants, '[]'::jsonb), COALESCE(addons, '[]'::jsonb), created_at`

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var it model.MenuItem
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.ImageURL,
		&it.Category, &it.Popular, &it.InStock, &it.Variants, &it.Addons, &it.CreatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *MenuRepository) collect(ctx context.Context, query string, args ...any) ([]model.MenuItem, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		it, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetAll(ctx context.Context) ([]model.MenuItem, error) {
	return r.collect(ctx, `SELECT `+menuColumns+` FROM menu_items ORDER BY created_at DESC`)
}

func (r *MenuRepository) GetPopular(ctx context.Context, limit int) ([]model.MenuItem, error) {
	return r.collect(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE popular=true LIMIT $1`, limit)
}

func (r *MenuRepository) GetByCategory(ctx context.Context, category string) ([]model.MenuItem, error) {
	return r.collect(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE category=$1 ORDER BY created_at DESC`, category)
}

// getMenuItem maps a single-row miss onto the domain sentinel; every other
// scan error (connection loss, bad data) is propagated as-is.
func getMenuItem(row pgx.Row) (*model.MenuItem, error) {
	it, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *MenuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	return getMenuItem(r.DB.QueryRow(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id=$1`, id))
}

func (r *MenuRepository) Create(ctx context.Context, it *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, description, price, image_url, category, popular, in_stock, variants, addons, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.Exec(ctx, query, it.ID, it.Name, it.Description, it.Price, it.ImageURL,
		it.Category, it.Popular, it.InStock, it.Variants, it.Addons, time.Now())
	return err
}

func (r *MenuRepository) Update(ctx context.Context, it *model.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, image_url=$4, category=$5, popular=$6, in_stock=$7, variants=$8, addons=$9
		WHERE id=$10
	`
	tag, err := r.DB.Exec(ctx, query, it.Name, it.Description, it.Price, it.ImageURL,
		it.Category, it.Popular, it.InStock, it.Variants, it.Addons, it.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) SetStock(ctx context.Context, id string, inStock bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE menu_items SET in_stock=$1 WHERE id=$2`, inStock, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

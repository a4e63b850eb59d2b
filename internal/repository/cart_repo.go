package repository

import (
	"context"
	"errors"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepository persists cart lines per customer session so a cart survives
// a page reload. Line ids and insertion order come back verbatim.
type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// GetLines returns the session's cart lines in insertion order.
func (r *CartRepository) GetLines(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	query := `
		SELECT line_id, menu_item_id, name, unit_price, quantity, variant,
		       COALESCE(addons, '[]'::jsonb), COALESCE(instructions, '')
		FROM cart_lines
		WHERE session_id=$1
		ORDER BY position
	`
	rows, err := r.DB.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []model.CartLine{}
	for rows.Next() {
		var line model.CartLine
		if err := rows.Scan(&line.LineID, &line.MenuItemID, &line.Name, &line.UnitPrice,
			&line.Quantity, &line.Variant, &line.Addons, &line.Instructions); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// InsertLine appends one line to the session's cart.
func (r *CartRepository) InsertLine(ctx context.Context, sessionID string, line model.CartLine) error {
	query := `
		INSERT INTO cart_lines (line_id, session_id, menu_item_id, name, unit_price, quantity, variant, addons, instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.Exec(ctx, query, line.LineID, sessionID, line.MenuItemID, line.Name,
		line.UnitPrice, line.Quantity, line.Variant, line.Addons, line.Instructions)
	return err
}

// SetQuantity sets the exact quantity for one line.
func (r *CartRepository) SetQuantity(ctx context.Context, sessionID, lineID string, quantity int) error {
	query := `UPDATE cart_lines SET quantity=$1 WHERE session_id=$2 AND line_id=$3`
	tag, err := r.DB.Exec(ctx, query, quantity, sessionID, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart line not found")
	}
	return nil
}

// RemoveLine deletes one line. Deleting an absent line is not an error.
func (r *CartRepository) RemoveLine(ctx context.Context, sessionID, lineID string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart_lines WHERE session_id=$1 AND line_id=$2`, sessionID, lineID)
	return err
}

// Clear removes all lines for a session.
func (r *CartRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart_lines WHERE session_id=$1`, sessionID)
	return err
}

// ClearTx removes all lines for a session inside an existing transaction,
// so checkout can clear the cart atomically with order creation.
func (r *CartRepository) ClearTx(ctx context.Context, tx pgx.Tx, sessionID string) error {
	_, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE session_id=$1`, sessionID)
	return err
}

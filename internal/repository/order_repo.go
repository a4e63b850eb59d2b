package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStatusChanged is returned when a guarded status update finds the order
// no longer in the expected status (another admin got there first).
var ErrStatusChanged = errors.New("order status has changed, please refresh")

// ErrOrderNotFound is returned when the order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `id, order_code, customer_name, customer_phone, total,
	COALESCE(vat_amount, 0), status, payment_method, COALESCE(service_option, 'delivery'),
	COALESCE(delivery_address, ''), COALESCE(notes, ''), created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.ID, &o.OrderCode, &o.CustomerName, &o.CustomerPhone, &o.Total,
		&o.VATAmount, &o.Status, &o.PaymentMethod, &o.ServiceOption,
		&o.DeliveryAddress, &o.Notes, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order row and all item rows as one transaction and
// notifies listeners. The passed tx callback runs inside the same transaction
// so callers can attach extra work (e.g. clearing the cart) atomically.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order, inTx func(pgx.Tx) error) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (id, order_code, customer_name, customer_phone, total, vat_amount,
			status, payment_method, service_option, delivery_address, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := tx.Exec(ctx, query, o.ID, o.OrderCode, o.CustomerName, o.CustomerPhone,
		o.Total, o.VATAmount, o.Status, o.PaymentMethod, o.ServiceOption,
		o.DeliveryAddress, o.Notes, o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, position, menu_item_id, name, quantity, price,
			selected_variant, selected_addons, instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for i := range o.Items {
		it := &o.Items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.OrderID = o.ID
		if it.Position == 0 {
			it.Position = i + 1
		}
		if _, err := tx.Exec(ctx, itemQuery, it.ID, it.OrderID, it.Position, it.MenuItemID, it.Name,
			it.Quantity, it.Price, it.Variant, it.Addons, it.Instructions); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if inTx != nil {
		if err := inTx(tx); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `SELECT pg_notify('orders_changed', $1)`, o.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// CodeInUse reports whether an active (non-terminal) order already carries the code.
func (r *OrderRepository) CodeInUse(ctx context.Context, code string) (bool, error) {
	var n int
	query := `SELECT COUNT(*) FROM orders WHERE order_code=$1 AND status NOT IN ($2, $3)`
	if err := r.DB.QueryRow(ctx, query, code, model.StatusCompleted, model.StatusCancelled).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetAll returns orders newest-first, optionally filtered by status, with items attached.
func (r *OrderRepository) GetAll(ctx context.Context, status string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	args := []any{}
	if status != "" && status != "all" {
		query = `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC`
		args = append(args, status)
	}
	return r.collectWithItems(ctx, query, args...)
}

// GetCompletedBetween returns completed orders in [start, end] ascending by
// creation time, with items attached. Used by the report side.
func (r *OrderRepository) GetCompletedBetween(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE status=$1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC`
	return r.collectWithItems(ctx, query, model.StatusCompleted, start, end)
}

// GetNonCancelled returns every order that was not cancelled, with items
// attached. Used by the dashboard projections.
func (r *OrderRepository) GetNonCancelled(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status <> $1 ORDER BY created_at DESC`
	return r.collectWithItems(ctx, query, model.StatusCancelled)
}

func (r *OrderRepository) collectWithItems(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	index := map[string]int{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		o.Items = []model.OrderItem{}
		index[o.ID] = len(orders)
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, 0, len(orders))
	for id := range index {
		ids = append(ids, id)
	}
	items, err := r.itemsForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		i := index[it.OrderID]
		orders[i].Items = append(orders[i].Items, it)
	}
	return orders, nil
}

func (r *OrderRepository) itemsForOrders(ctx context.Context, orderIDs []string) ([]model.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.position, oi.menu_item_id, oi.name, oi.quantity, oi.price,
		       COALESCE(mi.category, ''), oi.selected_variant,
		       COALESCE(oi.selected_addons, '[]'::jsonb), COALESCE(oi.instructions, '')
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id, oi.position
	`
	rows, err := r.DB.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.OrderItem{}
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Position, &it.MenuItemID, &it.Name, &it.Quantity,
			&it.Price, &it.Category, &it.Variant, &it.Addons, &it.Instructions); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetByID returns a single order with its items.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	row := r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	o.Items = []model.OrderItem{}
	items, err := r.itemsForOrders(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// TransitionStatus performs the guarded status update and the matching history
// append as one logical unit. The UPDATE is conditional on the expected current
// status; losing the race yields ErrStatusChanged and nothing is written.
func (r *OrderRepository) TransitionStatus(ctx context.Context, orderID string, from, to model.OrderStatus) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2 AND status=$3`, to, orderID, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, orderID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrStatusChanged
	}

	historyQuery := `
		INSERT INTO order_status_history (id, order_id, old_status, new_status, changed_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, historyQuery, uuid.NewString(), orderID, from, to, time.Now()); err != nil {
		return fmt.Errorf("append status history: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_notify('orders_changed', $1)`, orderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetHistory returns the order's status history newest-first.
func (r *OrderRepository) GetHistory(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, old_status, new_status, changed_at
		FROM order_status_history
		WHERE order_id=$1
		ORDER BY changed_at DESC, id DESC
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []model.OrderStatusHistory{}
	for rows.Next() {
		var h model.OrderStatusHistory
		if err := rows.Scan(&h.ID, &h.OrderID, &h.OldStatus, &h.NewStatus, &h.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

// UpdateContact edits the customer-facing fields of an order without touching
// its status or items.
func (r *OrderRepository) UpdateContact(ctx context.Context, orderID, name, phone, address, notes string) error {
	query := `UPDATE orders SET customer_name=$1, customer_phone=$2, delivery_address=$3, notes=$4 WHERE id=$5`
	tag, err := r.DB.Exec(ctx, query, name, phone, address, notes, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	_, err = r.DB.Exec(ctx, `SELECT pg_notify('orders_changed', $1)`, orderID)
	return err
}

package order

import (
	"context"
	"database/sql"
	"errors"

	"resto-admin-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID string) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, orderID string) error
	OrderNumberExists(ctx context.Context, number string) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "List"),
	)

	const q = `
		SELECT order_id, order_number, subtotal, total, discount_pct, order_date
		FROM orders
		ORDER BY order_date ASC, order_id ASC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	ids := []string{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.OrderID, &o.OrderNumber, &o.Subtotal,
			&o.Total, &o.DiscountPct, &o.OrderDate,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		o.Items = []OrderItem{}
		orders = append(orders, o)
		ids = append(ids, o.OrderID)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if items, ok := itemsByOrder[orders[i].OrderID]; ok {
			orders[i].Items = items
		}
	}

	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "GetByID"),
		zap.String("order_id", orderID),
	)

	const q = `
		SELECT order_id, order_number, subtotal, total, discount_pct, order_date
		FROM orders
		WHERE order_id = $1
	`

	var o Order
	err := r.db.QueryRowContext(ctx, q, orderID).Scan(
		&o.OrderID, &o.OrderNumber, &o.Subtotal,
		&o.Total, &o.DiscountPct, &o.OrderDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	itemsByOrder, err := r.fetchItems(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	o.Items = itemsByOrder[orderID]
	if o.Items == nil {
		o.Items = []OrderItem{}
	}

	return &o, nil
}

// fetchItems loads the snapshot line items for a set of orders in one
// query, keyed by order id.
func (r *repository) fetchItems(ctx context.Context, orderIDs []string) (map[string][]OrderItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "fetchItems"),
		zap.Int("order_count", len(orderIDs)),
	)

	const q = `
		SELECT order_id, item_id, name, price, description, category, item_created_at, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, q, pq.Array(orderIDs))
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := map[string][]OrderItem{}
	for rows.Next() {
		var (
			orderID string
			oi      OrderItem
			desc    sql.NullString
		)
		if err := rows.Scan(
			&orderID, &oi.Item.ItemID, &oi.Item.Name, &oi.Item.Price,
			&desc, &oi.Item.Category, &oi.Item.CreatedAt, &oi.Quantity,
		); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		if desc.Valid {
			oi.Item.Description = &desc.String
		}
		result[orderID] = append(result[orderID], oi)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return result, nil
}

func (r *repository) Create(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "Create"),
		zap.String("order_id", o.OrderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const insertOrder = `
		INSERT INTO orders (order_id, order_number, subtotal, total, discount_pct, order_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.ExecContext(ctx, insertOrder,
		o.OrderID, o.OrderNumber, o.Subtotal, o.Total, o.DiscountPct, o.OrderDate,
	); err != nil {
		log.Error("insert order failed", zap.Error(err))
		return err
	}

	if err := insertItems(ctx, tx, o.OrderID, o.Items); err != nil {
		log.Error("insert items failed", zap.Error(err))
		return err
	}

	return tx.Commit()
}

// Update replaces the full order record: the header row is rewritten and
// the line items are deleted and reinserted.
func (r *repository) Update(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "Update"),
		zap.String("order_id", o.OrderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const updateOrder = `
		UPDATE orders
		SET order_number = $2, subtotal = $3, total = $4, discount_pct = $5, order_date = $6
		WHERE order_id = $1
	`
	res, err := tx.ExecContext(ctx, updateOrder,
		o.OrderID, o.OrderNumber, o.Subtotal, o.Total, o.DiscountPct, o.OrderDate,
	)
	if err != nil {
		log.Error("update order failed", zap.Error(err))
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.OrderID); err != nil {
		log.Error("delete items failed", zap.Error(err))
		return err
	}

	if err := insertItems(ctx, tx, o.OrderID, o.Items); err != nil {
		log.Error("insert items failed", zap.Error(err))
		return err
	}

	return tx.Commit()
}

func (r *repository) Delete(ctx context.Context, orderID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "Delete"),
		zap.String("order_id", orderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		log.Error("delete items failed", zap.Error(err))
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		log.Error("delete order failed", zap.Error(err))
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return tx.Commit()
}

func (r *repository) OrderNumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM orders WHERE order_number = $1`, number,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func insertItems(ctx context.Context, tx *sql.Tx, orderID string, items []OrderItem) error {
	const insertItem = `
		INSERT INTO order_items (id, order_id, position, item_id, name, price, description, category, item_created_at, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	for i, oi := range items {
		if _, err := tx.ExecContext(ctx, insertItem,
			uuid.NewString(), orderID, i,
			oi.Item.ItemID, oi.Item.Name, oi.Item.Price, oi.Item.Description,
			oi.Item.Category, oi.Item.CreatedAt, oi.Quantity,
		); err != nil {
			return err
		}
	}

	return nil
}

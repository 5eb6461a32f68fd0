package menu

import (
	"context"
	"database/sql"
	"errors"
	"resto-admin-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]MenuItem, error)
	GetByID(ctx context.Context, itemID string) (*MenuItem, error)
	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, itemID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Menu"),
		zap.String("method", "List"),
	)

	const q = `
		SELECT item_id, name, price, description, category, created_at
		FROM menu_items
		ORDER BY created_at ASC, name ASC
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return items, nil
}

func (r *repository) GetByID(ctx context.Context, itemID string) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Menu"),
		zap.String("method", "GetByID"),
		zap.String("item_id", itemID),
	)

	const q = `
		SELECT item_id, name, price, description, category, created_at
		FROM menu_items
		WHERE item_id = $1
	`

	row := r.db.QueryRowContext(ctx, q, itemID)
	item, err := scanItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return item, nil
}

func (r *repository) Create(ctx context.Context, item *MenuItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Menu"),
		zap.String("method", "Create"),
		zap.String("item_id", item.ItemID),
	)

	const q = `
		INSERT INTO menu_items (item_id, name, price, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, q,
		item.ItemID, item.Name, item.Price, item.Description,
		item.Category, item.CreatedAt,
	)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return err
	}

	return nil
}

func (r *repository) Update(ctx context.Context, item *MenuItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Menu"),
		zap.String("method", "Update"),
		zap.String("item_id", item.ItemID),
	)

	const q = `
		UPDATE menu_items
		SET name = $2, price = $3, description = $4, category = $5
		WHERE item_id = $1
	`

	res, err := r.db.ExecContext(ctx, q,
		item.ItemID, item.Name, item.Price, item.Description, item.Category,
	)
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, itemID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Menu"),
		zap.String("method", "Delete"),
		zap.String("item_id", itemID),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE item_id = $1`, itemID)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func scanItem(scan func(dest ...any) error) (*MenuItem, error) {
	var (
		item MenuItem
		desc sql.NullString
	)
	if err := scan(
		&item.ItemID, &item.Name, &item.Price, &desc,
		&item.Category, &item.CreatedAt,
	); err != nil {
		return nil, err
	}
	if desc.Valid {
		item.Description = &desc.String
	}
	return &item, nil
}

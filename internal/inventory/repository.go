package inventory

import (
	"context"
	"database/sql"
	"errors"

	"dinepos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input NewItemInput) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, input NewItemInput) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("name", input.Name),
	)

	category := input.Category
	if category == "" {
		category = DefaultCategory
	}

	item := &Item{}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory (id, name, price, stock, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, price, stock, category
	`, uuid.NewString(), input.Name, input.Price, input.Stock, category).
		Scan(&item.ID, &item.Name, &item.Price, &item.Stock, &item.Category)

	if err != nil {
		log.Error("failed to insert item", zap.Error(err))
		return nil, err
	}

	log.Info("item created", zap.String("item_id", item.ID))
	return item, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, stock, category
		FROM inventory
		WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Price, &item.Stock, &item.Category)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) List(ctx context.Context) ([]*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, stock, category
		FROM inventory
		ORDER BY name
	`)
	if err != nil {
		log.Error("failed to query inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Stock, &item.Category); err != nil {
			log.Error("failed to scan item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return items, nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE inventory
		SET name = $1, price = $2, stock = $3
		WHERE id = $4
		RETURNING id, name, price, stock, category
	`, input.Name, input.Price, input.Stock, id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Stock, &item.Category)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

package tables

import (
	"context"
	"database/sql"

	"dinepos-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Count(ctx context.Context) (int, error)
	CreateDefaults(ctx context.Context, ids []string) error
	List(ctx context.Context) ([]*Table, error)
	ListFree(ctx context.Context) ([]*Table, error)
	SetStatus(ctx context.Context, id string, status Status) (*Table, error)
	Release(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tables`).Scan(&n)
	return n, err
}

// CreateDefaults inserts the fixed table set. ON CONFLICT keeps the insert
// idempotent when two first loads race.
func (r *repository) CreateDefaults(ctx context.Context, ids []string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateDefaults"),
	)

	for _, id := range ids {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO tables (id, status, order_id, updated_at)
			VALUES ($1, 'free', NULL, NOW())
			ON CONFLICT (id) DO NOTHING
		`, id)
		if err != nil {
			log.Error("failed to create table", zap.String("table_id", id), zap.Error(err))
			return err
		}
	}

	log.Info("default tables created", zap.Int("count", len(ids)))
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Table, error) {
	return r.scanTables(ctx, `
		SELECT id, status, order_id, updated_at
		FROM tables
		ORDER BY id
	`)
}

func (r *repository) ListFree(ctx context.Context) ([]*Table, error) {
	return r.scanTables(ctx, `
		SELECT id, status, order_id, updated_at
		FROM tables
		WHERE status = 'free'
		ORDER BY id
	`)
}

func (r *repository) scanTables(ctx context.Context, query string) ([]*Table, error) {
	log := logger.FromCtx(ctx)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tables", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []*Table
	for rows.Next() {
		t := &Table{}
		if err := rows.Scan(&t.ID, &t.Status, &t.OrderID, &t.UpdatedAt); err != nil {
			log.Error("failed to scan table row", zap.Error(err))
			return nil, err
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetStatus is the manual operator override. Setting a table free clears
// order_id in the same statement so the two fields never desynchronize.
func (r *repository) SetStatus(ctx context.Context, id string, status Status) (*Table, error) {
	t := &Table{}

	var err error
	if status == StatusFree {
		err = r.db.QueryRowContext(ctx, `
			UPDATE tables
			SET status = $1, order_id = NULL, updated_at = NOW()
			WHERE id = $2
			RETURNING id, status, order_id, updated_at
		`, status, id).Scan(&t.ID, &t.Status, &t.OrderID, &t.UpdatedAt)
	} else {
		err = r.db.QueryRowContext(ctx, `
			UPDATE tables
			SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING id, status, order_id, updated_at
		`, status, id).Scan(&t.ID, &t.Status, &t.OrderID, &t.UpdatedAt)
	}

	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (r *repository) Release(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tables
		SET status = 'free', order_id = NULL, updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTableNotFound
	}

	return nil
}

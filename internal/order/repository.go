package order

import (
	"context"
	"database/sql"
	"errors"

	"dinepos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	ListPending(ctx context.Context, search string) ([]*Order, error)
	MarkCompleted(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx commits a placement in one transaction: the order row, its
// lines, the conditional stock decrements and the conditional table flip.
// A lost race on stock or on the table aborts the whole transaction.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.String("order_id", o.ID),
		zap.Int("line_count", len(o.Lines)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (
			id, customer_name, phone, payment_method,
			total_price, status, table_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		o.ID,
		o.CustomerName,
		o.Phone,
		o.PaymentMethod,
		o.TotalPrice,
		o.Status,
		o.TableID,
		o.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for _, line := range o.Lines {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, item_id, name, price, quantity)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, uuid.NewString(), o.ID, line.ItemID, line.Name, line.Price, line.Quantity)
		if err != nil {
			log.Error("failed to insert order line",
				zap.String("item_id", line.ItemID),
				zap.Error(err),
			)
			return err
		}

		// Deduct stock; the condition catches a concurrent buyer who got
		// there first between the pre-check and this write.
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory
			SET stock = stock - $1
			WHERE id = $2 AND stock >= $1
		`, line.Quantity, line.ItemID)
		if err != nil {
			log.Error("failed to decrement stock",
				zap.String("item_id", line.ItemID),
				zap.Error(err),
			)
			return err
		}

		affected, _ := res.RowsAffected()
		if affected == 0 {
			var name string
			var available int
			scanErr := tx.QueryRowContext(ctx,
				`SELECT name, stock FROM inventory WHERE id = $1`, line.ItemID,
			).Scan(&name, &available)
			if errors.Is(scanErr, sql.ErrNoRows) {
				return &UnknownItemError{ItemID: line.ItemID}
			}
			if scanErr != nil {
				return scanErr
			}
			log.Warn("stock decrement lost race",
				zap.String("item_id", line.ItemID),
				zap.Int("available", available),
			)
			return &InsufficientStockError{Name: name, Available: available}
		}
	}

	if o.TableID != nil {
		res, err := tx.ExecContext(ctx, `
			UPDATE tables
			SET status = 'occupied', order_id = $1, updated_at = NOW()
			WHERE id = $2 AND status = 'free'
		`, o.ID, *o.TableID)
		if err != nil {
			log.Error("failed to occupy table",
				zap.String("table_id", *o.TableID),
				zap.Error(err),
			)
			return err
		}

		affected, _ := res.RowsAffected()
		if affected == 0 {
			log.Warn("table no longer free", zap.String("table_id", *o.TableID))
			return ErrTableUnavailable
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("order transaction committed")
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, phone, payment_method, total_price, status, table_id, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Phone,
		&o.PaymentMethod,
		&o.TotalPrice,
		&o.Status,
		&o.TableID,
		&o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT item_id, name, price, quantity
		FROM order_items
		WHERE order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, line)
	}

	return o, rows.Err()
}

func (r *repository) ListPending(ctx context.Context, search string) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListPending"),
	)

	query := `
		SELECT id, customer_name, phone, payment_method, total_price, status, table_id, created_at
		FROM orders
		WHERE status = 'pending'
	`
	args := []any{}
	if search != "" {
		query += ` AND (customer_name ILIKE $1 OR phone LIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query pending orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	byID := map[string]*Order{}
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Phone,
			&o.PaymentMethod,
			&o.TotalPrice,
			&o.Status,
			&o.TableID,
			&o.CreatedAt,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		byID[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	lineRows, err := r.db.QueryContext(ctx, `
		SELECT oi.order_id, oi.item_id, oi.name, oi.price, oi.quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status = 'pending'
	`)
	if err != nil {
		log.Error("failed to query order lines", zap.Error(err))
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID string
		var line Line
		if err := lineRows.Scan(&orderID, &line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, line)
		}
	}

	log.Info("pending orders fetched", zap.Int("count", len(orders)))
	return orders, lineRows.Err()
}

// MarkCompleted flips pending to completed, the only transition an order
// supports.
func (r *repository) MarkCompleted(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'completed'
		WHERE id = $1 AND status = 'pending'
	`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if scanErr := r.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)`, id,
		).Scan(&exists); scanErr != nil {
			return scanErr
		}
		if !exists {
			return ErrOrderNotFound
		}
		return ErrOrderNotPending
	}

	return nil
}

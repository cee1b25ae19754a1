package report

import (
	"context"
	"database/sql"
	"time"

	"dinepos-be/internal/logger"
	"dinepos-be/internal/order"

	"go.uber.org/zap"
)

// LowStockThreshold marks items the dashboard flags for restocking.
const LowStockThreshold = 5

type Repository interface {
	CompletedOrders(ctx context.Context, since *time.Time) ([]*order.Order, error)
	Summary(ctx context.Context) (*Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CompletedOrders(ctx context.Context, since *time.Time) ([]*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CompletedOrders"),
	)

	query := `
		SELECT id, customer_name, phone, payment_method, total_price, status, table_id, created_at
		FROM orders
		WHERE status = 'completed'
	`
	args := []any{}
	if since != nil {
		query += ` AND created_at >= $1`
		args = append(args, *since)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query completed orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*order.Order
	byID := map[string]*order.Order{}
	for rows.Next() {
		o := &order.Order{}
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
		WHERE o.status = 'completed'
	`)
	if err != nil {
		log.Error("failed to query order lines", zap.Error(err))
		return nil, err
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var orderID string
		var line order.Line
		if err := lineRows.Scan(&orderID, &line.ItemID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		if o, ok := byID[orderID]; ok {
			o.Lines = append(o.Lines, line)
		}
	}

	log.Info("completed orders fetched", zap.Int("count", len(orders)))
	return orders, lineRows.Err()
}

func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	s := &Summary{}

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COALESCE(SUM(total_price) FILTER (WHERE status = 'completed'), 0)
		FROM orders
	`).Scan(&s.PendingOrders, &s.CompletedOrders, &s.TotalRevenue)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory WHERE stock <= $1`, LowStockThreshold,
	).Scan(&s.LowStockItems)
	if err != nil {
		return nil, err
	}

	return s, nil
}

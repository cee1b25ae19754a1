package order

import (
	"context"
	"strings"
	"time"

	"dinepos-be/internal/cart"
	"dinepos-be/internal/inventory"
	"dinepos-be/internal/logger"
	"dinepos-be/internal/tables"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, c cart.Cart, info CustomerInfo) (*Order, error)
	CompleteOrder(ctx context.Context, orderID string) (*Order, error)
	PendingOrders(ctx context.Context, search string) ([]*Order, error)
}

type service struct {
	repo      Repository
	itemRepo  inventory.Repository
	tableRepo tables.Repository
}

func NewService(repo Repository, itemRepo inventory.Repository, tableRepo tables.Repository) Service {
	return &service{
		repo:      repo,
		itemRepo:  itemRepo,
		tableRepo: tableRepo,
	}
}

// PlaceOrder turns a cart into a committed order plus its inventory and
// table side effects. Validation runs before any write; the writes
// themselves are one transaction.
func (s *service) PlaceOrder(ctx context.Context, c cart.Cart, info CustomerInfo) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Int("line_count", c.Len()),
	)

	log.Info("place order started")

	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Phone) == "" {
		log.Warn("missing customer info")
		return nil, ErrMissingCustomerInfo
	}

	// 1. Resolve cart against live stock
	lines := make([]Line, 0, c.Len())
	var total float64

	for _, cl := range c.Lines() {
		item, err := s.itemRepo.GetByID(ctx, cl.ItemID)
		if err != nil {
			log.Error("failed to resolve cart item",
				zap.String("item_id", cl.ItemID),
				zap.Error(err),
			)
			return nil, err
		}
		if item == nil {
			log.Warn("cart item left the catalog", zap.String("item_id", cl.ItemID))
			return nil, &UnknownItemError{ItemID: cl.ItemID}
		}
		if cl.Quantity > item.Stock {
			log.Warn("insufficient stock",
				zap.String("item_id", cl.ItemID),
				zap.Int("requested", cl.Quantity),
				zap.Int("available", item.Stock),
			)
			return nil, &InsufficientStockError{Name: item.Name, Available: item.Stock}
		}

		lines = append(lines, Line{
			ItemID:   item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: cl.Quantity,
		})
		total += item.Price * float64(cl.Quantity)
	}

	// 2. A table must be chosen while any is free; with none free the
	// order goes through without one.
	free, err := s.tableRepo.ListFree(ctx)
	if err != nil {
		log.Error("failed to list free tables", zap.Error(err))
		return nil, err
	}
	if len(free) > 0 && info.TableID == "" {
		return nil, ErrTableRequired
	}

	paymentMethod := PaymentOther
	if info.PayOnDelivery {
		paymentMethod = PaymentPayOnDelivery
	}

	o := &Order{
		ID:            uuid.NewString(),
		CustomerName:  info.Name,
		Phone:         info.Phone,
		PaymentMethod: paymentMethod,
		Lines:         lines,
		TotalPrice:    total,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}
	if info.TableID != "" {
		o.TableID = &info.TableID
	}

	log = log.With(
		zap.String("order_id", o.ID),
		zap.Float64("total_price", o.TotalPrice),
	)

	// 3. Commit
	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed")
	return o, nil
}

// CompleteOrder closes out a pending order and releases any held table.
// The two writes are deliberately independent: the order stays completed
// even when the table release fails, and that failure comes back as a
// PartialWriteError alongside the completed order.
func (s *service) CompleteOrder(ctx context.Context, orderID string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CompleteOrder"),
		zap.String("order_id", orderID),
	)

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkCompleted(ctx, orderID); err != nil {
		log.Error("failed to complete order", zap.Error(err))
		return nil, err
	}
	o.Status = StatusCompleted

	if o.TableID != nil {
		if err := s.tableRepo.Release(ctx, *o.TableID); err != nil {
			log.Error("order completed but table not released",
				zap.String("table_id", *o.TableID),
				zap.Error(err),
			)
			return o, &PartialWriteError{Op: "table release", Err: err}
		}
		log.Info("table released", zap.String("table_id", *o.TableID))
	}

	log.Info("order completed")
	return o, nil
}

func (s *service) PendingOrders(ctx context.Context, search string) ([]*Order, error) {
	return s.repo.ListPending(ctx, search)
}

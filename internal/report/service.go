package report

import (
	"context"
	"time"
)

type Service interface {
	Sales(ctx context.Context, period Period) (*SalesReport, error)
	SalesCSV(ctx context.Context, period Period) ([]byte, error)
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Sales(ctx context.Context, period Period) (*SalesReport, error) {
	if period == "" {
		period = PeriodAll
	}
	if !ValidPeriod(period) {
		return nil, ErrInvalidPeriod
	}

	since := s.cutoff(period)
	orders, err := s.repo.CompletedOrders(ctx, since)
	if err != nil {
		return nil, err
	}

	rep := &SalesReport{Orders: orders, OrderCount: len(orders)}
	for _, o := range orders {
		rep.TotalRevenue += o.TotalPrice
	}
	if rep.OrderCount > 0 {
		rep.AverageOrderValue = rep.TotalRevenue / float64(rep.OrderCount)
	}

	return rep, nil
}

func (s *service) SalesCSV(ctx context.Context, period Period) ([]byte, error) {
	rep, err := s.Sales(ctx, period)
	if err != nil {
		return nil, err
	}
	return writeCSV(rep.Orders)
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *service) cutoff(period Period) *time.Time {
	now := s.now()

	var since time.Time
	switch period {
	case PeriodDay:
		since = now.AddDate(0, 0, -1)
	case PeriodWeek:
		since = now.AddDate(0, 0, -7)
	case PeriodMonth:
		since = now.AddDate(0, -1, 0)
	case PeriodYear:
		since = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return &since
}

package tables

import (
	"context"

	"dinepos-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// Bootstrap creates the default tables once, on the first load of the
	// ordering screen. It never runs again after any table exists, even if
	// the set is incomplete.
	Bootstrap(ctx context.Context) error
	List(ctx context.Context) ([]*Table, error)
	ListFree(ctx context.Context) ([]*Table, error)
	SetStatus(ctx context.Context, id string, status Status) (*Table, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Bootstrap(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Info("no tables found, creating defaults", zap.Int("count", len(DefaultTableIDs)))
	return s.repo.CreateDefaults(ctx, DefaultTableIDs)
}

func (s *service) List(ctx context.Context) ([]*Table, error) {
	return s.repo.List(ctx)
}

func (s *service) ListFree(ctx context.Context) ([]*Table, error) {
	return s.repo.ListFree(ctx)
}

func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Table, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

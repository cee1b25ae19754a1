package inventory

import (
	"context"
	"sort"
	"strings"
)

type Service interface {
	AddItem(ctx context.Context, input NewItemInput) (*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	// Menu returns all items, optionally narrowed to one category, plus the
	// category list derived from the full catalog.
	Menu(ctx context.Context, category string) ([]*Item, []string, error)
	EditItem(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	RemoveItem(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddItem(ctx context.Context, input NewItemInput) (*Item, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 || input.Stock < 0 {
		return nil, ErrInvalidItem
	}
	return s.repo.Create(ctx, input)
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *service) Menu(ctx context.Context, category string) ([]*Item, []string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	seen := map[string]bool{}
	categories := []string{"all"}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	sort.Strings(categories[1:])

	if category == "" || category == "all" {
		return items, categories, nil
	}

	filtered := make([]*Item, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, categories, nil
}

func (s *service) EditItem(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price < 0 || input.Stock < 0 {
		return nil, ErrInvalidItem
	}
	return s.repo.Update(ctx, id, input)
}

func (s *service) RemoveItem(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package restaurant

import (
	"context"

	"happymeals/internal/catalog"
)

// MenuReader is the slice of the catalog the browse view needs.
type MenuReader interface {
	Menu(ctx context.Context, restaurantID string) ([]catalog.MenuItem, error)
}

type Service struct {
	repo Repository
	menu MenuReader
}

func NewService(repo Repository, menu MenuReader) *Service {
	return &Service{repo: repo, menu: menu}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Restaurant, error) {
	return s.repo.List(ctx, filter)
}

// Details is the restaurant page payload: the restaurant plus its menu.
type Details struct {
	Restaurant Restaurant         `json:"restaurant"`
	Menu       []catalog.MenuItem `json:"menu"`
}

func (s *Service) Details(ctx context.Context, id string) (*Details, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.menu.Menu(ctx, id)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []catalog.MenuItem{}
	}

	return &Details{
		Restaurant: *res,
		Menu:       items,
	}, nil
}

package restaurant

import "context"

// Repository defines all database operations for restaurants
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Restaurant, error)
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	Create(ctx context.Context, r *Restaurant) error
}

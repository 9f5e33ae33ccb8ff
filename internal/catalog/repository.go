package catalog

import "context"

// Repository defines all database operations for menu items
type Repository interface {

	// ListAvailable returns the live catalog snapshot the suggestion engine
	// works on. restaurantID == "" means marketplace-wide.
	ListAvailable(ctx context.Context, restaurantID string) ([]MenuItem, error)

	// ListByRestaurant returns every item of a restaurant, available or not.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]MenuItem, error)

	GetByID(ctx context.Context, itemID string) (*MenuItem, error)

	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error

	SetAvailability(ctx context.Context, itemID string, available bool) error

	// Offer management (partner side)
	SetOffer(ctx context.Context, itemID string, offer Offer) error
	ClearOffer(ctx context.Context, itemID string) error
}

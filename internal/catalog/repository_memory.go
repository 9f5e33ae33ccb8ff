package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local development without Postgres.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*MenuItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*MenuItem),
	}
}

// Seed inserts items directly, assigning ids where missing.
func (r *InMemoryRepository) Seed(items ...MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range items {
		item := items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		r.items[item.ID] = &item
	}
}

func (r *InMemoryRepository) ListAvailable(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []MenuItem
	for _, item := range r.items {
		if !item.Available {
			continue
		}
		if restaurantID != "" && item.RestaurantID != restaurantID {
			continue
		}
		out = append(out, *item)
	}
	sortByPopularity(out)
	return out, nil
}

func (r *InMemoryRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []MenuItem
	for _, item := range r.items {
		if item.RestaurantID == restaurantID {
			out = append(out, *item)
		}
	}
	sortByPopularity(out)
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, itemID string) (*MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return ErrItemNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.Available = existing.Available
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *InMemoryRepository) SetAvailability(
	ctx context.Context,
	itemID string,
	available bool,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.Available = available
	return nil
}

func (r *InMemoryRepository) SetOffer(
	ctx context.Context,
	itemID string,
	offer Offer,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.DiscountPercent = offer.DiscountPercent
	item.FreeDelivery = offer.FreeDelivery
	item.OfferExpires = offer.ExpiresAt
	return nil
}

func (r *InMemoryRepository) ClearOffer(ctx context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return ErrItemNotFound
	}
	item.DiscountPercent = 0
	item.FreeDelivery = false
	item.OfferExpires = nil
	return nil
}

func sortByPopularity(items []MenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PopularityScore > items[j].PopularityScore
	})
}

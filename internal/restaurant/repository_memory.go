package restaurant

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants map[string]*Restaurant
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: make(map[string]*Restaurant),
	}
}

func (r *InMemoryRepository) List(
	ctx context.Context,
	filter ListFilter,
) ([]Restaurant, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Restaurant
	for _, res := range r.restaurants {
		if filter.Cuisine != "" && !strings.EqualFold(res.CuisineType, filter.Cuisine) {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(res.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *res)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, res *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()
	copied := *res
	r.restaurants[res.ID] = &copied
	return nil
}

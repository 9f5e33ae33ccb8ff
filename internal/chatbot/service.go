package chatbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"happymeals/internal/cache"
	"happymeals/internal/catalog"
	"happymeals/internal/logger"

	"go.uber.org/zap"
)

// CatalogReader supplies the live catalog snapshot the engine works on.
type CatalogReader interface {
	Available(ctx context.Context, restaurantID string) ([]catalog.MenuItem, error)
}

type Service struct {
	catalog    CatalogReader
	store      cache.Store
	comboCount int
}

// NewService wires the engine to its catalog supplier. store may be nil
// (caching disabled). comboCount caps the combos per request.
func NewService(reader CatalogReader, store cache.Store, comboCount int) *Service {
	if comboCount < 1 {
		comboCount = 4
	}
	return &Service{
		catalog:    reader,
		store:      store,
		comboCount: comboCount,
	}
}

// Suggest runs the full pipeline: parse budget and preferences, fetch the
// catalog snapshot, filter, assemble. It only returns an error when the
// catalog itself cannot be fetched; everything else degrades to a
// success-with-message response.
func (s *Service) Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error) {
	budget := ParseBudget(req.PriceRange)
	prefs := ParsePreferences(req.Preferences)

	key := cache.Key(
		req.RestaurantID,
		strings.ToLower(req.PriceRange),
		strings.ToLower(req.Preferences),
	)
	if cached := s.cached(ctx, key); cached != nil {
		return cached, nil
	}

	items, err := s.catalog.Available(ctx, req.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	logger.Debug("combo request",
		zap.String("restaurant", req.RestaurantID),
		zap.Int("budget_min", budget.Min),
		zap.Int("budget_max", budget.Max),
		zap.Strings("dietary", prefs.Dietary),
		zap.String("spice", prefs.SpiceLevel),
		zap.Int("catalog_size", len(items)),
	)

	if len(items) == 0 {
		return &SuggestResponse{
			Success: true,
			Combos:  []Combo{},
			Message: "No menu items available. Please try again later.",
		}, nil
	}

	filtered := FilterItems(items, prefs, budget)
	combos := BuildCombos(filtered, budget, prefs, s.comboCount)

	resp := &SuggestResponse{
		Success: true,
		Combos:  combos,
	}
	if len(combos) == 0 {
		resp.Combos = []Combo{}
		resp.Message = "Sorry, no combos found matching your preferences. Please adjust your preferences."
	} else {
		plural := ""
		if len(combos) > 1 {
			plural = "s"
		}
		resp.Message = fmt.Sprintf("Great! We found %d amazing combo%s for you!", len(combos), plural)
	}

	s.remember(ctx, key, resp)
	return resp, nil
}

func (s *Service) cached(ctx context.Context, key string) *SuggestResponse {
	if s.store == nil {
		return nil
	}
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("suggestion cache read failed", zap.Error(err))
		}
		return nil
	}
	var resp SuggestResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *Service) remember(ctx context.Context, key string, resp *SuggestResponse) {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		logger.Warn("suggestion cache write failed", zap.Error(err))
	}
}

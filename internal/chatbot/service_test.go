package chatbot

import (
	"context"
	"strings"
	"testing"
	"time"

	"happymeals/internal/cache"
	"happymeals/internal/catalog"
)

func seedCatalog(t *testing.T, restaurantID string) *catalog.Service {
	t.Helper()

	repo := catalog.NewInMemoryRepository()
	items := fixtureItems()
	for i := range items {
		items[i].RestaurantID = restaurantID
	}
	repo.Seed(items...)
	return catalog.NewService(repo)
}

func TestSuggestEndToEnd(t *testing.T) {
	service := NewService(seedCatalog(t, "r1"), nil, 4)

	resp, err := service.Suggest(context.Background(), SuggestRequest{
		PriceRange:  "400-600",
		Preferences: "non-veg, medium",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success {
		t.Fatal("expected success")
	}
	if len(resp.Combos) == 0 {
		t.Fatal("expected combos")
	}
	if !strings.Contains(resp.Message, "We found") {
		t.Errorf("unexpected message %q", resp.Message)
	}

	for _, combo := range resp.Combos {
		if combo.TotalPrice > 600 {
			t.Errorf("combo exceeds budget: %d", combo.TotalPrice)
		}
	}

	// The strict tier should anchor combos on the non-veg mains.
	mains := map[string]bool{}
	for _, combo := range resp.Combos {
		mains[combo.Items[0].Name] = true
	}
	if !mains["Hyderabadi Biryani"] && !mains["Tandoori Chicken"] {
		t.Errorf("expected a non-veg main among combos, got %v", mains)
	}
}

func TestSuggestEmptyCatalog(t *testing.T) {
	repo := catalog.NewInMemoryRepository()
	service := NewService(catalog.NewService(repo), nil, 4)

	resp, err := service.Suggest(context.Background(), SuggestRequest{
		PriceRange:  "400-600",
		Preferences: "anything",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success {
		t.Fatal("empty catalog is not a failure")
	}
	if len(resp.Combos) != 0 {
		t.Fatalf("expected no combos, got %d", len(resp.Combos))
	}
	if !strings.Contains(resp.Message, "No menu items available") {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSuggestNoMatches(t *testing.T) {
	repo := catalog.NewInMemoryRepository()
	repo.Seed(catalog.MenuItem{
		Name: "Golden Platter", Price: 5000, PopularityScore: 99, Available: true,
	})
	service := NewService(catalog.NewService(repo), nil, 4)

	resp, err := service.Suggest(context.Background(), SuggestRequest{
		PriceRange:  "200-400",
		Preferences: "anything cheap",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !resp.Success || len(resp.Combos) != 0 {
		t.Fatalf("expected success with no combos, got %+v", resp)
	}
	if !strings.Contains(resp.Message, "no combos found") {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSuggestRestaurantScoping(t *testing.T) {
	repo := catalog.NewInMemoryRepository()

	items := fixtureItems()
	for i := range items {
		items[i].RestaurantID = "r1"
	}
	repo.Seed(items...)
	repo.Seed(catalog.MenuItem{
		ID: "other", RestaurantID: "r2", Name: "Street Kebab",
		Price: 250, PopularityScore: 60, Available: true,
	})

	service := NewService(catalog.NewService(repo), nil, 4)

	resp, err := service.Suggest(context.Background(), SuggestRequest{
		PriceRange:   "200-400",
		Preferences:  "kebab",
		RestaurantID: "r2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, combo := range resp.Combos {
		for _, item := range combo.Items {
			if item.RestaurantID != "r2" {
				t.Errorf("item %s leaked from another restaurant", item.Name)
			}
		}
	}
	if len(resp.Combos) != 1 {
		t.Fatalf("expected 1 combo, got %d", len(resp.Combos))
	}
}

func TestSuggestServesFromCache(t *testing.T) {
	repo := catalog.NewInMemoryRepository()
	items := fixtureItems()
	repo.Seed(items...)

	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()

	service := NewService(catalog.NewService(repo), store, 4)
	req := SuggestRequest{PriceRange: "400-600", Preferences: "biryani"}

	first, err := service.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Combos) == 0 {
		t.Fatal("expected combos")
	}

	// Drain the catalog; a repeated identical request must be answered
	// from the cache.
	for _, item := range items {
		if err := repo.SetAvailability(context.Background(), item.ID, false); err != nil {
			t.Fatal(err)
		}
	}

	second, err := service.Suggest(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Combos) != len(first.Combos) {
		t.Errorf("expected cached response, got %d combos", len(second.Combos))
	}
}

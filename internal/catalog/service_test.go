package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestAddItemAppliesDefaults(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	item, err := service.AddItem(context.Background(), "r1", ItemInput{
		Name:  "Plain Naan",
		Price: 80,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID == "" {
		t.Error("expected generated id")
	}
	if item.Category != "other" {
		t.Errorf("expected default category, got %s", item.Category)
	}
	if item.SpiceLevel != "medium" {
		t.Errorf("expected default spice level, got %s", item.SpiceLevel)
	}
	if !item.Available {
		t.Error("new items should be available")
	}
}

func TestAddItemValidation(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	cases := []ItemInput{
		{Price: 100},           // name missing
		{Name: "X", Price: -1}, // negative price
		{Name: "X", Price: 10, Category: "street-food"},    // unknown category
		{Name: "X", Price: 10, Dietary: []string{"paleo"}}, // unknown dietary tag
		{Name: "X", Price: 10, Allergens: []string{"soy"}}, // unknown allergen
		{Name: "X", Price: 10, PopularityScore: 101},       // out of range
		{Name: "X", Price: 10, SpiceLevel: "volcanic"},     // unknown spice level
	}

	for i, input := range cases {
		_, err := service.AddItem(context.Background(), "r1", input)
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestUpdateItemKeepsIdentityAndAvailability(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	item, err := service.AddItem(ctx, "r1", ItemInput{Name: "Masala Chai", Price: 50})
	if err != nil {
		t.Fatal(err)
	}
	if err := service.SetAvailability(ctx, item.ID, false); err != nil {
		t.Fatal(err)
	}

	updated, err := service.UpdateItem(ctx, item.ID, ItemInput{Name: "Masala Chai", Price: 60})
	if err != nil {
		t.Fatal(err)
	}

	if updated.ID != item.ID || updated.RestaurantID != "r1" {
		t.Errorf("identity changed: %+v", updated)
	}
	if updated.Available {
		t.Error("update must not resurrect an unavailable item")
	}
	if updated.Price != 60 {
		t.Errorf("price not updated: %d", updated.Price)
	}
}

func TestListAvailableExcludesUnavailable(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)
	ctx := context.Background()

	a, _ := service.AddItem(ctx, "r1", ItemInput{Name: "A", Price: 100})
	if _, err := service.AddItem(ctx, "r1", ItemInput{Name: "B", Price: 100}); err != nil {
		t.Fatal(err)
	}
	if err := service.SetAvailability(ctx, a.ID, false); err != nil {
		t.Fatal(err)
	}

	items, err := service.Available(ctx, "r1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Name != "B" {
		t.Fatalf("got %+v", items)
	}
}

func TestSetAvailabilityUnknownItem(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	err := service.SetAvailability(context.Background(), "nope", true)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

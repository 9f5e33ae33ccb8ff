package chatbot

import (
	"strings"
	"testing"

	"happymeals/internal/catalog"
)

func TestBuildCombosFixture(t *testing.T) {
	budget := ParseBudget("400-600")
	prefs := ParsePreferences("non-veg, medium")

	filtered := FilterItems(fixtureItems(), prefs, budget)
	combos := BuildCombos(filtered, budget, prefs, 4)

	if len(combos) == 0 {
		t.Fatal("expected combos")
	}

	// Most popular eligible main first
	if combos[0].Items[0].Name != "Hyderabadi Biryani" {
		t.Errorf("expected Hyderabadi Biryani first, got %s", combos[0].Items[0].Name)
	}

	for _, combo := range combos {
		if combo.TotalPrice > budget.Max {
			t.Errorf("combo %v exceeds budget: %d", ids(combo.Items), combo.TotalPrice)
		}
		if combo.Items[0].IsSide {
			t.Errorf("combo does not anchor on a main dish: %v", ids(combo.Items))
		}
		if !strings.Contains(combo.Explanation, combo.Items[0].Name) {
			t.Errorf("explanation missing main dish name: %q", combo.Explanation)
		}
		if !strings.Contains(combo.Explanation, "medium") {
			t.Errorf("explanation missing spice level: %q", combo.Explanation)
		}
	}
}

func TestBuildCombosMainExclusivity(t *testing.T) {
	budget := PriceRange{Min: 200, Max: 600}
	filtered := fixtureItems()

	combos := BuildCombos(filtered, budget, Preferences{}, 10)

	seenMains := map[string]bool{}
	for _, combo := range combos {
		mainID := combo.Items[0].ID
		if seenMains[mainID] {
			t.Errorf("main dish %s anchors more than one combo", mainID)
		}
		seenMains[mainID] = true
	}

	// 3 mains in the fixture, so at most 3 combos no matter the count
	if len(combos) > 3 {
		t.Errorf("expected at most 3 combos, got %d", len(combos))
	}
}

func TestBuildCombosNoDuplicateSidesWithinCombo(t *testing.T) {
	budget := PriceRange{Min: 200, Max: 1000}
	combos := BuildCombos(fixtureItems(), budget, Preferences{}, 4)

	for _, combo := range combos {
		seen := map[string]bool{}
		for _, item := range combo.Items {
			if seen[item.ID] {
				t.Errorf("item %s repeats within a combo", item.ID)
			}
			seen[item.ID] = true
		}
	}
}

func TestBuildCombosSidesMayRepeatAcrossCombos(t *testing.T) {
	budget := PriceRange{Min: 200, Max: 600}
	combos := BuildCombos(fixtureItems(), budget, Preferences{}, 3)

	if len(combos) < 2 {
		t.Fatalf("expected multiple combos, got %d", len(combos))
	}

	naanCount := 0
	for _, combo := range combos {
		for _, item := range combo.Items {
			if item.ID == "s1" {
				naanCount++
			}
		}
	}
	if naanCount < 2 {
		t.Errorf("expected Plain Naan in multiple combos, appeared in %d", naanCount)
	}
}

func TestBuildCombosSingleItemComboValid(t *testing.T) {
	items := []catalog.MenuItem{
		{ID: "m1", Name: "Kacchi Special", Price: 450, PopularityScore: 90, Available: true},
		{ID: "s1", Name: "Borhani", Price: 200, IsSide: true, PopularityScore: 70, Available: true},
	}
	budget := PriceRange{Min: 300, Max: 500}

	combos := BuildCombos(items, budget, Preferences{}, 2)

	if len(combos) != 1 {
		t.Fatalf("expected 1 combo, got %d", len(combos))
	}
	if len(combos[0].Items) != 1 {
		t.Errorf("side should not fit: %v", ids(combos[0].Items))
	}
	if combos[0].TotalPrice != 450 {
		t.Errorf("got total %d", combos[0].TotalPrice)
	}
}

// A main priced above budget.Max can be selected (the strict tier window
// allows it), fails the final check, and still consumes its iteration.
func TestBuildCombosOverBudgetMainIsSkippedNotReplaced(t *testing.T) {
	items := []catalog.MenuItem{
		{ID: "m1", Name: "Royal Platter", Price: 700, PopularityScore: 95, Available: true},
		{ID: "m2", Name: "Beef Tehari", Price: 400, PopularityScore: 80, Available: true},
	}
	budget := PriceRange{Min: 300, Max: 600}

	combos := BuildCombos(items, budget, Preferences{}, 2)

	if len(combos) != 1 {
		t.Fatalf("expected 1 combo, got %d", len(combos))
	}
	if combos[0].Items[0].ID != "m2" {
		t.Errorf("expected the affordable main, got %s", combos[0].Items[0].ID)
	}

	// With comboCount 1 the over-budget main burns the only iteration.
	combos = BuildCombos(items, budget, Preferences{}, 1)
	if len(combos) != 0 {
		t.Errorf("expected no combos when the only iteration hits the over-budget main, got %d", len(combos))
	}
}

func TestBuildCombosEmptyInput(t *testing.T) {
	if combos := BuildCombos(nil, PriceRange{Min: 200, Max: 600}, Preferences{}, 4); len(combos) != 0 {
		t.Errorf("expected no combos, got %d", len(combos))
	}
}

func TestBuildCombosNoMains(t *testing.T) {
	items := []catalog.MenuItem{
		{ID: "s1", Name: "Plain Naan", Price: 80, IsSide: true, Available: true},
	}
	if combos := BuildCombos(items, PriceRange{Min: 200, Max: 600}, Preferences{}, 4); len(combos) != 0 {
		t.Errorf("a combo must anchor on a main dish, got %d combos", len(combos))
	}
}

func TestBuildCombosRespectsComboCount(t *testing.T) {
	var items []catalog.MenuItem
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		items = append(items, catalog.MenuItem{
			ID: name, Name: name, Price: 300, PopularityScore: 50, Available: true,
		})
	}
	combos := BuildCombos(items, PriceRange{Min: 200, Max: 600}, Preferences{}, 3)
	if len(combos) != 3 {
		t.Errorf("expected 3 combos, got %d", len(combos))
	}
}

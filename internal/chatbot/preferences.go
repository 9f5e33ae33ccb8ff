package chatbot

import "strings"

// The parsers below are plain substring rules over lowercased input,
// kept as data so precedence is visible and testable.

// dietaryRules are evaluated independently: every rule whose trigger
// appears adds its tag. Text mentioning both "veg" and "chicken" therefore
// yields both vegetarian and non-vegetarian, and "non veg" also trips the
// "veg" substring. That mirrors how users actually get matched downstream
// (the dietary filter passes on any overlapping tag), so it stays.
var dietaryRules = []struct {
	tag      string
	triggers []string
}{
	{"vegetarian", []string{"veg", "vegetarian", "no meat"}},
	{"non-vegetarian", []string{"non-veg", "non veg", "meat", "chicken", "fish", "beef"}},
	{"vegan", []string{"vegan"}},
	{"halal", []string{"halal"}},
}

// spiceRules are evaluated in order; the first rule with a matching trigger
// wins. "not spicy" resolves to spicy because the spicy rule runs first and
// matches the "spicy" substring.
var spiceRules = []struct {
	level    string
	triggers []string
}{
	{"spicy", []string{"spicy", "hot"}},
	{"mild", []string{"mild", "not spicy"}},
	{"medium", []string{"medium"}},
}

const defaultSpiceLevel = "medium"

// allergenRules map "no X" / "X free" phrasing onto the allergen vocabulary.
var allergenRules = []struct {
	allergen string
	triggers []string
}{
	{"nuts", []string{"no nuts", "nut free"}},
	{"dairy", []string{"no dairy", "dairy free"}},
	{"gluten", []string{"no gluten", "gluten free"}},
	{"shellfish", []string{"no shellfish"}},
	{"eggs", []string{"no eggs", "egg free"}},
}

// dishKeywords is the recognized dish-name vocabulary, including common
// local spellings (biriyani, shwarma, kacchi, tehari, polao, khichuri).
var dishKeywords = []string{
	"biryani",
	"biriyani",
	"pizza",
	"burger",
	"fries",
	"salad",
	"naan",
	"rice",
	"curry",
	"grilled",
	"fried",
	"pasta",
	"roti",
	"kebab",
	"wrap",
	"sandwich",
	"chicken",
	"beef",
	"mutton",
	"fish",
	"shrimp",
	"prawn",
	"shwarma",
	"shawarma",
	"kacchi",
	"tehari",
	"polao",
	"khichuri",
}

// ParsePreferences extracts dietary tags, spice level, allergen exclusions
// and dish keywords from free text. It never fails; empty input returns the
// defaults.
func ParsePreferences(text string) Preferences {
	prefs := Preferences{
		Dietary:       []string{},
		SpiceLevel:    defaultSpiceLevel,
		Keywords:      []string{},
		AllergensFree: []string{},
	}
	if text == "" {
		return prefs
	}

	lowered := strings.ToLower(text)
	prefs.RawText = lowered

	for _, rule := range dietaryRules {
		if containsAny(lowered, rule.triggers) {
			prefs.Dietary = append(prefs.Dietary, rule.tag)
		}
	}

	for _, rule := range spiceRules {
		if containsAny(lowered, rule.triggers) {
			prefs.SpiceLevel = rule.level
			break
		}
	}

	for _, rule := range allergenRules {
		if containsAny(lowered, rule.triggers) {
			prefs.AllergensFree = append(prefs.AllergensFree, rule.allergen)
		}
	}

	for _, keyword := range dishKeywords {
		if strings.Contains(lowered, keyword) {
			prefs.Keywords = append(prefs.Keywords, keyword)
		}
	}

	return prefs
}

func containsAny(text string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}

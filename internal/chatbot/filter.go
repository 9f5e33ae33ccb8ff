package chatbot

import (
	"math"
	"strings"

	"happymeals/internal/catalog"
	"happymeals/internal/logger"

	"go.uber.org/zap"
)

// Empirical window constants carried over from production tuning. The strict
// tier is deliberately loose on both ends relative to the literal budget.
const (
	relaxedLowerOffset = 50
	relaxedUpperOffset = 100

	strictLowerFactor = 0.2
	strictUpperFactor = 1.3

	fuzzyPrefixRatio = 0.7
)

// filterTier is one strategy in the fallback chain. enabled == nil means
// the tier always runs.
type filterTier struct {
	name    string
	enabled func(prefs Preferences) bool
	apply   func(items []catalog.MenuItem, prefs Preferences, budget PriceRange) []catalog.MenuItem
}

// filterTiers trade specificity for recall, in priority order: an exact
// keyword match beats the strict dietary/budget pass, which beats fuzzy
// text matching, which beats a budget-only sweep.
var filterTiers = []filterTier{
	{
		name:    "keyword",
		enabled: func(p Preferences) bool { return len(p.Keywords) > 0 },
		apply:   keywordTier,
	},
	{
		name:  "strict",
		apply: strictTier,
	},
	{
		name:    "fuzzy",
		enabled: func(p Preferences) bool { return p.RawText != "" },
		apply:   fuzzyTier,
	},
	{
		name:  "fallback",
		apply: fallbackTier,
	},
}

// FilterItems applies the tiers in order and returns the first non-empty
// result. If every tier comes up empty the (empty) result of the last tier
// is returned and the caller reports "no combos possible".
func FilterItems(items []catalog.MenuItem, prefs Preferences, budget PriceRange) []catalog.MenuItem {
	var result []catalog.MenuItem
	for _, tier := range filterTiers {
		if tier.enabled != nil && !tier.enabled(prefs) {
			continue
		}
		result = tier.apply(items, prefs, budget)
		if len(result) > 0 {
			logger.Debug("filter tier engaged",
				zap.String("tier", tier.name),
				zap.Int("matched", len(result)),
			)
			return result
		}
	}
	return result
}

// --------------------------------------------------
// Tier 1: keyword match, relaxed budget
// --------------------------------------------------
func keywordTier(items []catalog.MenuItem, prefs Preferences, budget PriceRange) []catalog.MenuItem {
	lo, hi := relaxedWindow(budget)

	var matched []catalog.MenuItem
	for _, item := range items {
		if item.Price < lo || item.Price > hi {
			continue
		}
		if !matchesAnyKeyword(item, prefs.Keywords) {
			continue
		}
		if !dietaryCompatible(item, prefs.Dietary) {
			continue
		}
		if hasExcludedAllergen(item, prefs.AllergensFree) {
			continue
		}
		if !item.Available {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// --------------------------------------------------
// Tier 2: strict dietary/budget
// --------------------------------------------------
func strictTier(items []catalog.MenuItem, prefs Preferences, budget PriceRange) []catalog.MenuItem {
	lo := float64(budget.Min) * strictLowerFactor
	hi := float64(budget.Max) * strictUpperFactor

	var matched []catalog.MenuItem
	for _, item := range items {
		if float64(item.Price) < lo || float64(item.Price) > hi {
			continue
		}
		if !dietaryCompatible(item, prefs.Dietary) {
			continue
		}
		if hasExcludedAllergen(item, prefs.AllergensFree) {
			continue
		}
		if !item.Available {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// --------------------------------------------------
// Tier 3: fuzzy text match, relaxed budget
// --------------------------------------------------
func fuzzyTier(items []catalog.MenuItem, prefs Preferences, budget PriceRange) []catalog.MenuItem {
	lo, hi := relaxedWindow(budget)
	normInput := normalizeText(prefs.RawText)

	var matched []catalog.MenuItem
	for _, item := range items {
		if item.Price < lo || item.Price > hi {
			continue
		}

		name := strings.ToLower(item.Name)
		desc := strings.ToLower(item.Description)

		nameMatch := fuzzyOverlap(normInput, normalizeText(name)) ||
			strings.Contains(name, normInput)
		descMatch := strings.Contains(desc, normInput)

		if !nameMatch && !descMatch {
			continue
		}
		if !dietaryCompatible(item, prefs.Dietary) {
			continue
		}
		if hasExcludedAllergen(item, prefs.AllergensFree) {
			continue
		}
		if !item.Available {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// --------------------------------------------------
// Tier 4: budget-only last resort
// --------------------------------------------------
func fallbackTier(items []catalog.MenuItem, _ Preferences, budget PriceRange) []catalog.MenuItem {
	lo, hi := relaxedWindow(budget)

	var matched []catalog.MenuItem
	for _, item := range items {
		if item.Price < lo || item.Price > hi {
			continue
		}
		if !item.Available {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

// --------------------------------------------------
// Predicates
// --------------------------------------------------

func relaxedWindow(budget PriceRange) (int, int) {
	lo := budget.Min - relaxedLowerOffset
	if lo < 0 {
		lo = 0
	}
	return lo, budget.Max + relaxedUpperOffset
}

func matchesAnyKeyword(item catalog.MenuItem, keywords []string) bool {
	name := strings.ToLower(item.Name)
	category := strings.ToLower(item.Category)
	desc := strings.ToLower(item.Description)

	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		if strings.Contains(name, kw) ||
			(category != "" && strings.Contains(category, kw)) ||
			(desc != "" && strings.Contains(desc, kw)) {
			return true
		}
	}
	return false
}

// dietaryCompatible passes items with no dietary tags (compatible with
// anything) and items sharing at least one requested tag.
func dietaryCompatible(item catalog.MenuItem, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	if len(item.Dietary) == 0 {
		return true
	}
	for _, want := range requested {
		for _, have := range item.Dietary {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

func hasExcludedAllergen(item catalog.MenuItem, excluded []string) bool {
	for _, allergen := range excluded {
		for _, have := range item.Allergens {
			if have == allergen {
				return true
			}
		}
	}
	return false
}

var textNormalizer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalizeText(s string) string {
	return textNormalizer.Replace(s)
}

// fuzzyOverlap reports whether the normalized user input contains the
// normalized target, or at least its leading ~70% as a prefix-overlap
// heuristic ("chicken biriyani" should still find "chicken biryani").
func fuzzyOverlap(search, target string) bool {
	if strings.Contains(search, target) {
		return true
	}
	// prefix length counts runes, not bytes, so Bengali names don't get
	// split mid-character
	runes := []rune(target)
	if len(runes) == 0 {
		return false
	}
	prefix := int(math.Ceil(float64(len(runes)) * fuzzyPrefixRatio))
	return strings.Contains(search, string(runes[:prefix]))
}

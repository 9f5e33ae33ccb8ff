package chatbot

import (
	"regexp"
	"strconv"
	"strings"
)

// Defaults used when no usable number appears in the budget text.
const (
	defaultBudgetMin = 200
	defaultBudgetMax = 1000

	// With a single number the user is stating a ceiling ("under 500"),
	// so the floor is backed off by this much.
	singleNumberSpread = 300
)

var (
	currencyMarkers = strings.NewReplacer("tk", "", "taka", "", "৳", "")
	digitRuns       = regexp.MustCompile(`\d+`)
)

// ParseBudget normalizes free-text price expressions like "500-800 tk" or
// "600 to 900" into a PriceRange. It never fails: unparseable input yields
// the default range, and the result always satisfies 0 <= Min <= Max.
func ParseBudget(text string) PriceRange {
	if text == "" {
		return PriceRange{Min: defaultBudgetMin, Max: defaultBudgetMax}
	}

	cleaned := strings.TrimSpace(currencyMarkers.Replace(strings.ToLower(text)))

	numbers := digitRuns.FindAllString(cleaned, -1)

	if len(numbers) >= 2 {
		a, _ := strconv.Atoi(numbers[0])
		b, _ := strconv.Atoi(numbers[1])
		if a > b {
			a, b = b, a
		}
		return PriceRange{Min: a, Max: b}
	}

	if len(numbers) == 1 {
		price, _ := strconv.Atoi(numbers[0])
		min := price - singleNumberSpread
		if min < 0 {
			min = 0
		}
		return PriceRange{Min: min, Max: price}
	}

	return PriceRange{Min: defaultBudgetMin, Max: defaultBudgetMax}
}

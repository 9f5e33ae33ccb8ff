package chatbot

import (
	"fmt"
	"sort"
	"strings"

	"happymeals/internal/catalog"
)

// BuildCombos greedily assembles up to comboCount combos from the filtered
// catalog. Each combo anchors on one main dish (most popular unused first),
// then packs sides by descending popularity while the running total stays
// within budget. A main dish is used by at most one combo per call; a side
// may repeat across combos but not within one.
func BuildCombos(
	filtered []catalog.MenuItem,
	budget PriceRange,
	prefs Preferences,
	comboCount int,
) []Combo {

	if len(filtered) == 0 {
		return nil
	}

	var mains, sides []catalog.MenuItem
	for _, item := range filtered {
		if item.IsSide {
			sides = append(sides, item)
		} else {
			mains = append(mains, item)
		}
	}

	// Ties keep their original relative order.
	sort.SliceStable(mains, func(i, j int) bool {
		return mains[i].PopularityScore > mains[j].PopularityScore
	})
	sort.SliceStable(sides, func(i, j int) bool {
		return sides[i].PopularityScore > sides[j].PopularityScore
	})

	if len(mains) == 0 {
		return nil
	}

	var combos []Combo
	usedMains := make(map[string]bool, len(mains))

	for i := 0; i < comboCount; i++ {
		var main *catalog.MenuItem
		for idx := range mains {
			if !usedMains[mains[idx].ID] {
				main = &mains[idx]
				usedMains[main.ID] = true
				break
			}
		}
		if main == nil {
			break // no more unique main dishes
		}

		items := []catalog.MenuItem{*main}
		inCombo := map[string]bool{main.ID: true}
		total := main.Price

		for _, side := range sides {
			if inCombo[side.ID] {
				continue
			}
			if total+side.Price <= budget.Max {
				items = append(items, side)
				inCombo[side.ID] = true
				total += side.Price
			}
		}

		// A main with no affordable sides still counts; a main alone over
		// budget does not (it can happen, the strict tier window exceeds
		// budget.Max).
		if total <= budget.Max {
			combos = append(combos, Combo{
				Items:       items,
				TotalPrice:  total,
				Explanation: explainCombo(items, prefs),
			})
		}
	}

	return combos
}

// explainCombo renders the human-readable line shown in the chat bubble.
func explainCombo(items []catalog.MenuItem, prefs Preferences) string {
	var main *catalog.MenuItem
	var sideNames []string
	for i := range items {
		if items[i].IsSide {
			sideNames = append(sideNames, items[i].Name)
		} else if main == nil {
			main = &items[i]
		}
	}

	mainName := "a delicious main dish"
	if main != nil {
		mainName = main.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "This combo is perfect for you! We picked %s", mainName)
	if prefs.SpiceLevel != "" {
		fmt.Fprintf(&b, " (%s)", prefs.SpiceLevel)
	}
	if len(sideNames) > 0 {
		fmt.Fprintf(&b, " along with %s", strings.Join(sideNames, ", "))
	}
	b.WriteString(". A complete meal within your budget!")

	return b.String()
}

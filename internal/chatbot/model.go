package chatbot

import "happymeals/internal/catalog"

// PriceRange is a normalized budget in whole currency units.
// Parsing always yields Min <= Max and Min >= 0.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Preferences is what the free-text parser extracts from a user message.
type Preferences struct {
	Dietary       []string `json:"dietary"`
	SpiceLevel    string   `json:"spiceLevel"`
	Keywords      []string `json:"keywords"`
	AllergensFree []string `json:"allergensFree"`

	// RawText keeps the lowercased input for the fuzzy filter tier.
	RawText string `json:"rawText"`
}

// Combo is one suggested meal: the first item is the main dish, the rest
// are sides. Built fresh per request, never persisted here.
type Combo struct {
	Items       []catalog.MenuItem `json:"items"`
	TotalPrice  int                `json:"totalPrice"`
	Explanation string             `json:"explanation"`
}

type SuggestRequest struct {
	PriceRange   string `json:"priceRange" binding:"required"`
	Preferences  string `json:"preferences" binding:"required"`
	RestaurantID string `json:"restaurantId"`
}

type SuggestResponse struct {
	Success bool    `json:"success"`
	Combos  []Combo `json:"combos"`
	Message string  `json:"message"`
}

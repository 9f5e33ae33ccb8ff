package catalog

import "time"

// MenuItem is the catalog record shared by the browse endpoints and the
// combo suggestion engine. Dietary may be empty, which means the item is
// compatible with any dietary preference.
type MenuItem struct {
	ID              string     `json:"_id"`
	RestaurantID    string     `json:"restaurant"`
	Name            string     `json:"name"`
	Price           int        `json:"price"`
	Description     string     `json:"description,omitempty"`
	Image           string     `json:"image,omitempty"`
	Category        string     `json:"category"`
	Dietary         []string   `json:"dietary"`
	SpiceLevel      string     `json:"spiceLevel"`
	Allergens       []string   `json:"allergens"`
	IsSide          bool       `json:"isSide"`
	PopularityScore int        `json:"popularityScore"`
	Available       bool       `json:"available"`
	PreparationTime string     `json:"preparationTime,omitempty"`
	DiscountPercent int        `json:"discountPercent"`
	FreeDelivery    bool       `json:"freeDelivery"`
	OfferExpires    *time.Time `json:"offerExpires,omitempty"`
	CreatedAt       time.Time  `json:"createdAt,omitempty"`
}

// Fixed vocabularies, mirrored by the chatbot preference endpoint.
var (
	DietaryOptions  = []string{"vegetarian", "non-vegetarian", "vegan", "halal"}
	SpiceLevels     = []string{"mild", "medium", "spicy"}
	AllergenOptions = []string{"nuts", "dairy", "gluten", "shellfish", "eggs"}
	Categories      = []string{"biryani", "grilled", "drink", "side", "salad", "dessert", "bread", "other"}
)

// Offer is the discount a partner attaches to a single menu item.
type Offer struct {
	DiscountPercent int        `json:"discountPercent"`
	FreeDelivery    bool       `json:"freeDelivery"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

// HasOffer reports whether the item carries a live discount.
func (m *MenuItem) HasOffer(now time.Time) bool {
	if m.DiscountPercent <= 0 {
		return false
	}
	if m.OfferExpires != nil && m.OfferExpires.Before(now) {
		return false
	}
	return true
}

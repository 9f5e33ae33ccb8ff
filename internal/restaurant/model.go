package restaurant

import "time"

type Restaurant struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	City             string    `json:"city"`
	CuisineType      string    `json:"cuisine"`
	ShortDescription string    `json:"description,omitempty"`
	Image            string    `json:"image,omitempty"`
	Rating           float64   `json:"rating"`
	DeliveryTime     string    `json:"deliveryTime,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// ListFilter narrows the public browse listing. Zero value lists everything.
type ListFilter struct {
	Cuisine string
	Search  string
}

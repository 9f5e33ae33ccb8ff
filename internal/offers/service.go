package offers

import (
	"context"
	"errors"
	"time"

	"happymeals/internal/catalog"
)

var ErrInvalidDiscount = errors.New("discount must be between 1 and 90 percent")

// CatalogWriter is the slice of the catalog offers need.
type CatalogWriter interface {
	GetByID(ctx context.Context, itemID string) (*catalog.MenuItem, error)
	SetOffer(ctx context.Context, itemID string, offer catalog.Offer) error
	ClearOffer(ctx context.Context, itemID string) error
}

type Service struct {
	repo CatalogWriter
}

func NewService(repo CatalogWriter) *Service {
	return &Service{repo: repo}
}

type OfferInput struct {
	DiscountPercent int        `json:"discountPercent"`
	FreeDelivery    bool       `json:"freeDelivery"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}

// SetOffer attaches a discount to a menu item and returns the updated item.
func (s *Service) SetOffer(
	ctx context.Context,
	itemID string,
	input OfferInput,
) (*catalog.MenuItem, error) {

	if input.DiscountPercent < 1 || input.DiscountPercent > 90 {
		return nil, ErrInvalidDiscount
	}

	offer := catalog.Offer{
		DiscountPercent: input.DiscountPercent,
		FreeDelivery:    input.FreeDelivery,
		ExpiresAt:       input.ExpiresAt,
	}

	if err := s.repo.SetOffer(ctx, itemID, offer); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, itemID)
}

func (s *Service) ClearOffer(ctx context.Context, itemID string) error {
	return s.repo.ClearOffer(ctx, itemID)
}

// ActiveOffers filters a menu down to items with a live discount.
func ActiveOffers(items []catalog.MenuItem, now time.Time) []catalog.MenuItem {
	var out []catalog.MenuItem
	for i := range items {
		if items[i].HasOffer(now) {
			out = append(out, items[i])
		}
	}
	return out
}

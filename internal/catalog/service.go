package catalog

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ItemInput is the partner-facing payload for creating or updating an item.
// Vocabulary constraints match the fixed sets in model.go.
type ItemInput struct {
	Name            string   `json:"name" validate:"required"`
	Price           int      `json:"price" validate:"gte=0"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Category        string   `json:"category" validate:"omitempty,oneof=biryani grilled drink side salad dessert bread other"`
	Dietary         []string `json:"dietary" validate:"dive,oneof=vegetarian non-vegetarian vegan halal"`
	SpiceLevel      string   `json:"spiceLevel" validate:"omitempty,oneof=mild medium spicy"`
	Allergens       []string `json:"allergens" validate:"dive,oneof=nuts dairy gluten shellfish eggs"`
	IsSide          bool     `json:"isSide"`
	PopularityScore int      `json:"popularityScore" validate:"gte=0,lte=100"`
	PreparationTime string   `json:"preparationTime"`
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// --------------------------------------------------
// Snapshot supply for the suggestion engine
// --------------------------------------------------
func (s *Service) Available(ctx context.Context, restaurantID string) ([]MenuItem, error) {
	return s.repo.ListAvailable(ctx, restaurantID)
}

// --------------------------------------------------
// Browse
// --------------------------------------------------
func (s *Service) Menu(ctx context.Context, restaurantID string) ([]MenuItem, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

// --------------------------------------------------
// Partner menu management
// --------------------------------------------------
func (s *Service) AddItem(
	ctx context.Context,
	restaurantID string,
	input ItemInput,
) (*MenuItem, error) {

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	item := fromInput(input)
	item.ID = uuid.New().String()
	item.RestaurantID = restaurantID
	item.Available = true

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateItem(
	ctx context.Context,
	itemID string,
	input ItemInput,
) (*MenuItem, error) {

	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item := fromInput(input)
	item.ID = existing.ID
	item.RestaurantID = existing.RestaurantID
	item.Available = existing.Available

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) SetAvailability(ctx context.Context, itemID string, available bool) error {
	return s.repo.SetAvailability(ctx, itemID, available)
}

func fromInput(input ItemInput) *MenuItem {
	category := input.Category
	if category == "" {
		category = "other"
	}
	spice := input.SpiceLevel
	if spice == "" {
		spice = "medium"
	}
	// non-nil so the array columns never see NULL
	dietary := input.Dietary
	if dietary == nil {
		dietary = []string{}
	}
	allergens := input.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	return &MenuItem{
		Name:            input.Name,
		Price:           input.Price,
		Description:     input.Description,
		Image:           input.Image,
		Category:        category,
		Dietary:         dietary,
		SpiceLevel:      spice,
		Allergens:       allergens,
		IsSide:          input.IsSide,
		PopularityScore: input.PopularityScore,
		PreparationTime: input.PreparationTime,
	}
}

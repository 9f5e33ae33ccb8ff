package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const itemColumns = `
	id,
	restaurant_id,
	name,
	price,
	COALESCE(description, ''),
	COALESCE(image, ''),
	category,
	dietary,
	spice_level,
	allergens,
	is_side,
	popularity_score,
	available,
	COALESCE(preparation_time, ''),
	discount_percent,
	free_delivery,
	offer_expires,
	created_at
`

func scanItem(row pgx.Row, item *MenuItem) error {
	return row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Name,
		&item.Price,
		&item.Description,
		&item.Image,
		&item.Category,
		&item.Dietary,
		&item.SpiceLevel,
		&item.Allergens,
		&item.IsSide,
		&item.PopularityScore,
		&item.Available,
		&item.PreparationTime,
		&item.DiscountPercent,
		&item.FreeDelivery,
		&item.OfferExpires,
		&item.CreatedAt,
	)
}

// --------------------------------------------------
// Catalog snapshot for the suggestion engine
// Only available items; the engine never sees dead stock
// --------------------------------------------------
func (r *PostgresRepository) ListAvailable(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	query := `
		SELECT ` + itemColumns + `
		FROM menu_items
		WHERE available = TRUE
	`
	args := []interface{}{}

	if restaurantID != "" {
		query += ` AND restaurant_id = $1`
		args = append(args, restaurantID)
	}

	query += ` ORDER BY popularity_score DESC, created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

// --------------------------------------------------
// Full restaurant menu (partner + browse views)
// --------------------------------------------------
func (r *PostgresRepository) ListByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY popularity_score DESC, created_at ASC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectItems(rows)
}

func collectItems(rows pgx.Rows) ([]MenuItem, error) {
	var items []MenuItem
	for rows.Next() {
		var item MenuItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	itemID string,
) (*MenuItem, error) {

	var item MenuItem
	err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1
	`, itemID), &item)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --------------------------------------------------
// Partner menu management
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, item *MenuItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id,
			restaurant_id,
			name,
			price,
			description,
			image,
			category,
			dietary,
			spice_level,
			allergens,
			is_side,
			popularity_score,
			available,
			preparation_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`,
		item.ID,
		item.RestaurantID,
		item.Name,
		item.Price,
		item.Description,
		item.Image,
		item.Category,
		item.Dietary,
		item.SpiceLevel,
		item.Allergens,
		item.IsSide,
		item.PopularityScore,
		item.Available,
		item.PreparationTime,
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) Update(ctx context.Context, item *MenuItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET
			name = $2,
			price = $3,
			description = $4,
			image = $5,
			category = $6,
			dietary = $7,
			spice_level = $8,
			allergens = $9,
			is_side = $10,
			popularity_score = $11,
			preparation_time = $12,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`,
		item.ID,
		item.Name,
		item.Price,
		item.Description,
		item.Image,
		item.Category,
		item.Dietary,
		item.SpiceLevel,
		item.Allergens,
		item.IsSide,
		item.PopularityScore,
		item.PreparationTime,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) SetAvailability(
	ctx context.Context,
	itemID string,
	available bool,
) error {

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET available = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, itemID, available)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// --------------------------------------------------
// Offers
// --------------------------------------------------
func (r *PostgresRepository) SetOffer(
	ctx context.Context,
	itemID string,
	offer Offer,
) error {

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET
			discount_percent = $2,
			free_delivery = $3,
			offer_expires = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, itemID, offer.DiscountPercent, offer.FreeDelivery, offer.ExpiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PostgresRepository) ClearOffer(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET
			discount_percent = 0,
			free_delivery = FALSE,
			offer_expires = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
	`, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

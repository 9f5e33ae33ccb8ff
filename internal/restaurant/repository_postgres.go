package restaurant

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("restaurant not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Public browse listing with optional filters
// --------------------------------------------------
func (r *PostgresRepository) List(
	ctx context.Context,
	filter ListFilter,
) ([]Restaurant, error) {

	query := `
		SELECT
			id,
			name,
			city,
			cuisine_type,
			COALESCE(short_description, ''),
			COALESCE(image, ''),
			rating,
			COALESCE(delivery_time, ''),
			created_at
		FROM restaurants
		WHERE TRUE
	`
	args := []interface{}{}

	if filter.Cuisine != "" {
		args = append(args, filter.Cuisine)
		query += ` AND LOWER(cuisine_type) = LOWER($1)`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		if len(args) == 1 {
			query += ` AND name ILIKE $1`
		} else {
			query += ` AND name ILIKE $2`
		}
	}

	query += ` ORDER BY rating DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.City,
			&res.CuisineType,
			&res.ShortDescription,
			&res.Image,
			&res.Rating,
			&res.DeliveryTime,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	var res Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			name,
			city,
			cuisine_type,
			COALESCE(short_description, ''),
			COALESCE(image, ''),
			rating,
			COALESCE(delivery_time, ''),
			created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(
		&res.ID,
		&res.Name,
		&res.City,
		&res.CuisineType,
		&res.ShortDescription,
		&res.Image,
		&res.Rating,
		&res.DeliveryTime,
		&res.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresRepository) Create(ctx context.Context, res *Restaurant) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	return r.db.QueryRow(ctx, `
		INSERT INTO restaurants (
			id,
			name,
			city,
			cuisine_type,
			short_description,
			image,
			rating,
			delivery_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`,
		res.ID,
		res.Name,
		res.City,
		res.CuisineType,
		res.ShortDescription,
		res.Image,
		res.Rating,
		res.DeliveryTime,
	).Scan(&res.CreatedAt)
}

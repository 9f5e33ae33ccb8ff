package db

import (
	"context"
	"time"

	"happymeals/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantTableSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(255) NOT NULL,
			cuisine_type VARCHAR(100) NOT NULL,
			short_description TEXT,
			image VARCHAR(500),
			rating NUMERIC(3,2) NOT NULL DEFAULT 0,
			delivery_time VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, restaurantTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			name VARCHAR(255) NOT NULL,
			price INT NOT NULL CHECK (price >= 0),
			description TEXT,
			image VARCHAR(500),
			category VARCHAR(50) NOT NULL DEFAULT 'other',
			dietary TEXT[] NOT NULL DEFAULT '{}',
			spice_level VARCHAR(20) NOT NULL DEFAULT 'medium',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			is_side BOOLEAN NOT NULL DEFAULT FALSE,
			popularity_score INT NOT NULL DEFAULT 0,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			preparation_time VARCHAR(50),
			discount_percent INT NOT NULL DEFAULT 0,
			free_delivery BOOLEAN NOT NULL DEFAULT FALSE,
			offer_expires TIMESTAMP NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant_available
		ON menu_items (restaurant_id, available)
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	logger.Info("schema initialized")
	return nil
}

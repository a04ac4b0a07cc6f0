package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mswatii/shoecard/internal/models"
	"github.com/mswatii/shoecard/internal/store"
)

// Database is the postgres-backed shoe store
type Database struct {
	pool *pgxpool.Pool
}

// NewDatabase creates a new database connection
func NewDatabase(ctx context.Context, connString string) (*Database, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Database{pool: pool}, nil
}

// Close closes the database connection
func (db *Database) Close() {
	db.pool.Close()
}

// CreateTables creates the shoes table if it doesn't exist
func (db *Database) CreateTables(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS shoes (
			slug VARCHAR(255) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			image_src TEXT NOT NULL DEFAULT '',
			price DECIMAL(15,2) NOT NULL,
			sale_price DECIMAL(15,2),
			release_date TIMESTAMPTZ NOT NULL,
			num_of_colors INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("error creating shoes table: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS shoes_release_date_idx ON shoes (release_date DESC)
	`)
	if err != nil {
		return fmt.Errorf("error creating shoes index: %w", err)
	}

	return nil
}

const shoeColumns = `slug, name, image_src, price, sale_price, release_date, num_of_colors, created_at, updated_at`

// List returns every shoe, newest release first
func (db *Database) List(ctx context.Context) ([]models.Shoe, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT `+shoeColumns+`
		FROM shoes
		ORDER BY release_date DESC, slug ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("error querying shoes: %w", err)
	}
	defer rows.Close()

	var shoes []models.Shoe
	for rows.Next() {
		shoe, err := scanShoe(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		shoes = append(shoes, shoe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return shoes, nil
}

// Get retrieves a shoe by its slug
func (db *Database) Get(ctx context.Context, slug string) (models.Shoe, error) {
	row := db.pool.QueryRow(ctx, `SELECT `+shoeColumns+` FROM shoes WHERE slug = $1`, slug)
	shoe, err := scanShoe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Shoe{}, store.ErrNotFound
	}
	if err != nil {
		return models.Shoe{}, fmt.Errorf("error loading shoe %s: %w", slug, err)
	}
	return shoe, nil
}

// Upsert inserts a shoe or updates the row with the same slug
func (db *Database) Upsert(ctx context.Context, shoe models.Shoe) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO shoes (
			slug, name, image_src, price, sale_price, release_date, num_of_colors
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug)
		DO UPDATE SET
			name = $2,
			image_src = $3,
			price = $4,
			sale_price = $5,
			release_date = $6,
			num_of_colors = $7,
			updated_at = NOW()
	`,
		shoe.Slug, shoe.Name, shoe.ImageSrc, shoe.Price, shoe.SalePrice, shoe.ReleaseDate, shoe.NumOfColors,
	)
	if err != nil {
		return fmt.Errorf("error upserting shoe %s: %w", shoe.Slug, err)
	}
	return nil
}

func scanShoe(row pgx.Row) (models.Shoe, error) {
	var shoe models.Shoe
	err := row.Scan(
		&shoe.Slug, &shoe.Name, &shoe.ImageSrc, &shoe.Price, &shoe.SalePrice,
		&shoe.ReleaseDate, &shoe.NumOfColors, &shoe.CreatedAt, &shoe.UpdatedAt,
	)
	return shoe, err
}

var _ store.Store = (*Database)(nil)

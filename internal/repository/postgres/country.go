package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository"
)

type countryRepository struct {
	db *sqlx.DB
}

func NewCountryRepository(db *sqlx.DB) repository.CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	query := `INSERT INTO countries (id, name, created_at) VALUES ($1, $2, $3)`
	country.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query, country.ID, country.Name, country.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create country: %w", err)
	}
	return nil
}

func (r *countryRepository) Get(ctx context.Context, id uuid.UUID) (*model.Country, error) {
	query := `SELECT * FROM countries WHERE id = $1`
	var country model.Country
	err := r.db.GetContext(ctx, &country, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) List(ctx context.Context) ([]*model.Country, error) {
	query := `SELECT * FROM countries ORDER BY created_at`
	countries := []*model.Country{}
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM countries WHERE name = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check country name: %w", err)
	}
	return exists, nil
}

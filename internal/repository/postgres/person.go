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

type personRepository struct {
	db *sqlx.DB
}

func NewPersonRepository(db *sqlx.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	query := `
		INSERT INTO persons (id, name, gender, phone, date_of_birth, address, country_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	person.CreatedAt = time.Now()
	person.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.Name,
		person.Gender,
		person.Phone,
		person.DateOfBirth,
		person.Address,
		person.CountryID,
		person.Email,
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}

func (r *personRepository) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	query := `SELECT * FROM persons WHERE id = $1`
	var person model.Person
	err := r.db.GetContext(ctx, &person, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return &person, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) (bool, error) {
	query := `
		UPDATE persons
		SET name = $1, gender = $2, phone = $3, date_of_birth = $4, address = $5, country_id = $6, email = $7, updated_at = $8
		WHERE id = $9
	`
	person.UpdatedAt = time.Now()

	res, err := r.db.ExecContext(ctx, query,
		person.Name,
		person.Gender,
		person.Phone,
		person.DateOfBirth,
		person.Address,
		person.CountryID,
		person.Email,
		person.UpdatedAt,
		person.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM persons WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *personRepository) List(ctx context.Context) ([]*model.Person, error) {
	query := `SELECT * FROM persons ORDER BY created_at`
	persons := []*model.Person{}
	if err := r.db.SelectContext(ctx, &persons, query); err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	return persons, nil
}

func (r *personRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM persons WHERE name = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		return false, fmt.Errorf("failed to check person name: %w", err)
	}
	return exists, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
)

// All repository interfaces in one file. Get returns (nil, nil) when no
// record matches; a missing id is not an error on the read path.
type (
	// PersonRepository handles person storage
	PersonRepository interface {
		Create(ctx context.Context, person *model.Person) error
		Get(ctx context.Context, id uuid.UUID) (*model.Person, error)
		Update(ctx context.Context, person *model.Person) (bool, error)
		Delete(ctx context.Context, id uuid.UUID) (bool, error)
		List(ctx context.Context) ([]*model.Person, error)
		ExistsByName(ctx context.Context, name string) (bool, error)
	}

	// CountryRepository handles country storage
	CountryRepository interface {
		Create(ctx context.Context, country *model.Country) error
		Get(ctx context.Context, id uuid.UUID) (*model.Country, error)
		List(ctx context.Context) ([]*model.Country, error)
		ExistsByName(ctx context.Context, name string) (bool, error)
	}
)

package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository"
)

type countryRepository struct {
	mu        sync.RWMutex
	countries []*model.Country
}

func NewCountryRepository() repository.CountryRepository {
	return &countryRepository{}
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *country
	r.countries = append(r.countries, &stored)
	return nil
}

func (r *countryRepository) Get(ctx context.Context, id uuid.UUID) (*model.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.countries {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *countryRepository) List(ctx context.Context) ([]*model.Country, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Country, len(r.countries))
	for i, c := range r.countries {
		found := *c
		out[i] = &found
	}
	return out, nil
}

func (r *countryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.countries {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

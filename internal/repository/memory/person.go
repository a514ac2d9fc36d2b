package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository"
)

// personRepository keeps persons in a slice so List preserves
// insertion order.
type personRepository struct {
	mu      sync.RWMutex
	persons []*model.Person
}

func NewPersonRepository() repository.PersonRepository {
	return &personRepository{}
}

func (r *personRepository) Create(ctx context.Context, person *model.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *person
	r.persons = append(r.persons, &stored)
	return nil
}

func (r *personRepository) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.persons {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *personRepository) Update(ctx context.Context, person *model.Person) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.persons {
		if p.ID == person.ID {
			stored := *person
			stored.CreatedAt = p.CreatedAt
			r.persons[i] = &stored
			return true, nil
		}
	}
	return false, nil
}

func (r *personRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.persons {
		if p.ID == id {
			r.persons = append(r.persons[:i], r.persons[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *personRepository) List(ctx context.Context) ([]*model.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Person, len(r.persons))
	for i, p := range r.persons {
		found := *p
		out[i] = &found
	}
	return out, nil
}

func (r *personRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.persons {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

package person

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository"
	apperrors "github.com/jwalitptl/contacts-api/pkg/errors"
	"github.com/jwalitptl/contacts-api/pkg/validator"
)

type PersonService interface {
	AddPerson(ctx context.Context, req *model.CreatePersonRequest) (*model.PersonResponse, error)
	GetPerson(ctx context.Context, id uuid.UUID) (*model.PersonResponse, error)
	ListPersons(ctx context.Context) ([]*model.PersonResponse, error)
	ListPersonsFiltered(ctx context.Context, searchBy, searchString string) ([]*model.PersonResponse, error)
	UpdatePerson(ctx context.Context, id uuid.UUID, req *model.UpdatePersonRequest) (*model.PersonResponse, error)
	DeletePerson(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo      repository.PersonRepository
	countries repository.CountryRepository
	validate  *validator.Validator
}

func NewService(repo repository.PersonRepository, countries repository.CountryRepository) *Service {
	return &Service{
		repo:      repo,
		countries: countries,
		validate:  validator.New(),
	}
}

func (s *Service) AddPerson(ctx context.Context, req *model.CreatePersonRequest) (*model.PersonResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidation("request is required")
	}
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check person name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicate("person", req.Name)
	}

	person := req.ToPerson()
	person.ID = uuid.New()

	if err := s.repo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return s.toResponse(ctx, person)
}

// GetPerson returns nil for a zero or unknown id; a miss is not an
// error on the read path.
func (s *Service) GetPerson(ctx context.Context, id uuid.UUID) (*model.PersonResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	person, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if person == nil {
		return nil, nil
	}
	return s.toResponse(ctx, person)
}

func (s *Service) ListPersons(ctx context.Context) ([]*model.PersonResponse, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	out := make([]*model.PersonResponse, len(persons))
	for i, p := range persons {
		resp, err := s.toResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

func (s *Service) ListPersonsFiltered(ctx context.Context, searchBy, searchString string) ([]*model.PersonResponse, error) {
	persons, err := s.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	return FilterPersons(persons, searchBy, searchString), nil
}

// UpdatePerson overwrites every mutable field of an existing record.
// Name uniqueness is only enforced on creation, so an update may make
// two persons share a name.
func (s *Service) UpdatePerson(ctx context.Context, id uuid.UUID, req *model.UpdatePersonRequest) (*model.PersonResponse, error) {
	if id == uuid.Nil {
		return nil, apperrors.NewValidation("id is required")
	}
	if req == nil {
		return nil, apperrors.NewValidation("request is required")
	}
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	person := &model.Person{
		ID:          id,
		Name:        req.Name,
		Gender:      req.Gender,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		CountryID:   req.CountryID,
		Email:       req.Email,
	}

	found, err := s.repo.Update(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	if !found {
		return nil, apperrors.NewNotFound("person")
	}

	return s.toResponse(ctx, person)
}

// DeletePerson reports whether a record was removed; deleting an
// unknown id is not an error.
func (s *Service) DeletePerson(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, apperrors.NewValidation("id is required")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete person: %w", err)
	}
	return deleted, nil
}

func (s *Service) toResponse(ctx context.Context, p *model.Person) (*model.PersonResponse, error) {
	return NewPersonResponse(ctx, p, s.countryLookup(), time.Now())
}

// countryLookup adapts the country repository into the read-time
// lookup capability the view mapper takes explicitly.
func (s *Service) countryLookup() CountryLookup {
	return func(ctx context.Context, id uuid.UUID) (*string, error) {
		country, err := s.countries.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve country: %w", err)
		}
		if country == nil {
			return nil, nil
		}
		return &country.Name, nil
	}
}

package country

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
	"github.com/jwalitptl/contacts-api/internal/repository"
	apperrors "github.com/jwalitptl/contacts-api/pkg/errors"
	"github.com/jwalitptl/contacts-api/pkg/validator"
)

type CountryService interface {
	AddCountry(ctx context.Context, req *model.CreateCountryRequest) (*model.CountryResponse, error)
	GetCountry(ctx context.Context, id uuid.UUID) (*model.CountryResponse, error)
	ListCountries(ctx context.Context) ([]*model.CountryResponse, error)
}

type Service struct {
	repo     repository.CountryRepository
	validate *validator.Validator
}

func NewService(repo repository.CountryRepository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *Service) AddCountry(ctx context.Context, req *model.CreateCountryRequest) (*model.CountryResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidation("request is required")
	}
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.NewValidation(err.Error())
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check country name: %w", err)
	}
	if exists {
		return nil, apperrors.NewDuplicate("country", req.Name)
	}

	country := &model.Country{
		ID:   uuid.New(),
		Name: req.Name,
	}
	if err := s.repo.Create(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}

	return country.ToResponse(), nil
}

// GetCountry returns nil for a zero or unknown id; a miss is not an
// error on the read path.
func (s *Service) GetCountry(ctx context.Context, id uuid.UUID) (*model.CountryResponse, error) {
	if id == uuid.Nil {
		return nil, nil
	}

	country, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	if country == nil {
		return nil, nil
	}
	return country.ToResponse(), nil
}

func (s *Service) ListCountries(ctx context.Context) ([]*model.CountryResponse, error) {
	countries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}

	out := make([]*model.CountryResponse, len(countries))
	for i, c := range countries {
		out[i] = c.ToResponse()
	}
	return out, nil
}

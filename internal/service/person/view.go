package person

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/contacts-api/internal/model"
)

// CountryLookup resolves a country id to its display name at read
// time. It returns nil for an unknown id, so dangling references map
// to an absent country name rather than an error.
type CountryLookup func(ctx context.Context, id uuid.UUID) (*string, error)

// NewPersonResponse shapes a stored person into its read projection.
// Age is recomputed from now on every call and the country name is
// resolved through the supplied lookup; neither is ever persisted.
func NewPersonResponse(ctx context.Context, p *model.Person, lookup CountryLookup, now time.Time) (*model.PersonResponse, error) {
	resp := &model.PersonResponse{
		ID:          p.ID,
		Name:        p.Name,
		Gender:      p.Gender,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
		Age:         p.Age(now),
		Address:     p.Address,
		CountryID:   p.CountryID,
		Email:       p.Email,
	}

	if p.CountryID != nil && lookup != nil {
		name, err := lookup(ctx, *p.CountryID)
		if err != nil {
			return nil, err
		}
		resp.CountryName = name
	}

	return resp, nil
}

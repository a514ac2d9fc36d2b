package model

import (
	"time"

	"github.com/google/uuid"
)

// Country is a reference record: created once, never updated or
// deleted. Name is unique (case-sensitive exact match).
type Country struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CountryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateCountryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (c *Country) ToResponse() *CountryResponse {
	return &CountryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Person is the stored contact record. Gender, phone, date of birth,
// address and country reference are all optional; CountryID is not
// checked for existence at write time, so dangling references are
// allowed and resolve to a nil country name on read.
type Person struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Gender      string     `db:"gender" json:"gender,omitempty"`
	Phone       string     `db:"phone" json:"phone,omitempty"`
	DateOfBirth *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Address     string     `db:"address" json:"address,omitempty"`
	CountryID   *uuid.UUID `db:"country_id" json:"country_id,omitempty"`
	Email       string     `db:"email" json:"email"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// PersonResponse is the read-shaped projection of a Person. Age and
// CountryName are derived on every read and never persisted.
type PersonResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Gender      string     `json:"gender,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Age         *float64   `json:"age,omitempty"`
	Address     string     `json:"address,omitempty"`
	CountryID   *uuid.UUID `json:"country_id,omitempty"`
	CountryName *string    `json:"country_name,omitempty"`
	Email       string     `json:"email"`
}

type CreatePersonRequest struct {
	Name        string     `json:"name" validate:"required"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address"`
	CountryID   *uuid.UUID `json:"country_id"`
	Email       string     `json:"email" validate:"required,email"`
}

type UpdatePersonRequest struct {
	Name        string     `json:"name" validate:"required"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address"`
	CountryID   *uuid.UUID `json:"country_id"`
	Email       string     `json:"email" validate:"required,email"`
}

// ToPerson builds an unsaved Person from the request; the id is
// assigned by the service.
func (r *CreatePersonRequest) ToPerson() *Person {
	return &Person{
		Name:        r.Name,
		Gender:      r.Gender,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		CountryID:   r.CountryID,
		Email:       r.Email,
	}
}

// Age in whole years, rounded over an average year length.
func (p *Person) Age(now time.Time) *float64 {
	if p.DateOfBirth == nil {
		return nil
	}
	age := math.Round(now.Sub(*p.DateOfBirth).Hours() / 24 / 365.25)
	return &age
}

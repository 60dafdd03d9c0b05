package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// BusinessConfig holds the editable business metadata shown across the
// website and used for SEO structured data. It maps one-to-one onto the
// business.json content file.
type BusinessConfig struct {
	Name    string          `json:"name" validate:"required"`
	Title   string          `json:"title" validate:"required"`
	Tagline string          `json:"tagline"`
	URL     string          `json:"url" validate:"omitempty,url"`
	Contact BusinessContact `json:"contact"`
	Hours   BusinessHours   `json:"hours"`
	Stats   BusinessStats   `json:"stats"`

	Certifications []string            `json:"certifications"`
	ServiceArea    BusinessServiceArea `json:"serviceArea"`
	Social         BusinessSocial      `json:"social"`
	Keywords       []string            `json:"keywords"`
}

type BusinessContact struct {
	Phone    string `json:"phone" validate:"required"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address"`
}

type BusinessHours struct {
	Weekdays string `json:"weekdays"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
}

type BusinessStats struct {
	Experience        int     `json:"experience"`
	JobsCompleted     int     `json:"jobsCompleted"`
	GoogleReviewScore float64 `json:"googleReviewScore" validate:"min=0,max=5"`
	GoogleReviewCount int     `json:"googleReviewCount"`
}

type BusinessServiceArea struct {
	Radius      string      `json:"radius"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BusinessSocial struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

type BusinessRepository interface {
	Get(ctx context.Context) (*BusinessConfig, error)
	Update(ctx context.Context, cfg *BusinessConfig) error
}

package domain

import "context"

// City is a service area with its own landing page content.
type City struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Province     string   `json:"province"`
	PostalCodes  []string `json:"postalCodes"`
	ResponseTime string   `json:"responseTime"`
	LocalContent string   `json:"localContent"`
	NearbyAreas  []string `json:"nearbyAreas"`
}

type CityRepository interface {
	List(ctx context.Context) ([]City, error)
	GetBySlug(ctx context.Context, slug string) (*City, error)
}

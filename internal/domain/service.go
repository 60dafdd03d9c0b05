package domain

import "context"

// Service is one plumbing service offered by the business. Descriptions are
// stored as a markdown subset and rendered to HTML by the content usecase.
// The *En fields are optional English variants; Spanish is the default.
type Service struct {
	Slug               string   `json:"slug"`
	Name               string   `json:"name"`
	NameEn             string   `json:"nameEn,omitempty"`
	ShortDescription   string   `json:"shortDescription"`
	ShortDescriptionEn string   `json:"shortDescriptionEn,omitempty"`
	Description        string   `json:"description"`
	PriceRange         string   `json:"priceRange"`
	Duration           string   `json:"duration"`
	Icon               string   `json:"icon"`
	Image              string   `json:"image"`
	Gallery            []string `json:"gallery,omitempty"`
	IsEmergency        bool     `json:"isEmergency,omitempty"`
	FAQs               []FAQ    `json:"faqs"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ServiceRepository interface {
	List(ctx context.Context) ([]Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
}

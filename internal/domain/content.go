package domain

import "context"

// Supported content locales. Spanish is the site default; English fields
// fall back to Spanish when a translation is missing.
const (
	LocaleES = "es"
	LocaleEN = "en"
)

// ServiceSummary is the card-level projection of a Service, localized.
type ServiceSummary struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	PriceRange       string `json:"priceRange"`
	Duration         string `json:"duration"`
	Icon             string `json:"icon"`
	Image            string `json:"image"`
	IsEmergency      bool   `json:"isEmergency,omitempty"`
}

// ServiceDetail is the full service page payload with the markdown
// description rendered to HTML.
type ServiceDetail struct {
	ServiceSummary
	DescriptionHTML string   `json:"descriptionHtml"`
	Gallery         []string `json:"gallery,omitempty"`
	FAQs            []FAQ    `json:"faqs"`
}

// CityDetail is the city landing page payload with rendered local content.
type CityDetail struct {
	Slug             string   `json:"slug"`
	Name             string   `json:"name"`
	Province         string   `json:"province"`
	PostalCodes      []string `json:"postalCodes"`
	ResponseTime     string   `json:"responseTime"`
	LocalContentHTML string   `json:"localContentHtml"`
	NearbyAreas      []string `json:"nearbyAreas"`
}

// TestimonialView is the public projection of a Testimonial, localized.
type TestimonialView struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Service  string `json:"service"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Date     string `json:"date"`
}

// ContentUsecase serves the public read-only content API.
type ContentUsecase interface {
	ListServices(ctx context.Context, lang string) ([]ServiceSummary, error)
	GetService(ctx context.Context, slug, lang string) (*ServiceDetail, error)
	ListCities(ctx context.Context) ([]City, error)
	GetCity(ctx context.Context, slug string) (*CityDetail, error)
	ListTestimonials(ctx context.Context, lang string, limit int) ([]TestimonialView, error)
	GetBusiness(ctx context.Context) (*BusinessConfig, error)
}

// AdminUsecase covers the admin CRUD surface over business metadata and
// testimonials. Access control sits in front of these routes and is not
// part of this service.
type AdminUsecase interface {
	GetBusiness(ctx context.Context) (*BusinessConfig, error)
	UpdateBusiness(ctx context.Context, cfg *BusinessConfig) error
	ListTestimonials(ctx context.Context) ([]Testimonial, error)
	CreateTestimonial(ctx context.Context, t *Testimonial) (*Testimonial, error)
	UpdateTestimonial(ctx context.Context, t *Testimonial) error
	DeleteTestimonial(ctx context.Context, id string) error
}

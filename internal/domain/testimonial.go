package domain

import "context"

// Testimonial is one customer review. IDs are assigned on creation; legacy
// entries without one get an ID when the store loads them.
type Testimonial struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Service   string `json:"service" validate:"required"`
	ServiceEn string `json:"serviceEn,omitempty"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Text      string `json:"text" validate:"required"`
	TextEn    string `json:"textEn,omitempty"`
	// Month of the job, format YYYY-MM
	Date string `json:"date" validate:"required,datetime=2006-01"`
}

type TestimonialRepository interface {
	List(ctx context.Context) ([]Testimonial, error)
	GetByID(ctx context.Context, id string) (*Testimonial, error)
	Create(ctx context.Context, t *Testimonial) error
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
}

package flatfile

import (
	"context"

	"go-fontaneria-backend/internal/domain"

	"github.com/google/uuid"
)

type testimonialRepo struct {
	store *Store
}

func NewTestimonialRepository(store *Store) domain.TestimonialRepository {
	return &testimonialRepo{store: store}
}

func (r *testimonialRepo) List(_ context.Context) ([]domain.Testimonial, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Testimonial, len(r.store.testimonials))
	copy(out, r.store.testimonials)
	return out, nil
}

func (r *testimonialRepo) GetByID(_ context.Context, id string) (*domain.Testimonial, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.testimonials {
		if r.store.testimonials[i].ID == id {
			t := r.store.testimonials[i]
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *testimonialRepo) Create(_ context.Context, t *domain.Testimonial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	// Newest first, matching how the content file has always been ordered.
	r.store.testimonials = append([]domain.Testimonial{*t}, r.store.testimonials...)
	return r.store.persist(testimonialsFile, &r.store.testimonials)
}

func (r *testimonialRepo) Update(_ context.Context, t *domain.Testimonial) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.testimonials {
		if r.store.testimonials[i].ID == t.ID {
			r.store.testimonials[i] = *t
			return r.store.persist(testimonialsFile, &r.store.testimonials)
		}
	}
	return domain.ErrNotFound
}

func (r *testimonialRepo) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.testimonials {
		if r.store.testimonials[i].ID == id {
			r.store.testimonials = append(r.store.testimonials[:i], r.store.testimonials[i+1:]...)
			return r.store.persist(testimonialsFile, &r.store.testimonials)
		}
	}
	return domain.ErrNotFound
}

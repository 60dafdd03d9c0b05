package flatfile

import (
	"context"

	"go-fontaneria-backend/internal/domain"
)

// Services and cities are read-only through the API: they are edited by
// redeploying content files, not through the admin UI.

type serviceRepo struct {
	store *Store
}

func NewServiceRepository(store *Store) domain.ServiceRepository {
	return &serviceRepo{store: store}
}

func (r *serviceRepo) List(_ context.Context) ([]domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Service, len(r.store.services))
	copy(out, r.store.services)
	return out, nil
}

func (r *serviceRepo) GetBySlug(_ context.Context, slug string) (*domain.Service, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.services {
		if r.store.services[i].Slug == slug {
			svc := r.store.services[i]
			return &svc, nil
		}
	}
	return nil, domain.ErrNotFound
}

type cityRepo struct {
	store *Store
}

func NewCityRepository(store *Store) domain.CityRepository {
	return &cityRepo{store: store}
}

func (r *cityRepo) List(_ context.Context) ([]domain.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.City, len(r.store.cities))
	copy(out, r.store.cities)
	return out, nil
}

func (r *cityRepo) GetBySlug(_ context.Context, slug string) (*domain.City, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.cities {
		if r.store.cities[i].Slug == slug {
			city := r.store.cities[i]
			return &city, nil
		}
	}
	return nil, domain.ErrNotFound
}

package flatfile

import (
	"context"

	"go-fontaneria-backend/internal/domain"
)

type businessRepo struct {
	store *Store
}

func NewBusinessRepository(store *Store) domain.BusinessRepository {
	return &businessRepo{store: store}
}

func (r *businessRepo) Get(_ context.Context) (*domain.BusinessConfig, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cfg := r.store.business
	return &cfg, nil
}

func (r *businessRepo) Update(_ context.Context, cfg *domain.BusinessConfig) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.business = *cfg
	return r.store.persist(businessFile, &r.store.business)
}

package usecase

import (
	"context"
	"fmt"

	"go-fontaneria-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type adminUsecase struct {
	businessRepo    domain.BusinessRepository
	testimonialRepo domain.TestimonialRepository
	validate        *validator.Validate
}

func NewAdminUsecase(businessRepo domain.BusinessRepository, testimonialRepo domain.TestimonialRepository, validate *validator.Validate) domain.AdminUsecase {
	return &adminUsecase{
		businessRepo:    businessRepo,
		testimonialRepo: testimonialRepo,
		validate:        validate,
	}
}

func (uc *adminUsecase) GetBusiness(ctx context.Context) (*domain.BusinessConfig, error) {
	return uc.businessRepo.Get(ctx)
}

func (uc *adminUsecase) UpdateBusiness(ctx context.Context, cfg *domain.BusinessConfig) error {
	if err := uc.validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid business config: %w", err)
	}
	return uc.businessRepo.Update(ctx, cfg)
}

func (uc *adminUsecase) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return uc.testimonialRepo.List(ctx)
}

func (uc *adminUsecase) CreateTestimonial(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	t.ID = "" // assigned by the repository
	if err := uc.validate.Struct(t); err != nil {
		return nil, fmt.Errorf("invalid testimonial: %w", err)
	}
	if err := uc.testimonialRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *adminUsecase) UpdateTestimonial(ctx context.Context, t *domain.Testimonial) error {
	if t.ID == "" {
		return domain.ErrNotFound
	}
	if err := uc.validate.Struct(t); err != nil {
		return fmt.Errorf("invalid testimonial: %w", err)
	}
	return uc.testimonialRepo.Update(ctx, t)
}

func (uc *adminUsecase) DeleteTestimonial(ctx context.Context, id string) error {
	return uc.testimonialRepo.Delete(ctx, id)
}

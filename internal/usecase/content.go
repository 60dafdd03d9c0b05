package usecase

import (
	"context"

	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/markdown"
)

type contentUsecase struct {
	serviceRepo     domain.ServiceRepository
	cityRepo        domain.CityRepository
	testimonialRepo domain.TestimonialRepository
	businessRepo    domain.BusinessRepository
}

func NewContentUsecase(serviceRepo domain.ServiceRepository, cityRepo domain.CityRepository, testimonialRepo domain.TestimonialRepository, businessRepo domain.BusinessRepository) domain.ContentUsecase {
	return &contentUsecase{
		serviceRepo:     serviceRepo,
		cityRepo:        cityRepo,
		testimonialRepo: testimonialRepo,
		businessRepo:    businessRepo,
	}
}

// pick returns the English variant when requested and available, otherwise
// the Spanish default.
func pick(lang, es, en string) string {
	if lang == domain.LocaleEN && en != "" {
		return en
	}
	return es
}

func (uc *contentUsecase) ListServices(ctx context.Context, lang string) ([]domain.ServiceSummary, error) {
	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ServiceSummary, 0, len(services))
	for _, svc := range services {
		out = append(out, summarize(svc, lang))
	}
	return out, nil
}

func (uc *contentUsecase) GetService(ctx context.Context, slug, lang string) (*domain.ServiceDetail, error) {
	svc, err := uc.serviceRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &domain.ServiceDetail{
		ServiceSummary:  summarize(*svc, lang),
		DescriptionHTML: markdown.ToHTML(svc.Description),
		Gallery:         svc.Gallery,
		FAQs:            svc.FAQs,
	}, nil
}

func summarize(svc domain.Service, lang string) domain.ServiceSummary {
	return domain.ServiceSummary{
		Slug:             svc.Slug,
		Name:             pick(lang, svc.Name, svc.NameEn),
		ShortDescription: pick(lang, svc.ShortDescription, svc.ShortDescriptionEn),
		PriceRange:       svc.PriceRange,
		Duration:         svc.Duration,
		Icon:             svc.Icon,
		Image:            svc.Image,
		IsEmergency:      svc.IsEmergency,
	}
}

func (uc *contentUsecase) ListCities(ctx context.Context) ([]domain.City, error) {
	return uc.cityRepo.List(ctx)
}

func (uc *contentUsecase) GetCity(ctx context.Context, slug string) (*domain.CityDetail, error) {
	city, err := uc.cityRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &domain.CityDetail{
		Slug:             city.Slug,
		Name:             city.Name,
		Province:         city.Province,
		PostalCodes:      city.PostalCodes,
		ResponseTime:     city.ResponseTime,
		LocalContentHTML: markdown.ToHTML(city.LocalContent),
		NearbyAreas:      city.NearbyAreas,
	}, nil
}

func (uc *contentUsecase) ListTestimonials(ctx context.Context, lang string, limit int) ([]domain.TestimonialView, error) {
	testimonials, err := uc.testimonialRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && limit < len(testimonials) {
		testimonials = testimonials[:limit]
	}

	out := make([]domain.TestimonialView, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, domain.TestimonialView{
			Name:     t.Name,
			Location: t.Location,
			Service:  pick(lang, t.Service, t.ServiceEn),
			Rating:   t.Rating,
			Text:     pick(lang, t.Text, t.TextEn),
			Date:     t.Date,
		})
	}
	return out, nil
}

func (uc *contentUsecase) GetBusiness(ctx context.Context) (*domain.BusinessConfig, error) {
	return uc.businessRepo.Get(ctx)
}

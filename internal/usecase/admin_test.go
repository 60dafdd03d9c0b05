package usecase_test

import (
	"context"
	"testing"

	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/internal/repository/flatfile"
	"go-fontaneria-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminUsecase(t *testing.T) domain.AdminUsecase {
	t.Helper()
	store, err := flatfile.New("")
	require.NoError(t, err)
	return usecase.NewAdminUsecase(
		flatfile.NewBusinessRepository(store),
		flatfile.NewTestimonialRepository(store),
		validator.New(),
	)
}

func TestUpdateBusiness_Validation(t *testing.T) {
	uc := newAdminUsecase(t)
	ctx := context.Background()

	t.Run("rejects missing required fields", func(t *testing.T) {
		err := uc.UpdateBusiness(ctx, &domain.BusinessConfig{})
		assert.Error(t, err)
	})

	t.Run("rejects bad contact email", func(t *testing.T) {
		cfg, err := uc.GetBusiness(ctx)
		require.NoError(t, err)
		cfg.Contact.Email = "not-an-email"
		assert.Error(t, uc.UpdateBusiness(ctx, cfg))
	})

	t.Run("accepts and applies a valid update", func(t *testing.T) {
		cfg, err := uc.GetBusiness(ctx)
		require.NoError(t, err)
		cfg.Tagline = "Nuevo lema"
		require.NoError(t, uc.UpdateBusiness(ctx, cfg))

		got, err := uc.GetBusiness(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Nuevo lema", got.Tagline)
	})
}

func TestTestimonialCRUD(t *testing.T) {
	uc := newAdminUsecase(t)
	ctx := context.Background()

	t.Run("rejects out-of-range rating", func(t *testing.T) {
		_, err := uc.CreateTestimonial(ctx, &domain.Testimonial{
			Name: "Pedro", Location: "Vigo", Service: "Desatascos",
			Rating: 6, Text: "x", Date: "2025-01",
		})
		assert.Error(t, err)
	})

	t.Run("rejects bad date format", func(t *testing.T) {
		_, err := uc.CreateTestimonial(ctx, &domain.Testimonial{
			Name: "Pedro", Location: "Vigo", Service: "Desatascos",
			Rating: 5, Text: "x", Date: "enero 2025",
		})
		assert.Error(t, err)
	})

	t.Run("creates, updates and deletes", func(t *testing.T) {
		created, err := uc.CreateTestimonial(ctx, &domain.Testimonial{
			Name: "Pedro", Location: "Vigo", Service: "Desatascos",
			Rating: 5, Text: "Impecable.", Date: "2025-01",
		})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		created.Rating = 4
		require.NoError(t, uc.UpdateTestimonial(ctx, created))

		list, err := uc.ListTestimonials(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, list[0].Rating)

		require.NoError(t, uc.DeleteTestimonial(ctx, created.ID))
		assert.ErrorIs(t, uc.DeleteTestimonial(ctx, created.ID), domain.ErrNotFound)
	})

	t.Run("update without id is not found", func(t *testing.T) {
		err := uc.UpdateTestimonial(ctx, &domain.Testimonial{
			Name: "Pedro", Location: "Vigo", Service: "Desatascos",
			Rating: 5, Text: "x", Date: "2025-01",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

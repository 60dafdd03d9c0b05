package flatfile_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/internal/repository/flatfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadsEmbeddedSeeds(t *testing.T) {
	store, err := flatfile.New("")
	require.NoError(t, err)

	ctx := context.Background()

	business, err := flatfile.NewBusinessRepository(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Arturo Morgadanes", business.Name)
	assert.NotEmpty(t, business.Contact.Email)

	services, err := flatfile.NewServiceRepository(store).List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, services)

	cities, err := flatfile.NewCityRepository(store).List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cities)

	testimonials, err := flatfile.NewTestimonialRepository(store).List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, testimonials)
	for _, tm := range testimonials {
		assert.NotEmpty(t, tm.ID, "loaded testimonials must have IDs")
	}
}

func TestStore_ContentDirOverridesSeed(t *testing.T) {
	dir := t.TempDir()

	custom := domain.BusinessConfig{
		Name:  "Fontanería Prueba",
		Title: "Fontanero",
		Contact: domain.BusinessContact{
			Phone: "+34 600 000 000",
			Email: "prueba@example.com",
		},
	}
	raw, err := json.Marshal(custom)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "business.json"), raw, 0o644))

	store, err := flatfile.New(dir)
	require.NoError(t, err)

	got, err := flatfile.NewBusinessRepository(store).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Fontanería Prueba", got.Name)
}

func TestServiceRepo_GetBySlug(t *testing.T) {
	store, err := flatfile.New("")
	require.NoError(t, err)
	repo := flatfile.NewServiceRepository(store)

	svc, err := repo.GetBySlug(context.Background(), "desatascos")
	require.NoError(t, err)
	assert.Equal(t, "Desatascos", svc.Name)

	_, err = repo.GetBySlug(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTestimonialRepo_CRUDPersists(t *testing.T) {
	dir := t.TempDir()
	store, err := flatfile.New(dir)
	require.NoError(t, err)
	repo := flatfile.NewTestimonialRepository(store)
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	created := &domain.Testimonial{
		Name:     "Pedro",
		Location: "Nigrán",
		Service:  "Desatascos",
		Rating:   5,
		Text:     "Rápido y eficaz.",
		Date:     "2025-01",
	}
	require.NoError(t, repo.Create(ctx, created))
	assert.NotEmpty(t, created.ID)

	after, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "Pedro", after[0].Name, "new testimonials go first")

	created.Rating = 4
	require.NoError(t, repo.Update(ctx, created))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The file on disk reflects the edits after a reload.
	reloaded, err := flatfile.New(dir)
	require.NoError(t, err)
	final, err := flatfile.NewTestimonialRepository(reloaded).List(ctx)
	require.NoError(t, err)
	assert.Len(t, final, len(before))
}

func TestTestimonialRepo_UpdateMissing(t *testing.T) {
	store, err := flatfile.New("")
	require.NoError(t, err)
	repo := flatfile.NewTestimonialRepository(store)

	err = repo.Update(context.Background(), &domain.Testimonial{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), domain.ErrNotFound)
}

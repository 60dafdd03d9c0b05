// Package flatfile implements the content repositories over flat JSON
// files. There is no database behind this site: catalogs ship as embedded
// defaults, a writable content directory overrides them, and admin edits
// are persisted back to that directory atomically.
package flatfile

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go-fontaneria-backend/internal/domain"

	"github.com/google/uuid"
)

//go:embed seed/*.json
var seedFS embed.FS

const (
	businessFile     = "business.json"
	servicesFile     = "services.json"
	citiesFile       = "cities.json"
	testimonialsFile = "testimonials.json"
)

// Store owns the in-memory content tables and their persistence. A single
// RWMutex serializes admin writes against public reads; content changes
// are rare enough that finer locking buys nothing.
type Store struct {
	dir string

	mu           sync.RWMutex
	business     domain.BusinessConfig
	services     []domain.Service
	cities       []domain.City
	testimonials []domain.Testimonial
}

// New loads the content tables, preferring files in dir over the embedded
// seeds. An empty dir disables persistence (tests run that way).
func New(dir string) (*Store, error) {
	s := &Store{dir: dir}

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create content dir: %w", err)
		}
	}

	if err := s.load(businessFile, &s.business); err != nil {
		return nil, err
	}
	if err := s.load(servicesFile, &s.services); err != nil {
		return nil, err
	}
	if err := s.load(citiesFile, &s.cities); err != nil {
		return nil, err
	}
	if err := s.load(testimonialsFile, &s.testimonials); err != nil {
		return nil, err
	}

	// Older content files carry testimonials without IDs.
	for i := range s.testimonials {
		if s.testimonials[i].ID == "" {
			s.testimonials[i].ID = uuid.NewString()
		}
	}

	return s, nil
}

func (s *Store) load(name string, dest any) error {
	if s.dir != "" {
		path := filepath.Join(s.dir, name)
		if raw, err := os.ReadFile(path); err == nil {
			if err := json.Unmarshal(raw, dest); err != nil {
				return fmt.Errorf("invalid content file %s: %w", name, err)
			}
			return nil
		}
	}

	raw, err := seedFS.ReadFile("seed/" + name)
	if err != nil {
		return fmt.Errorf("missing embedded seed %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("invalid embedded seed %s: %w", name, err)
	}
	return nil
}

// persist writes one table back to the content dir. Callers must hold the
// write lock. Write-to-temp-then-rename keeps a crash from truncating the
// live file.
func (s *Store) persist(name string, v any) error {
	if s.dir == "" {
		return nil
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// newID generates an entity id: a v4 UUID without hyphens.
func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewEntry is the input for creating a directory entry.
type NewEntry struct {
	Title       string
	Description string
	Lat         float64
	Lng         float64
	Street      string
	Zip         string
	City        string
	Country     string
	Email       string
	Telephone   string
	Homepage    string
	Categories  []string
	Tags        []string
	License     string
}

// UpdateEntry is the input for replacing a directory entry. Version must be
// exactly the stored version plus one. License is absent on purpose; it is
// set once at creation and carried forward.
type UpdateEntry struct {
	ID          string
	Version     uint64
	Title       string
	Description string
	Lat         float64
	Lng         float64
	Street      string
	Zip         string
	City        string
	Country     string
	Email       string
	Telephone   string
	Homepage    string
	Categories  []string
	Tags        []string
}

// EntryService implements the entry use cases: create, replace-with-version-
// check, and the read operations the HTTP layer exposes.
type EntryService struct {
	entries repo.EntryRepo
	tags    repo.TagRepo
	now     func() time.Time
}

// NewEntryService constructs an EntryService backed by the provided repos.
func NewEntryService(entries repo.EntryRepo, tags repo.TagRepo) *EntryService {
	return &EntryService{entries: entries, tags: tags, now: time.Now}
}

// Create validates and persists a new entry, upserting any new tags first.
// Returns the generated entry id.
func (s *EntryService) Create(ctx context.Context, e NewEntry) (string, error) {
	entry := domain.Entry{
		ID:          newID(),
		Created:     s.now().UTC(),
		Version:     0,
		Title:       e.Title,
		Description: e.Description,
		Lat:         e.Lat,
		Lng:         e.Lng,
		Street:      e.Street,
		Zip:         e.Zip,
		City:        e.City,
		Country:     e.Country,
		Email:       e.Email,
		Telephone:   e.Telephone,
		Homepage:    e.Homepage,
		Categories:  e.Categories,
		Tags:        e.Tags,
		License:     e.License,
	}
	if err := validateEntry(entry, true); err != nil {
		return "", err
	}
	if err := s.upsertTags(ctx, entry.Tags); err != nil {
		return "", fmt.Errorf("service.EntryService.Create: %w", err)
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("service.EntryService.Create: %w", err)
	}
	return entry.ID, nil
}

// Update replaces a stored entry. The submitted version must be exactly the
// stored version plus one, else domain.ErrInvalidVersion is returned and
// nothing is written. The license of the prior version is carried forward.
func (s *EntryService) Update(ctx context.Context, e UpdateEntry) error {
	old, err := s.entries.GetByID(ctx, e.ID)
	if err != nil {
		return fmt.Errorf("service.EntryService.Update: %w", err)
	}
	if e.Version != old.Version+1 {
		return fmt.Errorf("service.EntryService.Update: %w", domain.ErrInvalidVersion)
	}

	entry := domain.Entry{
		ID:          e.ID,
		Created:     s.now().UTC(),
		Version:     e.Version,
		Title:       e.Title,
		Description: e.Description,
		Lat:         e.Lat,
		Lng:         e.Lng,
		Street:      e.Street,
		Zip:         e.Zip,
		City:        e.City,
		Country:     e.Country,
		Email:       e.Email,
		Telephone:   e.Telephone,
		Homepage:    e.Homepage,
		Categories:  e.Categories,
		Tags:        e.Tags,
		License:     old.License,
	}
	if err := validateEntry(entry, false); err != nil {
		return err
	}
	if err := s.upsertTags(ctx, entry.Tags); err != nil {
		return fmt.Errorf("service.EntryService.Update: %w", err)
	}
	if err := s.entries.Update(ctx, entry); err != nil {
		return fmt.Errorf("service.EntryService.Update: %w", err)
	}
	return nil
}

// Get returns a single entry by id.
func (s *EntryService) Get(ctx context.Context, id string) (domain.Entry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("service.EntryService.Get: %w", err)
	}
	return e, nil
}

// GetMany returns the entries whose ids appear in ids, in snapshot order.
// Unknown ids are skipped, not an error.
func (s *EntryService) GetMany(ctx context.Context, ids []string) ([]domain.Entry, error) {
	all, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.GetMany: %w", err)
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []domain.Entry{}
	for _, e := range all {
		if _, ok := wanted[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// List returns all entries. Always returns a non-nil slice.
func (s *EntryService) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.List: %w", err)
	}
	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// Count returns the number of entries.
func (s *EntryService) Count(ctx context.Context) (int64, error) {
	n, err := s.entries.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.EntryService.Count: %w", err)
	}
	return n, nil
}

func (s *EntryService) upsertTags(ctx context.Context, tags []string) error {
	for _, t := range tags {
		if err := s.tags.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// validateEntry enforces the business rules common to Create and Update.
//   - Title must be non-empty (whitespace-only titles are rejected).
//   - The location must be a finite coordinate within WGS84 bounds.
//   - A license is required at creation time.
func validateEntry(e domain.Entry, requireLicense bool) error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !e.Coordinate().IsFinite() || e.Lat < -90 || e.Lat > 90 || e.Lng < -180 || e.Lng > 180 {
		return fmt.Errorf("%w: invalid coordinate", domain.ErrValidation)
	}
	if requireLicense && strings.TrimSpace(e.License) == "" {
		return fmt.Errorf("%w: license is required", domain.ErrValidation)
	}
	return nil
}

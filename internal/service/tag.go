package service

import (
	"context"
	"fmt"

	"github.com/jmaurer/placedir/internal/repo"
)

// TagService exposes the free-form tag vocabulary.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided repo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns all tag ids. Always returns a non-nil slice.
func (s *TagService) List(ctx context.Context) ([]string, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	ids := []string{}
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

// Count returns the number of distinct tags.
func (s *TagService) Count(ctx context.Context) (int64, error) {
	n, err := s.tags.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TagService.Count: %w", err)
	}
	return n, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/jmaurer/placedir/internal/domain"
	"github.com/jmaurer/placedir/internal/repo"
)

// CategoryService exposes the fixed category set.
type CategoryService struct {
	categories repo.CategoryRepo
}

// NewCategoryService constructs a CategoryService backed by the provided repo.
func NewCategoryService(categories repo.CategoryRepo) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns all categories. Always returns a non-nil slice.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CategoryService.List: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// GetMany returns the categories whose ids appear in ids.
func (s *CategoryService) GetMany(ctx context.Context, ids []string) ([]domain.Category, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.Category{}
	for _, c := range all {
		for _, id := range ids {
			if c.ID == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

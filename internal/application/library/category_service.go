package library

import (
	"context"
	"errors"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
)

// CategoryService manages the flat category reference table
type CategoryService struct {
	categories library.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categories library.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create creates a category; names are unique
func (s *CategoryService) Create(ctx context.Context, name, description string) (*library.Category, error) {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	category, err := library.NewCategory(name, description)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// List returns all categories
func (s *CategoryService) List(ctx context.Context) ([]library.Category, error) {
	return s.categories.FindAll(ctx, shared.Filter{})
}

package library

import (
	"context"
	"testing"

	"github.com/bookshelf/backend/internal/domain/library"
	"github.com/bookshelf/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create_Success(t *testing.T) {
	categories := new(MockCategoryRepository)
	service := NewCategoryService(categories)
	ctx := context.Background()

	categories.On("FindByName", ctx, "Science Fiction").Return(nil, shared.ErrNotFound)
	categories.On("Save", ctx, mock.AnythingOfType("*library.Category")).Return(nil)

	category, err := service.Create(ctx, "Science Fiction", "Space and speculation")

	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", category.Name)
	categories.AssertExpectations(t)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	categories := new(MockCategoryRepository)
	service := NewCategoryService(categories)
	ctx := context.Background()

	existing, _ := library.NewCategory("Science Fiction", "")
	categories.On("FindByName", ctx, "Science Fiction").Return(existing, nil)

	_, err := service.Create(ctx, "Science Fiction", "")

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	categories.AssertNotCalled(t, "Save")
}

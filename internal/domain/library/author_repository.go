package library

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorRepository defines the interface for author persistence
type AuthorRepository interface {
	// FindByID finds an author by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*Author, error)

	// FindByName finds an author by exact name match. No normalization is
	// applied; "jane doe" and "Jane Doe" are distinct authors.
	FindByName(ctx context.Context, name string) (*Author, error)

	// FindByIDs finds all authors among the given IDs
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Author, error)

	// FindAll finds all authors matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Author, error)

	// FindDuplicateNames groups authors by exact name and returns the groups
	// holding more than one record
	FindDuplicateNames(ctx context.Context) ([]DuplicateAuthorGroup, error)

	// Save creates or updates an author
	Save(ctx context.Context, author *Author) error
}

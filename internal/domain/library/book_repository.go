package library

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookRepository defines the interface for book persistence
type BookRepository interface {
	// FindByID finds a book by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*Book, error)

	// FindAll finds all books matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Book, error)

	// FindUnlinked finds books still carrying a free-text author name
	FindUnlinked(ctx context.Context) ([]Book, error)

	// FindLinked finds books whose author field references an Author document
	FindLinked(ctx context.Context) ([]Book, error)

	// FindByTitleAndAuthorName finds a book by its exact title and free-text
	// author, used by the bulk import to skip files already uploaded
	FindByTitleAndAuthorName(ctx context.Context, title, authorName string) (*Book, error)

	// Count counts all books
	Count(ctx context.Context) (int64, error)

	// Save creates or updates a book
	Save(ctx context.Context, book *Book) error

	// UpdateStatusAll sets the status on every book regardless of its current
	// state and returns the number of modified documents
	UpdateStatusAll(ctx context.Context, status BookStatus) (int64, error)

	// Delete deletes a single book
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteAll deletes every book and returns the number deleted
	DeleteAll(ctx context.Context) (int64, error)
}

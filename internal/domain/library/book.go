package library

import (
	"strings"
	"time"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookStatus represents the review status of a submitted book
type BookStatus string

const (
	BookStatusPending  BookStatus = "pending"
	BookStatusApproved BookStatus = "approved"
	BookStatusRejected BookStatus = "rejected"
)

// Book represents a cataloged book document.
//
// The author field normally references an Author document. Books imported
// from older revisions may instead carry free text in authorName until the
// linking sweep rewrites them; both fields are kept so the sweep can tell
// linked from unlinked books apart.
type Book struct {
	shared.BaseDocument `bson:",inline"`
	Title               string              `bson:"title" json:"title"`
	Author              *primitive.ObjectID `bson:"author,omitempty" json:"author,omitempty"`
	AuthorName          string              `bson:"authorName,omitempty" json:"authorName,omitempty"`
	CreatedBy           string              `bson:"createdBy" json:"createdBy"`
	Description         string              `bson:"description" json:"description"`
	PDFURL              string              `bson:"pdfUrl" json:"pdfUrl"`
	CoverImageURL       string              `bson:"coverImageUrl" json:"coverImageUrl"`
	PublishedDate       time.Time           `bson:"publishedDate" json:"publishedDate"`
	Language            string              `bson:"language" json:"language"`
	Tags                []string            `bson:"tags" json:"tags"`
	Rating              float64             `bson:"rating,omitempty" json:"rating,omitempty"`
	Review              string              `bson:"review,omitempty" json:"review,omitempty"`
	Category            *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Status              BookStatus          `bson:"status" json:"status"`
}

// NewBook creates a pending book submission
func NewBook(title, createdBy string) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Book title is required")
	}

	return &Book{
		BaseDocument:  shared.NewBaseDocument(),
		Title:         title,
		CreatedBy:     createdBy,
		PublishedDate: time.Now(),
		Tags:          []string{},
		Status:        BookStatusPending,
	}, nil
}

// IsPending returns true while the book awaits review
func (b *Book) IsPending() bool {
	return b.Status == BookStatusPending
}

// IsLinked returns true once the author field references an Author document
func (b *Book) IsLinked() bool {
	return b.Author != nil
}

// LinkAuthor rewrites the free-text author to a reference
func (b *Book) LinkAuthor(authorID primitive.ObjectID) {
	b.Author = &authorID
	b.AuthorName = ""
	b.Touch()
}

// SetStatus applies a status change. Any transition is allowed here; whether
// the change fires a notification is decided by the service against the
// previously read state.
func (b *Book) SetStatus(status BookStatus) error {
	switch status {
	case BookStatusPending, BookStatusApproved, BookStatusRejected:
		b.Status = status
		b.Touch()
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown book status: "+string(status))
	}
}

package library

import (
	"strings"
	"time"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author represents a canonical author record. One author per distinct name
// is intended but not enforced at write time; name matching is exact, so
// casing or whitespace variants create separate records that surface through
// the duplicate report.
type Author struct {
	shared.BaseDocument `bson:",inline"`
	Name                string               `bson:"name" json:"name"`
	Biography           string               `bson:"biography,omitempty" json:"biography,omitempty"`
	ProfilePicture      string               `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Nationality         string               `bson:"nationality,omitempty" json:"nationality,omitempty"`
	DateOfBirth         *time.Time           `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	DateOfDeath         *time.Time           `bson:"dateOfDeath,omitempty" json:"dateOfDeath,omitempty"`
	Books               []primitive.ObjectID `bson:"books" json:"books"`
}

// NewAuthor creates an author with an empty back-reference set
func NewAuthor(name string) (*Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Author name is required")
	}

	return &Author{
		BaseDocument: shared.NewBaseDocument(),
		Name:         name,
		Books:        []primitive.ObjectID{},
	}, nil
}

// ReplaceBooks overwrites the back-reference set in full. The rebuild sweep
// relies on overwrite semantics to stay idempotent.
func (a *Author) ReplaceBooks(bookIDs []primitive.ObjectID) {
	if bookIDs == nil {
		bookIDs = []primitive.ObjectID{}
	}
	a.Books = bookIDs
	a.Touch()
}

// DuplicateAuthorGroup is one entry of the duplicate report: authors sharing
// an exact name.
type DuplicateAuthorGroup struct {
	Name  string               `bson:"_id" json:"name"`
	Count int64                `bson:"count" json:"count"`
	IDs   []primitive.ObjectID `bson:"ids" json:"ids"`
}

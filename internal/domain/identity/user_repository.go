package identity

import (
	"context"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)

	// FindByEmail finds a user by email, the de facto unique key
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll finds all users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// AddFriend inserts friendID into the user's friends set with set
	// semantics; inserting an existing member is a no-op
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error
}

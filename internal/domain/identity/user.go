package identity

import (
	"strings"
	"time"

	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the nested user profile document
type Profile struct {
	Name           string     `bson:"name,omitempty" json:"name,omitempty"`
	ProfilePicture string     `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	Gender         string     `bson:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth    *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Nationality    string     `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Bio            string     `bson:"bio,omitempty" json:"bio,omitempty"`
}

// User represents a registered user. Email is the de facto unique key; it is
// not enforced at the storage level, the register path guards it with a
// read-before-write.
type User struct {
	shared.BaseDocument   `bson:",inline"`
	Username              string               `bson:"username" json:"username"`
	Email                 string               `bson:"email" json:"email"`
	Profile               Profile              `bson:"profile" json:"profile"`
	FavoriteBooks         []primitive.ObjectID `bson:"favoriteBooks" json:"favoriteBooks"`
	Friends               []primitive.ObjectID `bson:"friends" json:"friends"`
	IsPrivate             bool                 `bson:"isPrivate" json:"isPrivate"`
	RegistrationCompleted bool                 `bson:"registrationCompleted" json:"registrationCompleted"`
}

// NewUser creates a user with empty favorites and friends sets
func NewUser(username, email string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "User email is required")
	}

	return &User{
		BaseDocument:  shared.NewBaseDocument(),
		Username:      username,
		Email:         email,
		Profile:       Profile{Name: username},
		FavoriteBooks: []primitive.ObjectID{},
		Friends:       []primitive.ObjectID{},
	}, nil
}

// ToggleFavorite removes the book from the favorites set if present,
// otherwise adds it. Returns true when the book was added. The book id is not
// checked for existence; a dangling id simply never resolves on listing.
func (u *User) ToggleFavorite(bookID primitive.ObjectID) bool {
	for i, id := range u.FavoriteBooks {
		if id == bookID {
			u.FavoriteBooks = append(u.FavoriteBooks[:i], u.FavoriteBooks[i+1:]...)
			u.Touch()
			return false
		}
	}
	u.FavoriteBooks = append(u.FavoriteBooks, bookID)
	u.Touch()
	return true
}

// IsFavorite reports whether the book is in the favorites set
func (u *User) IsFavorite(bookID primitive.ObjectID) bool {
	for _, id := range u.FavoriteBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// AddFriend inserts the user into the friends set; re-adding is a no-op
func (u *User) AddFriend(friendID primitive.ObjectID) {
	for _, id := range u.Friends {
		if id == friendID {
			return
		}
	}
	u.Friends = append(u.Friends, friendID)
	u.Touch()
}

// IsFriend reports whether the other user is in the friends set
func (u *User) IsFriend(otherID primitive.ObjectID) bool {
	for _, id := range u.Friends {
		if id == otherID {
			return true
		}
	}
	return false
}

// ApplyProfile merges the given profile and recomputes the derived
// registrationCompleted flag
func (u *User) ApplyProfile(p Profile) {
	u.Profile = p
	u.RegistrationCompleted = u.profileComplete()
	u.Touch()
}

// profileComplete mirrors the front end's notion of a finished registration:
// name, date of birth and nationality must all be present.
func (u *User) profileComplete() bool {
	return u.Profile.Name != "" && u.Profile.DateOfBirth != nil && u.Profile.Nationality != ""
}

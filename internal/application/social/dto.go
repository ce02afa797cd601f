package social

import (
	"time"

	"github.com/bookshelf/backend/internal/domain/identity"
	"github.com/bookshelf/backend/internal/domain/social"
)

// UserRef is the compact user view embedded in social responses
type UserRef struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

func toUserRef(u *identity.User) UserRef {
	return UserRef{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.Profile.ProfilePicture,
	}
}

// FriendRequestView is one incoming request on the requests listing
type FriendRequestView struct {
	ID        string    `json:"id"`
	Requester UserRef   `json:"requester"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationView is one entry of the notification feed. Status carries the
// linked friend request's current state, derived at read time; the request
// document is the only stored source of truth for it.
type NotificationView struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	Requester    *UserRef  `json:"requester,omitempty"`
	Status       string    `json:"status,omitempty"`
	Read         bool      `json:"read"`
	Book         string    `json:"book,omitempty"`
	BookTitle    string    `json:"bookTitle,omitempty"`
	BookApproved bool      `json:"bookApproved,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toNotificationView(n *social.Notification) NotificationView {
	v := NotificationView{
		ID:           n.ID.Hex(),
		Type:         string(n.Type),
		Message:      n.Message,
		Read:         n.Read,
		BookTitle:    n.BookTitle,
		BookApproved: n.BookApproved,
		CreatedAt:    n.CreatedAt,
	}
	if n.Book != nil {
		v.Book = n.Book.Hex()
	}
	return v
}

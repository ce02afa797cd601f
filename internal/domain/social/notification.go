package social

import (
	"github.com/bookshelf/backend/internal/domain/shared"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType classifies what event produced a notification
type NotificationType string

const (
	NotificationFriendRequest NotificationType = "friendRequest"
	NotificationNewBook       NotificationType = "newBook"
	NotificationBookApproved  NotificationType = "bookApproved"
)

// Notification is created only as a side effect of friend-request and book
// lifecycle events, never directly by a user action. For friend-request
// notifications the displayed status is derived from the linked request at
// read time; the request document is the single source of truth.
type Notification struct {
	shared.BaseDocument `bson:",inline"`
	Recipient           primitive.ObjectID  `bson:"recipient" json:"recipient"`
	Requester           *primitive.ObjectID `bson:"requester,omitempty" json:"requester,omitempty"`
	FriendRequest       *primitive.ObjectID `bson:"friendRequest,omitempty" json:"friendRequest,omitempty"`
	Type                NotificationType    `bson:"type" json:"type"`
	Message             string              `bson:"message" json:"message"`
	Read                bool                `bson:"read" json:"read"`
	Book                *primitive.ObjectID `bson:"book,omitempty" json:"book,omitempty"`
	BookTitle           string              `bson:"bookTitle,omitempty" json:"bookTitle,omitempty"`
	BookApproved        bool                `bson:"bookApproved,omitempty" json:"bookApproved,omitempty"`
}

// NewFriendRequestNotification notifies the recipient of an incoming request
func NewFriendRequestNotification(request *FriendRequest, message string) *Notification {
	return &Notification{
		BaseDocument:  shared.NewBaseDocument(),
		Recipient:     request.Recipient,
		Requester:     &request.Requester,
		FriendRequest: &request.ID,
		Type:          NotificationFriendRequest,
		Message:       message,
	}
}

// NewBookNotification notifies the creator that their submission was stored
func NewBookNotification(recipient, bookID primitive.ObjectID, bookTitle string) *Notification {
	return &Notification{
		BaseDocument: shared.NewBaseDocument(),
		Recipient:    recipient,
		Type:         NotificationNewBook,
		Message:      "Your book \"" + bookTitle + "\" was submitted and is pending review",
		Book:         &bookID,
		BookTitle:    bookTitle,
	}
}

// NewBookApprovedNotification notifies the creator of an approval
func NewBookApprovedNotification(recipient, bookID primitive.ObjectID, bookTitle string) *Notification {
	return &Notification{
		BaseDocument: shared.NewBaseDocument(),
		Recipient:    recipient,
		Type:         NotificationBookApproved,
		Message:      "Your book \"" + bookTitle + "\" was approved",
		Book:         &bookID,
		BookTitle:    bookTitle,
		BookApproved: true,
	}
}

// MarkRead flips the read flag
func (n *Notification) MarkRead() {
	n.Read = true
	n.Touch()
}

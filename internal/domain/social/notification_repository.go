package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*Notification, error)

	// FindForRecipient finds all notifications addressed to a user, newest
	// first
	FindForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]Notification, error)

	// FindByFriendRequest finds the notification created for a friend request
	FindByFriendRequest(ctx context.Context, requestID primitive.ObjectID) (*Notification, error)

	// Save creates or updates a notification
	Save(ctx context.Context, notification *Notification) error
}

package social

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FriendRequestRepository defines the interface for friend request persistence
type FriendRequestRepository interface {
	// FindByID finds a request by its ID
	FindByID(ctx context.Context, id primitive.ObjectID) (*FriendRequest, error)

	// FindPending finds the pending request for the ordered
	// (requester, recipient) pair, if any
	FindPending(ctx context.Context, requester, recipient primitive.ObjectID) (*FriendRequest, error)

	// FindLatest finds the most recent request for the ordered pair regardless
	// of status, used by the status-check endpoint
	FindLatest(ctx context.Context, requester, recipient primitive.ObjectID) (*FriendRequest, error)

	// FindPendingForRecipient finds all pending requests addressed to a user
	FindPendingForRecipient(ctx context.Context, recipient primitive.ObjectID) ([]FriendRequest, error)

	// Save creates or updates a request
	Save(ctx context.Context, request *FriendRequest) error
}
